package domain

import "strings"

// ChatRule matches a message against trigger substrings and yields a canned
// reply. The bot is scripted: there is no learning and no state.
type ChatRule struct {
	Intent   string
	Triggers []string
	Reply    string
}

// ChatFallback is returned when no rule matches.
const ChatFallback = "Sorry, I don't understand that. Try asking about Python, DSA, research, or just say hi!"

// FallbackIntent labels replies produced by the fallback message.
const FallbackIntent = "fallback"

// ChatRules is the ordered rule set. Order matters: the first matching rule
// wins, so more specific triggers come before broad ones.
var ChatRules = []ChatRule{
	{
		Intent:   "python",
		Triggers: []string{"python"},
		Reply:    "Start with Python basics on freeCodeCamp or Codecademy. Great choice for beginners!",
	},
	{
		Intent:   "dsa",
		Triggers: []string{"dsa", "algorithm"},
		Reply:    "Practice DSA on LeetCode, HackerRank, or GeeksforGeeks. Start with arrays and strings!",
	},
	{
		Intent:   "research",
		Triggers: []string{"research", "paper"},
		Reply:    "Check trending topics on arXiv.org, Google Scholar, or IEEE Xplore.",
	},
	{
		Intent:   "greeting",
		Triggers: []string{"hello", "hi"},
		Reply:    "Hey there! How can I help with your college journey today?",
	},
	{
		Intent:   "branches",
		Triggers: []string{"branch", "course"},
		Reply:    "Check our Branches page for info on BTech, BBA, BCA, BSc, and more!",
	},
	{
		Intent:   "resources",
		Triggers: []string{"resource", "learn"},
		Reply:    "I can recommend personalized learning resources based on your year and interests. Ask about specific topics!",
	},
}

// Reply resolves a message to a canned reply and the intent that produced it.
// Matching is case-insensitive substring containment over the rule order.
func Reply(message string) (reply, intent string) {
	lower := strings.ToLower(message)
	for _, rule := range ChatRules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(lower, trigger) {
				return rule.Reply, rule.Intent
			}
		}
	}
	return ChatFallback, FallbackIntent
}
