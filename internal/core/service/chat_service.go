package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campuscompass/guidance-system/internal/core/domain"
	"github.com/campuscompass/guidance-system/internal/metrics"
)

// ChatService resolves messages against the scripted rule set. The bot is a
// fixed script; replies never depend on prior messages.
type ChatService struct {
	log zerolog.Logger
}

func NewChatService(log zerolog.Logger) *ChatService {
	return &ChatService{log: log}
}

func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", domain.NewValidationError("message is required")
	}
	reply, intent := domain.Reply(message)
	metrics.ChatRepliesTotal.WithLabelValues(intent).Inc()
	s.log.Debug().Str("intent", intent).Msg("chat reply resolved")
	return reply, nil
}
