package domain

import "errors"

// MaxRecommendations caps how many resources a single lookup returns.
const MaxRecommendations = 5

var ErrResourceNotFound = errors.New("resource not found")

// Resource is a catalog entry recommended to accounts by year and interest.
type Resource struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Tags          []string `json:"tags"`
	SuitableYears []Year   `json:"suitable_years"`
}

// MatchesYear reports whether the resource suits the given year.
// An empty year matches everything.
func (r Resource) MatchesYear(year Year) bool {
	if year == "" {
		return true
	}
	for _, y := range r.SuitableYears {
		if y == year {
			return true
		}
	}
	return false
}

// MatchesInterests reports whether any of the resource's tags appears in
// interests. An empty interest list matches everything.
func (r Resource) MatchesInterests(interests []string) bool {
	if len(interests) == 0 {
		return true
	}
	for _, tag := range r.Tags {
		for _, want := range interests {
			if tag == want {
				return true
			}
		}
	}
	return false
}

// FilterResources selects resources matching the year and interest criteria,
// in catalog order, capped at MaxRecommendations. There is no ranking.
func FilterResources(catalog []Resource, year Year, interests []string) []Resource {
	out := make([]Resource, 0, MaxRecommendations)
	for _, r := range catalog {
		if !r.MatchesYear(year) || !r.MatchesInterests(interests) {
			continue
		}
		out = append(out, r)
		if len(out) == MaxRecommendations {
			break
		}
	}
	return out
}
