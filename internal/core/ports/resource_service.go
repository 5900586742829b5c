package ports

import (
	"context"

	"github.com/campuscompass/guidance-system/internal/core/domain"
)

// ResourceService selects catalog resources matching year/interest criteria.
type ResourceService interface {
	// Recommend returns at most domain.MaxRecommendations resources in catalog
	// order. Empty year or interests means "no filter" on that axis.
	Recommend(ctx context.Context, year domain.Year, interests []string) ([]domain.Resource, error)
}

// ChatService resolves a chat message to a scripted reply.
type ChatService interface {
	Reply(ctx context.Context, message string) (string, error)
}
