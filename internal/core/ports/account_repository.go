package ports

import (
	"context"

	"github.com/campuscompass/guidance-system/internal/core/domain"
)

// ProfileUpdate carries the partial fields of a profile update. Nil fields are
// left untouched; PathEntries are prepended to the existing learning path.
type ProfileUpdate struct {
	Year        *domain.Year
	Experience  *domain.Experience
	Languages   []string // nil = untouched, non-nil (even empty) = replace
	PathEntries []domain.LearningPathEntry
}

// AccountRepository defines persistence operations for accounts.
//
// Implementations must apply UpdateProfile and SetRating as single per-record
// atomic updates so concurrent writes to the same account cannot lose data.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// FindByEmail looks up an account by its normalized (lower-case) email.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// UpdateProfile applies the partial update atomically and returns the
	// post-update account.
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.Account, error)
	// SetRating upserts a single rating key; the last committed write wins.
	SetRating(ctx context.Context, id, resourceID string, rating int) error
}
