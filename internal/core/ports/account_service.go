package ports

import (
	"context"

	"github.com/campuscompass/guidance-system/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Email      string
	Password   string
	Year       string
	Experience string   // optional, defaults to beginner
	Languages  []string // already split by the transport layer
}

// PathEntryInput is a learning-path entry submitted by the client.
type PathEntryInput struct {
	Topic  string
	Status string // optional, defaults to not-started
}

// UpdateProfileInput carries the partial fields of a profile update.
// Nil pointers mean "leave untouched".
type UpdateProfileInput struct {
	Year         *string
	Experience   *string
	Languages    []string
	LearningPath []PathEntryInput
}

// AccountService orchestrates registration, login, and profile mutation.
type AccountService interface {
	// Register validates input, creates the account, and issues a token.
	Register(ctx context.Context, in RegisterInput) (string, *domain.Account, error)
	// Login verifies credentials and issues a token.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	GetProfile(ctx context.Context, accountID string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, accountID string, in UpdateProfileInput) (*domain.Account, error)
	// RateResource upserts a rating (1..5) for a catalog resource. An ID not
	// present in the catalog returns domain.ErrResourceNotFound.
	RateResource(ctx context.Context, accountID, resourceID string, rating int) error
}
