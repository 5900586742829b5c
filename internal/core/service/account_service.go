package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campuscompass/guidance-system/internal/core/domain"
	"github.com/campuscompass/guidance-system/internal/core/ports"
)

const minPasswordLen = 6

// emailShape is deliberately loose: one @, no whitespace, a dot in the domain.
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AccountService implements registration, login, and profile mutation on top
// of the account repository and token service. The catalog bounds which
// resource IDs can be rated.
type AccountService struct {
	repo        ports.AccountRepository
	tokens      ports.TokenService
	resourceIDs map[string]struct{}
	logger      zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, tokens ports.TokenService, catalog []domain.Resource, logger zerolog.Logger) *AccountService {
	ids := make(map[string]struct{}, len(catalog))
	for _, r := range catalog {
		ids[r.ID] = struct{}{}
	}
	return &AccountService{repo: repo, tokens: tokens, resourceIDs: ids, logger: logger}
}

// Register validates input, hashes the password, persists the account, and
// issues a session token. The raw password is discarded after hashing and is
// never logged.
func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return "", nil, domain.NewValidationError("email and password are required")
	}
	if !emailShape.MatchString(email) {
		return "", nil, domain.NewValidationError("email must be a valid email address")
	}
	if len(in.Password) < minPasswordLen {
		return "", nil, domain.NewValidationError("password must be at least 6 characters")
	}

	year := domain.Year(in.Year)
	if !year.Valid() {
		return "", nil, domain.NewValidationError("year must be one of: 1st, 2nd, 3rd, 4th")
	}

	experience := domain.ExperienceBeginner
	if in.Experience != "" {
		experience = domain.Experience(in.Experience)
		if !experience.Valid() {
			return "", nil, domain.NewValidationError("coding_experience must be one of: beginner, intermediate, advanced")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:        email,
		PasswordHash: string(hash),
		Year:         year,
		Experience:   experience,
		Languages:    normalizeLanguages(in.Languages),
		LearningPath: []domain.LearningPathEntry{},
		Ratings:      map[string]int{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("account_id", created.ID).Msg("account registered")
	return token, created, nil
}

// Login verifies credentials and issues a token. A missing account surfaces
// as ErrAccountNotFound and a hash mismatch as ErrBadCredentials; the bcrypt
// comparison is constant-time.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.NewValidationError("email and password are required")
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrBadCredentials
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("account_id", account.ID).Msg("account logged in")
	return token, account, nil
}

func (s *AccountService) GetProfile(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, accountID)
}

// UpdateProfile applies a partial update: scalar fields overwrite, absent
// fields stay untouched, and new learning-path entries are prepended in the
// order they were submitted.
func (s *AccountService) UpdateProfile(ctx context.Context, accountID string, in ports.UpdateProfileInput) (*domain.Account, error) {
	var update ports.ProfileUpdate

	if in.Year != nil {
		year := domain.Year(*in.Year)
		if !year.Valid() {
			return nil, domain.NewValidationError("year must be one of: 1st, 2nd, 3rd, 4th")
		}
		update.Year = &year
	}

	if in.Experience != nil {
		experience := domain.Experience(*in.Experience)
		if !experience.Valid() {
			return nil, domain.NewValidationError("coding_experience must be one of: beginner, intermediate, advanced")
		}
		update.Experience = &experience
	}

	if in.Languages != nil {
		update.Languages = normalizeLanguages(in.Languages)
	}

	if len(in.LearningPath) > 0 {
		now := time.Now().UTC()
		entries := make([]domain.LearningPathEntry, 0, len(in.LearningPath))
		for _, e := range in.LearningPath {
			if strings.TrimSpace(e.Topic) == "" {
				return nil, domain.NewValidationError("learning path entries require a topic")
			}
			status := domain.PathNotStarted
			if e.Status != "" {
				status = domain.PathStatus(e.Status)
				if !status.Valid() {
					return nil, domain.NewValidationError("learning path status must be one of: not-started, in-progress, completed")
				}
			}
			entries = append(entries, domain.LearningPathEntry{
				Topic:   strings.TrimSpace(e.Topic),
				Status:  status,
				AddedAt: now,
			})
		}
		update.PathEntries = entries
	}

	updated, err := s.repo.UpdateProfile(ctx, accountID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("account_id", accountID).
		Int("path_entries", len(update.PathEntries)).
		Msg("profile updated")
	return updated, nil
}

// RateResource upserts a rating for a catalog resource; a repeated rating for
// the same resource overwrites the previous value. Only IDs present in the
// catalog are accepted, so an arbitrary client string can never become a
// persisted ratings key.
func (s *AccountService) RateResource(ctx context.Context, accountID, resourceID string, rating int) error {
	if resourceID == "" {
		return domain.NewValidationError("resource_id is required")
	}
	if rating < 1 || rating > 5 {
		return domain.NewValidationError("rating must be between 1 and 5")
	}
	if _, ok := s.resourceIDs[resourceID]; !ok {
		return domain.ErrResourceNotFound
	}
	return s.repo.SetRating(ctx, accountID, resourceID, rating)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeLanguages trims entries, drops empties, and removes duplicates
// while keeping first-seen order.
func normalizeLanguages(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, lang := range raw {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			continue
		}
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}
		out = append(out, lang)
	}
	return out
}
