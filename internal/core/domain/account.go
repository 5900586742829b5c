package domain

import (
	"errors"
	"time"
)

// Year is the academic year of an account holder.
type Year string

const (
	Year1st Year = "1st"
	Year2nd Year = "2nd"
	Year3rd Year = "3rd"
	Year4th Year = "4th"
)

// Valid reports whether y is one of the allowed academic years.
func (y Year) Valid() bool {
	switch y {
	case Year1st, Year2nd, Year3rd, Year4th:
		return true
	}
	return false
}

// Experience is the self-reported coding experience level.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Valid reports whether e is one of the allowed experience levels.
func (e Experience) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

// PathStatus is the progress status of a learning-path entry.
type PathStatus string

const (
	PathNotStarted PathStatus = "not-started"
	PathInProgress PathStatus = "in-progress"
	PathCompleted  PathStatus = "completed"
)

// Valid reports whether s is one of the allowed path statuses.
func (s PathStatus) Valid() bool {
	switch s {
	case PathNotStarted, PathInProgress, PathCompleted:
		return true
	}
	return false
}

var ErrAccountNotFound = errors.New("account not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrBadCredentials = errors.New("invalid credentials")

var ErrTokenMissing = errors.New("missing token")
var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")

// ValidationError reports malformed or missing input. The message is safe to
// return to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

// LearningPathEntry is a single topic in an account's learning path.
// The path is ordered most-recently-added first.
type LearningPathEntry struct {
	Topic   string     `json:"topic" bson:"topic"`
	Status  PathStatus `json:"status" bson:"status"`
	AddedAt time.Time  `json:"added_at" bson:"added_at"`
}

// Account is the persisted identity and profile of a registered student.
type Account struct {
	ID           string              `json:"id"`
	Email        string              `json:"email"`
	PasswordHash string              `json:"-"`
	Year         Year                `json:"year"`
	Experience   Experience          `json:"coding_experience"`
	Languages    []string            `json:"languages"`
	LearningPath []LearningPathEntry `json:"learning_path"`
	Ratings      map[string]int      `json:"ratings"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
