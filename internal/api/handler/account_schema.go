package handler

import (
	"encoding/json"
	"strings"
	"time"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// stringList accepts either a JSON array of strings or a single
// comma-separated string. The original clients send both shapes.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = strings.Split(single, ",")
	return nil
}

type registerRequest struct {
	Email      string     `json:"email"             validate:"required,email"`
	Password   string     `json:"password"          validate:"required,min=6"`
	Year       string     `json:"year"              validate:"required,oneof=1st 2nd 3rd 4th"`
	Experience string     `json:"coding_experience" validate:"omitempty,oneof=beginner intermediate advanced"`
	Languages  stringList `json:"languages"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// profileResponse is the public profile view. It deliberately has no field
// for the password hash.
type profileResponse struct {
	ID           string              `json:"id"`
	Email        string              `json:"email"`
	Year         string              `json:"year"`
	Experience   string              `json:"coding_experience"`
	Languages    []string            `json:"languages"`
	LearningPath []pathEntryResponse `json:"learning_path"`
	Ratings      map[string]int      `json:"ratings"`
	CreatedAt    time.Time           `json:"created_at"`
}

type pathEntryResponse struct {
	Topic   string    `json:"topic"`
	Status  string    `json:"status"`
	AddedAt time.Time `json:"added_at"`
}

type authResponse struct {
	Token   string          `json:"token"`
	Profile profileResponse `json:"profile"`
}

type pathEntryRequest struct {
	Topic  string `json:"topic"  validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=not-started in-progress completed"`
}

// updateProfileRequest is a partial update: nil fields are left untouched.
type updateProfileRequest struct {
	Year         *string            `json:"year"              validate:"omitempty,oneof=1st 2nd 3rd 4th"`
	Experience   *string            `json:"coding_experience" validate:"omitempty,oneof=beginner intermediate advanced"`
	Languages    stringList         `json:"languages"`
	LearningPath []pathEntryRequest `json:"learning_path"     validate:"omitempty,dive"`
}

type rateRequest struct {
	ResourceID string `json:"resource_id" validate:"required"`
	Rating     int    `json:"rating"      validate:"required,min=1,max=5"`
}

type successResponse struct {
	Success bool `json:"success"`
}
