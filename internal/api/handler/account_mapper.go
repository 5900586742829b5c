package handler

import (
	"github.com/campuscompass/guidance-system/internal/core/domain"
	"github.com/campuscompass/guidance-system/internal/core/ports"
)

// toProfileResponse maps an account to its public view. The password hash has
// no target field, so it can never be serialized.
func toProfileResponse(a *domain.Account) profileResponse {
	entries := make([]pathEntryResponse, len(a.LearningPath))
	for i, e := range a.LearningPath {
		entries[i] = pathEntryResponse{
			Topic:   e.Topic,
			Status:  string(e.Status),
			AddedAt: e.AddedAt.UTC(),
		}
	}

	languages := a.Languages
	if languages == nil {
		languages = []string{}
	}
	ratings := a.Ratings
	if ratings == nil {
		ratings = map[string]int{}
	}

	return profileResponse{
		ID:           a.ID,
		Email:        a.Email,
		Year:         string(a.Year),
		Experience:   string(a.Experience),
		Languages:    languages,
		LearningPath: entries,
		Ratings:      ratings,
		CreatedAt:    a.CreatedAt.UTC(),
	}
}

func toRegisterInput(req registerRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		Year:       req.Year,
		Experience: req.Experience,
		Languages:  req.Languages,
	}
}

func toUpdateInput(req updateProfileRequest) ports.UpdateProfileInput {
	in := ports.UpdateProfileInput{
		Year:       req.Year,
		Experience: req.Experience,
	}
	if req.Languages != nil {
		in.Languages = req.Languages
	}
	for _, e := range req.LearningPath {
		in.LearningPath = append(in.LearningPath, ports.PathEntryInput{
			Topic:  e.Topic,
			Status: e.Status,
		})
	}
	return in
}
