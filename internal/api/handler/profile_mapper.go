package handler

import (
	"github.com/Adi-cmrec/lenslink/internal/core/domain"
	"github.com/Adi-cmrec/lenslink/internal/core/ports"
)

// --- Request → service input ---

func toCreateInput(req createProfileRequest) ports.CreateProfileInput {
	return ports.CreateProfileInput{
		PhotographyType: req.PhotographyType,
		City:            req.City,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
		ContactNumber:   req.ContactNumber,
	}
}

func toProfileUpdate(req updateProfileRequest) domain.ProfileUpdate {
	return domain.ProfileUpdate{
		PhotographyType: req.PhotographyType,
		City:            req.City,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
		ContactNumber:   req.ContactNumber,
		Available:       req.Available,
	}
}

// --- Service result → HTTP response ---

func toProfileViewResponse(v *ports.ProfileView) profileViewResponse {
	skills := v.Skills
	if skills == nil {
		skills = []string{}
	}
	photos := v.WorkPhotos
	if photos == nil {
		photos = []string{}
	}
	return profileViewResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		Name:            v.Name,
		Email:           v.Email,
		PhotographyType: v.PhotographyType,
		City:            v.City,
		ExperienceYears: v.ExperienceYears,
		Skills:          skills,
		WorkPhotos:      photos,
		ContactNumber:   v.ContactNumber,
		Available:       v.Available,
		CreatedAt:       v.CreatedAt.UTC(),
	}
}

func toProfileViewResponses(views []ports.ProfileView) []profileViewResponse {
	out := make([]profileViewResponse, len(views))
	for i := range views {
		out[i] = toProfileViewResponse(&views[i])
	}
	return out
}
