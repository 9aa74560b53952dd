package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createProfileRequest struct {
	PhotographyType string   `json:"photography_type" validate:"required"`
	City            string   `json:"city"             validate:"required"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0"`
	Skills          []string `json:"skills"`
	ContactNumber   string   `json:"contact_number"   validate:"required"`
}

// updateProfileRequest is a partial merge. Pointer fields distinguish
// "present" from "absent"; both a missing key and an explicit null decode to
// nil and mean "no change". Fields cannot be cleared.
type updateProfileRequest struct {
	PhotographyType *string   `json:"photography_type"`
	City            *string   `json:"city"`
	ExperienceYears *int      `json:"experience_years"`
	Skills          *[]string `json:"skills"`
	ContactNumber   *string   `json:"contact_number"`
	Available       *bool     `json:"available"`
}

// --- Response types, owned by the transport layer ---

type signupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

type createProfileResponse struct {
	Message   string `json:"message"`
	ProfileID string `json:"profile_id"`
}

type uploadResponse struct {
	Message  string   `json:"message"`
	FileURLs []string `json:"file_urls"`
}

// profileViewResponse is the enriched profile payload shared by the profile
// and discovery endpoints.
type profileViewResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PhotographyType string    `json:"photography_type"`
	City            string    `json:"city"`
	ExperienceYears int       `json:"experience_years"`
	Skills          []string  `json:"skills"`
	WorkPhotos      []string  `json:"work_photos"`
	ContactNumber   string    `json:"contact_number"`
	Available       bool      `json:"available"`
	CreatedAt       time.Time `json:"created_at"`
}
