package domain

import (
	"errors"
	"time"
)

// MaxWorkPhotos caps the portfolio size per profile.
const MaxWorkPhotos = 5

var ErrProfileExists = errors.New("profile already exists")
var ErrProfileNotFound = errors.New("profile not found")
var ErrPhotographerNotFound = errors.New("photographer not found")
var ErrInvalidPhotographerID = errors.New("invalid photographer id")
var ErrPhotoLimitExceeded = errors.New("maximum 5 photos allowed")

// Profile is the photographer-specific record, one per user. work_photos only
// grows; there is no delete endpoint.
type Profile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	PhotographyType string    `json:"photography_type"`
	City            string    `json:"city"`
	ExperienceYears int       `json:"experience_years"`
	Skills          []string  `json:"skills"`
	WorkPhotos      []string  `json:"work_photos"`
	ContactNumber   string    `json:"contact_number"`
	Available       bool      `json:"available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProfileUpdate is a partial merge: nil means "leave the field untouched".
// There is deliberately no way to clear a field back to its zero value.
type ProfileUpdate struct {
	PhotographyType *string
	City            *string
	ExperienceYears *int
	Skills          *[]string
	ContactNumber   *string
	Available       *bool
}

// IsEmpty reports whether the update would touch nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.PhotographyType == nil &&
		u.City == nil &&
		u.ExperienceYears == nil &&
		u.Skills == nil &&
		u.ContactNumber == nil &&
		u.Available == nil
}
