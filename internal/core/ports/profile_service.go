package ports

import (
	"context"
	"io"
	"time"

	"github.com/Adi-cmrec/lenslink/internal/core/domain"
)

// CreateProfileInput carries the fields a photographer supplies when creating
// their profile. work_photos starts empty and available starts true.
type CreateProfileInput struct {
	PhotographyType string
	City            string
	ExperienceYears int
	Skills          []string
	ContactNumber   string
}

// FileUpload is a single uploaded photo as received from the transport layer.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// ProfileView is a profile enriched with the owner's name and email.
type ProfileView struct {
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

type ProfileService interface {
	Create(ctx context.Context, userID string, in CreateProfileInput) (string, error)
	Update(ctx context.Context, userID string, upd domain.ProfileUpdate) (*ProfileView, error)
	GetMine(ctx context.Context, userID string) (*ProfileView, error)
	// UploadPhotos persists the files and appends their public paths to
	// work_photos. Rejected wholesale when the ceiling would be exceeded.
	UploadPhotos(ctx context.Context, userID string, files []FileUpload) ([]string, error)
}
