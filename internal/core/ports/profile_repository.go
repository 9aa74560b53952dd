package ports

import (
	"context"

	"github.com/Adi-cmrec/lenslink/internal/core/domain"
)

// ProfileFilter narrows a listing. Empty fields match everything; non-empty
// fields are case-insensitive substring matches.
type ProfileFilter struct {
	City            string
	PhotographyType string
}

// ProfileRepository defines the interface for profile persistence.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) (string, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	Update(ctx context.Context, userID string, upd domain.ProfileUpdate) error
	// AppendWorkPhotos atomically appends urls, failing with
	// domain.ErrPhotoLimitExceeded when the result would exceed limit.
	AppendWorkPhotos(ctx context.Context, userID string, urls []string, limit int) error
	List(ctx context.Context, filter ProfileFilter) ([]domain.Profile, error)
}
