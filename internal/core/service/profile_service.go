package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Adi-cmrec/lenslink/internal/core/domain"
	"github.com/Adi-cmrec/lenslink/internal/core/ports"
)

// ProfileService manages the acting user's own profile: create, partial
// update, self view, and work-photo uploads.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	store    ports.FileStore
	cache    ports.ListingCache
	log      zerolog.Logger
}

func NewProfileService(
	profiles ports.ProfileRepository,
	users ports.UserRepository,
	store ports.FileStore,
	cache ports.ListingCache,
	log zerolog.Logger,
) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, store: store, cache: cache, log: log}
}

func (s *ProfileService) Create(ctx context.Context, userID string, in ports.CreateProfileInput) (string, error) {
	if _, err := s.profiles.FindByUserID(ctx, userID); err == nil {
		return "", domain.ErrProfileExists
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return "", err
	}

	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}

	profile := &domain.Profile{
		UserID:          userID,
		PhotographyType: in.PhotographyType,
		City:            in.City,
		ExperienceYears: in.ExperienceYears,
		Skills:          skills,
		WorkPhotos:      []string{},
		ContactNumber:   in.ContactNumber,
		Available:       true,
	}

	id, err := s.profiles.Create(ctx, profile)
	if err != nil {
		return "", err
	}

	s.invalidateListings(ctx)
	s.log.Info().Str("profile_id", id).Str("user_id", userID).Msg("profile created")
	return id, nil
}

func (s *ProfileService) Update(ctx context.Context, userID string, upd domain.ProfileUpdate) (*ports.ProfileView, error) {
	if _, err := s.profiles.FindByUserID(ctx, userID); err != nil {
		return nil, err
	}

	// An empty update is a no-op read; nothing to write or invalidate.
	if !upd.IsEmpty() {
		if err := s.profiles.Update(ctx, userID, upd); err != nil {
			return nil, err
		}
		s.invalidateListings(ctx)
	}

	return s.GetMine(ctx, userID)
}

func (s *ProfileService) GetMine(ctx context.Context, userID string) (*ports.ProfileView, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile owner: %w", err)
	}

	view := enrich(profile, owner)
	return &view, nil
}

func (s *ProfileService) UploadPhotos(ctx context.Context, userID string, files []ports.FileUpload) ([]string, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(profile.WorkPhotos)+len(files) > domain.MaxWorkPhotos {
		return nil, fmt.Errorf("%w: you already have %d", domain.ErrPhotoLimitExceeded, len(profile.WorkPhotos))
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.store.Save(ctx, f.Filename, f.Content)
		if err != nil {
			return nil, fmt.Errorf("save photo: %w", err)
		}
		urls = append(urls, url)
	}

	// Conditional append: a concurrent upload racing past the check above
	// loses here and work_photos stays untouched. Saved files are orphaned
	// in that case, which is acceptable for a grow-only blob area.
	if err := s.profiles.AppendWorkPhotos(ctx, userID, urls, domain.MaxWorkPhotos); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	s.log.Info().Str("user_id", userID).Int("count", len(urls)).Msg("work photos uploaded")
	return urls, nil
}

func (s *ProfileService) invalidateListings(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("listing cache invalidation failed")
	}
}

// enrich merges a profile with the owner's public fields for display.
func enrich(p *domain.Profile, owner *domain.User) ports.ProfileView {
	return ports.ProfileView{
		ID:              p.ID,
		UserID:          p.UserID,
		Name:            owner.Name,
		Email:           owner.Email,
		PhotographyType: p.PhotographyType,
		City:            p.City,
		ExperienceYears: p.ExperienceYears,
		Skills:          p.Skills,
		WorkPhotos:      p.WorkPhotos,
		ContactNumber:   p.ContactNumber,
		Available:       p.Available,
		CreatedAt:       p.CreatedAt,
	}
}
