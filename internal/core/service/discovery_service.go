package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Adi-cmrec/lenslink/internal/core/domain"
	"github.com/Adi-cmrec/lenslink/internal/core/ports"
)

// DiscoveryService serves the public browse surface: filtered listings and
// single-profile lookups, both enriched with the owner's name and email.
type DiscoveryService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	cache    ports.ListingCache
	log      zerolog.Logger
}

func NewDiscoveryService(
	profiles ports.ProfileRepository,
	users ports.UserRepository,
	cache ports.ListingCache,
	log zerolog.Logger,
) *DiscoveryService {
	return &DiscoveryService{profiles: profiles, users: users, cache: cache, log: log}
}

func (s *DiscoveryService) List(ctx context.Context, filter ports.ProfileFilter) ([]ports.ProfileView, error) {
	if views, ok, err := s.cache.Get(ctx, filter); err != nil {
		s.log.Warn().Err(err).Msg("listing cache read failed, querying store")
	} else if ok {
		return views, nil
	}

	profiles, err := s.profiles.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	views := make([]ports.ProfileView, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		owner, err := s.users.FindByID(ctx, p.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				// Orphaned profile: owner record gone, skip silently.
				s.log.Debug().Str("profile_id", p.ID).Msg("skipping profile without owner")
				continue
			}
			return nil, fmt.Errorf("load profile owner: %w", err)
		}
		views = append(views, enrich(p, owner))
	}

	if err := s.cache.Set(ctx, filter, views); err != nil {
		s.log.Warn().Err(err).Msg("listing cache write failed")
	}

	return views, nil
}

func (s *DiscoveryService) GetByID(ctx context.Context, id string) (*ports.ProfileView, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.FindByID(ctx, profile.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Orphaned profile resolves to not-found, matching List which
			// skips it.
			return nil, domain.ErrPhotographerNotFound
		}
		return nil, fmt.Errorf("load profile owner: %w", err)
	}

	view := enrich(profile, owner)
	return &view, nil
}
