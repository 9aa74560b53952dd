package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Adi-cmrec/lenslink/internal/core/domain"
	"github.com/Adi-cmrec/lenslink/internal/core/ports"
)

// --- In-memory repositories shared by the service tests ---

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (string, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return "", domain.ErrEmailTaken
		}
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubProfileRepo struct {
	profiles map[string]*domain.Profile // keyed by user id
	nextID   int
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func cloneProfile(p *domain.Profile) *domain.Profile {
	clone := *p
	if p.Skills != nil {
		clone.Skills = append([]string{}, p.Skills...)
	}
	if p.WorkPhotos != nil {
		clone.WorkPhotos = append([]string{}, p.WorkPhotos...)
	}
	return &clone
}

func (r *stubProfileRepo) Create(_ context.Context, p *domain.Profile) (string, error) {
	if _, exists := r.profiles[p.UserID]; exists {
		return "", domain.ErrProfileExists
	}
	r.nextID++
	clone := cloneProfile(p)
	clone.ID = fmt.Sprintf("profile-%d", r.nextID)
	r.profiles[p.UserID] = clone
	return clone.ID, nil
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return cloneProfile(p), nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	if !strings.HasPrefix(id, "profile-") {
		return nil, domain.ErrInvalidPhotographerID
	}
	for _, p := range r.profiles {
		if p.ID == id {
			return cloneProfile(p), nil
		}
	}
	return nil, domain.ErrPhotographerNotFound
}

func (r *stubProfileRepo) Update(_ context.Context, userID string, upd domain.ProfileUpdate) error {
	p, ok := r.profiles[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	if upd.PhotographyType != nil {
		p.PhotographyType = *upd.PhotographyType
	}
	if upd.City != nil {
		p.City = *upd.City
	}
	if upd.ExperienceYears != nil {
		p.ExperienceYears = *upd.ExperienceYears
	}
	if upd.Skills != nil {
		p.Skills = append([]string(nil), *upd.Skills...)
	}
	if upd.ContactNumber != nil {
		p.ContactNumber = *upd.ContactNumber
	}
	if upd.Available != nil {
		p.Available = *upd.Available
	}
	return nil
}

func (r *stubProfileRepo) AppendWorkPhotos(_ context.Context, userID string, urls []string, limit int) error {
	p, ok := r.profiles[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	if len(p.WorkPhotos)+len(urls) > limit {
		return domain.ErrPhotoLimitExceeded
	}
	p.WorkPhotos = append(p.WorkPhotos, urls...)
	return nil
}

func (r *stubProfileRepo) List(_ context.Context, filter ports.ProfileFilter) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range r.profiles {
		if filter.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(filter.City)) {
			continue
		}
		if filter.PhotographyType != "" && !strings.Contains(strings.ToLower(p.PhotographyType), strings.ToLower(filter.PhotographyType)) {
			continue
		}
		out = append(out, *cloneProfile(p))
	}
	return out, nil
}

// --- File store and cache stubs ---

type stubFileStore struct {
	saved []string
	fail  bool
}

func (s *stubFileStore) Save(_ context.Context, originalName string, content io.Reader) (string, error) {
	if s.fail {
		return "", fmt.Errorf("disk full")
	}
	_, _ = io.Copy(io.Discard, content)
	name := fmt.Sprintf("gen-%d%s", len(s.saved), filepath.Ext(originalName))
	s.saved = append(s.saved, name)
	return "/uploads/" + name, nil
}

type stubListingCache struct {
	entries       map[string][]ports.ProfileView
	invalidations int
	getErr        error
}

func newStubListingCache() *stubListingCache {
	return &stubListingCache{entries: make(map[string][]ports.ProfileView)}
}

func cacheKey(f ports.ProfileFilter) string {
	return f.City + "|" + f.PhotographyType
}

func (c *stubListingCache) Get(_ context.Context, f ports.ProfileFilter) ([]ports.ProfileView, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	views, ok := c.entries[cacheKey(f)]
	return views, ok, nil
}

func (c *stubListingCache) Set(_ context.Context, f ports.ProfileFilter, views []ports.ProfileView) error {
	c.entries[cacheKey(f)] = views
	return nil
}

func (c *stubListingCache) Invalidate(_ context.Context) error {
	c.entries = make(map[string][]ports.ProfileView)
	c.invalidations++
	return nil
}

func fileUpload(name string) ports.FileUpload {
	return ports.FileUpload{Filename: name, Content: bytes.NewReader([]byte("jpeg-bytes"))}
}
