package ports

import "context"

type DiscoveryService interface {
	// List returns enriched views of every matching profile. Profiles whose
	// owning user record is missing are skipped.
	List(ctx context.Context, filter ProfileFilter) ([]ProfileView, error)
	// GetByID returns a single enriched view, failing with
	// domain.ErrInvalidPhotographerID on a malformed id and
	// domain.ErrPhotographerNotFound when nothing matches.
	GetByID(ctx context.Context, id string) (*ProfileView, error)
}
