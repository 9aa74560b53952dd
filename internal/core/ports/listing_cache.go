package ports

import "context"

// ListingCache caches discovery listings per filter. Implementations are
// best-effort: callers tolerate errors and fall through to the repository.
type ListingCache interface {
	Get(ctx context.Context, filter ProfileFilter) ([]ProfileView, bool, error)
	Set(ctx context.Context, filter ProfileFilter, views []ProfileView) error
	// Invalidate drops every cached listing. Called after any profile write.
	Invalidate(ctx context.Context) error
}
