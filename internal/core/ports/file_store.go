package ports

import (
	"context"
	"io"
)

// FileStore abstracts the blob area where work photos live.
type FileStore interface {
	// Save persists the content under a freshly generated unique name that
	// preserves originalName's extension, returning the public URL path.
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
}
