package service

import (
	"context"
	"io"
)

// Uploader stores generated documents and resolves image references to
// delivery URLs.
type Uploader interface {
	// Upload stores a raw file and returns its public URL.
	Upload(ctx context.Context, file io.Reader, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
	// ImageURL returns a display URL for an image reference. Absolute http(s)
	// URLs and site-relative paths are returned as they are.
	ImageURL(ref string, width, height int) string
}
