package service

import (
	"context"
	"io"
)

// ImageStore defines the interface to the external image hosting provider.
// Uploads return a public URL which is the only thing the rest of the system
// ever stores.
type ImageStore interface {
	// Save stores the image content under the given name and returns its
	// publicly reachable URL.
	Save(ctx context.Context, name string, contentType string, content io.Reader) (string, error)
}
