package service

import (
	"context"
	"io"
)

// FileStorageService stores uploaded images and yields the URL path the
// stored file is served under.
type FileStorageService interface {
	Store(ctx context.Context, file io.Reader, originalName, contentType string) (string, error)
}
