package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"playpark/internal/domain/service"
	"playpark/pkg/errors"
)

var allowedExtensions = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"gif":  true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// LocalStorageClient writes uploads to a directory on disk. The same
// directory is mounted read-only under urlPrefix by the static file route, so
// the returned path is directly fetchable.
type LocalStorageClient struct {
	baseDir   string
	urlPrefix string
}

func NewLocalStorageClient(baseDir, urlPrefix string) (*LocalStorageClient, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %v", err)
	}

	return &LocalStorageClient{
		baseDir:   baseDir,
		urlPrefix: urlPrefix,
	}, nil
}

var _ service.FileStorageService = (*LocalStorageClient)(nil)

// Store validates the upload against the image allow-list and writes it under
// a millisecond-timestamp prefix. Both the extension and the declared MIME
// type must pass; nothing is written otherwise. Two uploads of the same name
// within one millisecond collide and the later one wins.
func (c *LocalStorageClient) Store(ctx context.Context, file io.Reader, originalName, contentType string) (string, error) {
	originalName = filepath.Base(originalName)

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(originalName)), ".")
	if !allowedExtensions[ext] {
		return "", errors.UnsupportedType(fmt.Sprintf("File extension %q is not an allowed image type", ext), nil)
	}
	if !allowedContentTypes[contentType] {
		return "", errors.UnsupportedType(fmt.Sprintf("Content type %q is not an allowed image type", contentType), nil)
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), originalName)

	dst, err := os.Create(filepath.Join(c.baseDir, filename))
	if err != nil {
		return "", errors.Internal("Failed to create upload file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", errors.Internal("Failed to write upload file", err)
	}

	return path.Join(c.urlPrefix, filename), nil
}
