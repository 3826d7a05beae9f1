// Package upload implements cover-image upload handling: extension
// validation, collision-free naming, and delegation to a storage backend.
package upload

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
)

// Store is the storage backend for uploaded images.
type Store interface {
	// Save persists the reader's bytes under the given filename and returns
	// the public URL the file is served at.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	// Remove deletes the stored file.
	Remove(ctx context.Context, filename string) error
}

// allowedExtensions is the extension whitelist for uploads.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Service provides the image upload use case.
type Service struct {
	Store Store
}

// Upload stores the image under a fresh uuid-based name, keeping the
// original extension, and returns its public URL. The original filename is
// never trusted beyond its extension.
func (s *Service) Upload(ctx context.Context, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", &entity.ValidationError{
			Field:   "file",
			Message: fmt.Sprintf("extension %q is not an allowed image type", ext),
		}
	}

	filename := uuid.New().String() + ext

	url, err := s.Store.Save(ctx, filename, r)
	if err != nil {
		return "", &entity.UpstreamError{Op: "upload", Err: err}
	}
	return url, nil
}

// Delete removes a previously uploaded image given its public URL.
func (s *Service) Delete(ctx context.Context, url string) error {
	filename := path.Base(url)
	if filename == "" || filename == "." || filename == "/" || strings.Contains(filename, "..") {
		return &entity.ValidationError{Field: "url", Message: "not a stored image URL"}
	}

	if err := s.Store.Remove(ctx, filename); err != nil {
		return &entity.UpstreamError{Op: "delete upload", Err: err}
	}
	return nil
}
