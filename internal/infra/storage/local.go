// Package storage provides the image storage backends. The only current
// implementation keeps files on local disk and serves them through the
// /immagini/ file server route.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore stores uploaded images on the local filesystem.
type LocalStore struct {
	// Dir is the directory uploads are written to.
	Dir string
	// BaseURL is the public prefix files are served under, e.g. "/immagini".
	BaseURL string
}

// NewLocalStore creates the upload directory if needed and returns a store
// writing into it.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{Dir: dir, BaseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save writes the reader's bytes to disk and returns the public URL.
func (s *LocalStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	if filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	dst := filepath.Join(s.Dir, filename)
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", filename, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", filename, err)
	}

	return s.BaseURL + "/" + filename, nil
}

// Remove deletes the stored file.
func (s *LocalStore) Remove(_ context.Context, filename string) error {
	if filepath.Base(filename) != filename {
		return fmt.Errorf("invalid filename %q", filename)
	}
	if err := os.Remove(filepath.Join(s.Dir, filename)); err != nil {
		return fmt.Errorf("remove %s: %w", filename, err)
	}
	return nil
}
