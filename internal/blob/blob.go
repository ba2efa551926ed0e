// Package blob stores uploaded binary objects and serves them back by URL.
//
// The Store interface keeps callers independent of where bytes actually
// live. The disk implementation writes files under a local directory
// that the server exposes as static content; swapping in an object
// storage backend only requires another Store implementation.
package blob

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrUnsupportedType indicates the content type has no known file extension.
	ErrUnsupportedType = errors.New("unsupported content type")

	// ErrNotFound indicates no object exists for the given public ID.
	ErrNotFound = errors.New("object not found")
)

// UploadResult describes a stored object
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Store persists binary objects and returns public URLs for them
type Store interface {
	Put(ctx context.Context, data []byte, contentType string) (*UploadResult, error)
	Remove(ctx context.Context, publicID string) error
}

// extensions maps accepted image content types to file extensions
var extensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// DiskStore is a Store backed by a local directory. The server mounts
// the directory under a public path so stored objects are reachable at
// baseURL/<publicID>.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates a disk-backed store rooted at dir. Objects are
// addressed as baseURL/<publicID>.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put writes the object to disk under a fresh public ID
func (s *DiskStore) Put(_ context.Context, data []byte, contentType string) (*UploadResult, error) {
	ext, ok := extensions[strings.ToLower(contentType)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	publicID := uuid.NewString() + ext
	path := filepath.Join(s.dir, publicID)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write object: %w", err)
	}

	return &UploadResult{
		URL:      s.baseURL + "/" + publicID,
		PublicID: publicID,
	}, nil
}

// Remove deletes a stored object by public ID
func (s *DiskStore) Remove(_ context.Context, publicID string) error {
	// Guard against path traversal in caller-supplied IDs
	if publicID == "" || publicID != filepath.Base(publicID) {
		return ErrNotFound
	}

	err := os.Remove(filepath.Join(s.dir, publicID))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Dir returns the directory backing the store
func (s *DiskStore) Dir() string {
	return s.dir
}
