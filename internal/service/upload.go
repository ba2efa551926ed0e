package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/roamly/api/internal/blob"
)

// UploadService accepts base64 data URLs from clients and hands the
// decoded bytes to the blob store.
type UploadService struct {
	store blob.Store
}

// NewUploadService creates a new upload service
func NewUploadService(store blob.Store) *UploadService {
	return &UploadService{store: store}
}

// UploadImage decodes a data URL (data:image/png;base64,...) and stores
// the image, returning its public URL and ID.
func (s *UploadService) UploadImage(ctx context.Context, dataURL string) (*blob.UploadResult, error) {
	if strings.TrimSpace(dataURL) == "" {
		return nil, ErrNoImage
	}

	contentType, data, err := parseDataURL(dataURL)
	if err != nil {
		return nil, err
	}

	result, err := s.store.Put(ctx, data, contentType)
	if err != nil {
		if errors.Is(err, blob.ErrUnsupportedType) {
			return nil, ErrInvalidImage
		}
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	return result, nil
}

// parseDataURL splits a base64 data URL into content type and raw bytes
func parseDataURL(dataURL string) (string, []byte, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, ErrInvalidImage
	}

	rest := dataURL[len("data:"):]
	sep := strings.Index(rest, ",")
	if sep < 0 {
		return "", nil, ErrInvalidImage
	}

	meta := rest[:sep]
	payload := rest[sep+1:]

	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, ErrInvalidImage
	}
	contentType := strings.TrimSuffix(meta, ";base64")
	if contentType == "" {
		return "", nil, ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalidImage
	}
	if len(data) == 0 {
		return "", nil, ErrInvalidImage
	}

	return contentType, data, nil
}
