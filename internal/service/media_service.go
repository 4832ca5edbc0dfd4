package service

import (
	"context"
	"fmt"
	"strings"

	"acedating-api/internal/media"
)

type MediaService struct {
	store ObjectStore
}

// NewMediaService accepts a nil store; every call then fails with
// ErrUnavailable.
func NewMediaService(store ObjectStore) *MediaService {
	return &MediaService{store: store}
}

func (s *MediaService) DeleteImage(ctx context.Context, publicID string) error {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return fmt.Errorf("%w: public_id is required", ErrValidation)
	}
	if s.store == nil {
		return fmt.Errorf("%w: image host is not configured", ErrUnavailable)
	}
	return s.store.Delete(ctx, publicID)
}

func (s *MediaService) UploadURL(ctx context.Context, fileName, contentType string) (*media.Upload, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, fmt.Errorf("%w: file_name is required", ErrValidation)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: content_type must be an image type", ErrValidation)
	}
	if s.store == nil {
		return nil, fmt.Errorf("%w: image host is not configured", ErrUnavailable)
	}
	return s.store.UploadURL(ctx, fileName, contentType)
}
