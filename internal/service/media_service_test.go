package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaService_DeleteImage(t *testing.T) {
	store := &fakeObjects{}
	s := NewMediaService(store)
	ctx := context.Background()

	require.NoError(t, s.DeleteImage(ctx, " profile-pics/a.jpg "))
	assert.Equal(t, []string{"profile-pics/a.jpg"}, store.deleted)

	assert.ErrorIs(t, s.DeleteImage(ctx, "  "), ErrValidation)

	store.err = errors.New("s3 down")
	assert.EqualError(t, s.DeleteImage(ctx, "k"), "s3 down")
}

func TestMediaService_UploadURL(t *testing.T) {
	s := NewMediaService(&fakeObjects{})
	ctx := context.Background()

	up, err := s.UploadURL(ctx, "me.png", "image/png")
	require.NoError(t, err)
	assert.Contains(t, up.Key, "me.png")

	_, err = s.UploadURL(ctx, "", "image/png")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.UploadURL(ctx, "notes.txt", "text/plain")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMediaService_Disabled(t *testing.T) {
	s := NewMediaService(nil)
	ctx := context.Background()

	assert.ErrorIs(t, s.DeleteImage(ctx, "k"), ErrUnavailable)
	_, err := s.UploadURL(ctx, "me.png", "image/png")
	assert.ErrorIs(t, err, ErrUnavailable)
}
