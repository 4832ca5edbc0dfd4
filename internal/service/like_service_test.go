package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLikeService_AddIsIdempotent(t *testing.T) {
	users := newMemUsers()
	me := users.add("ana", "", "", "").Hex()
	other := users.add("bo", "", "", "").Hex()
	s := NewLikeService(users)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, me, other))
	require.NoError(t, s.Add(ctx, me, other))

	liked, err := s.List(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, []string{other}, liked)
}

func TestLikeService_AddRejects(t *testing.T) {
	users := newMemUsers()
	me := users.add("ana", "", "", "").Hex()
	s := NewLikeService(users)
	ctx := context.Background()

	assert.ErrorIs(t, s.Add(ctx, me, me), ErrValidation)
	assert.ErrorIs(t, s.Add(ctx, "bad", me), ErrValidation)
	assert.ErrorIs(t, s.Add(ctx, me, "bad"), ErrValidation)
	assert.ErrorIs(t, s.Add(ctx, primitive.NewObjectID().Hex(), me), ErrNotFound)

	liked, err := s.List(ctx, me)
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestLikeService_Remove(t *testing.T) {
	users := newMemUsers()
	me := users.add("ana", "", "", "").Hex()
	other := users.add("bo", "", "", "").Hex()
	s := NewLikeService(users)
	ctx := context.Background()

	// never liked, still fine
	require.NoError(t, s.Remove(ctx, me, other))

	require.NoError(t, s.Add(ctx, me, other))
	require.NoError(t, s.Remove(ctx, me, other))
	liked, err := s.List(ctx, me)
	require.NoError(t, err)
	assert.Empty(t, liked)

	assert.ErrorIs(t, s.Remove(ctx, primitive.NewObjectID().Hex(), other), ErrNotFound)
}

func TestLikeService_Saved(t *testing.T) {
	users := newMemUsers()
	me := users.add("ana", "", "", "").Hex()
	b := users.add("bo", "", "", "").Hex()
	c := users.add("cy", "", "", "").Hex()
	s := NewLikeService(users)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, me, c))
	require.NoError(t, s.Add(ctx, me, b))

	items, err := s.Saved(ctx, me)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, c, items[0]["_id"])
	assert.Equal(t, b, items[1]["_id"])

	items, err = s.Saved(ctx, "bad")
	require.NoError(t, err)
	assert.Empty(t, items)
}
