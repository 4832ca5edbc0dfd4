package service

import (
	"context"
	"fmt"

	"acedating-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeService manages the one-directional liked list of a user.
type LikeService struct {
	users UserStore
}

func NewLikeService(users UserStore) *LikeService {
	return &LikeService{users: users}
}

// List returns liked ids as hex strings. Unknown users have none.
func (s *LikeService) List(ctx context.Context, userID string) ([]string, error) {
	return s.users.ListLiked(ctx, userID)
}

// Saved returns the public profiles of the liked users.
func (s *LikeService) Saved(ctx context.Context, userID string) ([]map[string]any, error) {
	return s.users.ListLikedProfiles(ctx, userID)
}

func (s *LikeService) Add(ctx context.Context, userID, profileID string) error {
	uid, pid, err := likePair(userID, profileID)
	if err != nil {
		return err
	}
	if uid == pid {
		return fmt.Errorf("%w: cannot like your own profile", ErrValidation)
	}
	ok, err := s.users.AddLiked(ctx, uid, pid)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return nil
}

// Remove succeeds for any existing user, whether or not the profile was liked.
func (s *LikeService) Remove(ctx context.Context, userID, profileID string) error {
	uid, pid, err := likePair(userID, profileID)
	if err != nil {
		return err
	}
	ok, err := s.users.RemoveLiked(ctx, uid, pid)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return nil
}

func likePair(userID, profileID string) (primitive.ObjectID, primitive.ObjectID, error) {
	uid, ok := repository.ObjectID(userID)
	if !ok {
		return uid, uid, fmt.Errorf("%w: invalid user id", ErrValidation)
	}
	pid, ok := repository.ObjectID(profileID)
	if !ok {
		return uid, pid, fmt.Errorf("%w: invalid profile id", ErrValidation)
	}
	return uid, pid, nil
}
