package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"acedating-api/internal/models"
	"acedating-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultFeedLimit = 24
	MaxFeedLimit     = 60
)

type ProfileService struct {
	users UserStore
}

func NewProfileService(users UserStore) *ProfileService {
	return &ProfileService{users: users}
}

type FeedRequest struct {
	Limit    *int   // nil means DefaultFeedLimit
	Cursor   string // last _id of the previous page
	ViewerID string
}

type FeedPage struct {
	Items      []map[string]any `json:"items"`
	NextCursor *string          `json:"next_cursor"`
	HasMore    bool             `json:"has_more"`
}

// ClampLimit applies the feed default and bounds.
func ClampLimit(limit *int) int {
	if limit == nil {
		return DefaultFeedLimit
	}
	return max(1, min(*limit, MaxFeedLimit))
}

// Feed returns one page of profiles in ascending id order. A malformed cursor
// restarts from the beginning. When the viewer resolves to a user with a
// gender, profiles whose preference names another gender are hidden.
func (s *ProfileService) Feed(ctx context.Context, req FeedRequest) (*FeedPage, error) {
	limit := ClampLimit(req.Limit)
	q := models.FeedQuery{Limit: limit + 1}

	if after, ok := repository.ObjectID(req.Cursor); ok {
		q.After = after
	}

	if viewer, ok := repository.ObjectID(req.ViewerID); ok {
		v, err := s.users.GetField(ctx, viewer, repository.FieldGender)
		if err != nil {
			return nil, err
		}
		if gender, ok := v.(string); ok {
			q.FilterByViewer = true
			q.ViewerGender = gender
		}
	}

	docs, err := s.users.ListProfiles(ctx, q)
	if err != nil {
		return nil, err
	}

	page := &FeedPage{HasMore: len(docs) > limit}
	if page.HasMore {
		docs = docs[:limit]
	}
	page.Items = make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		page.Items = append(page.Items, repository.Sanitize(d))
	}
	if page.HasMore && len(docs) > 0 {
		if last, ok := docs[len(docs)-1]["_id"].(primitive.ObjectID); ok {
			next := last.Hex()
			page.NextCursor = &next
		}
	}
	return page, nil
}

func (s *ProfileService) Get(ctx context.Context, userID string) (map[string]any, error) {
	uid, ok := repository.ObjectID(userID)
	if !ok {
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}
	doc, err := s.users.Profile(ctx, uid)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: profile not found", ErrNotFound)
	}
	return repository.Sanitize(doc), nil
}

// Update applies a partial edit on behalf of requesterID, which must be the
// profile owner.
func (s *ProfileService) Update(ctx context.Context, userID, requesterID string, upd models.ProfileUpdate) (map[string]any, error) {
	uid, ok := repository.ObjectID(userID)
	if !ok {
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}
	rid, ok := repository.ObjectID(requesterID)
	if !ok || rid != uid {
		return nil, fmt.Errorf("%w: only the owner can edit this profile", ErrForbidden)
	}

	if upd.Username != nil {
		name := strings.TrimSpace(*upd.Username)
		if name == "" {
			return nil, fmt.Errorf("%w: username cannot be empty", ErrValidation)
		}
		upd.Username = &name
	}
	if upd.Age != nil && *upd.Age < 0 {
		return nil, fmt.Errorf("%w: age must be a positive number", ErrValidation)
	}
	if len(upd.Fields()) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	doc, err := s.users.UpdateProfile(ctx, uid, upd)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, fmt.Errorf("%w: username already exists", ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: profile not found", ErrNotFound)
	}
	return repository.Sanitize(doc), nil
}
