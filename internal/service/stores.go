package service

import (
	"context"
	"time"

	"acedating-api/internal/media"
	"acedating-api/internal/models"
	"acedating-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the part of repository.UserRepository the services use.
type UserStore interface {
	Create(ctx context.Context, u models.NewUser) (primitive.ObjectID, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindBySessionToken(ctx context.Context, token string) (*models.User, error)
	Profile(ctx context.Context, id any) (bson.M, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	GetField(ctx context.Context, id any, field repository.Field) (any, error)
	SetField(ctx context.Context, id any, field repository.Field, value any, touch bool) (bool, error)
	UpdateProfile(ctx context.Context, id any, upd models.ProfileUpdate) (bson.M, error)
	ResetCredential(ctx context.Context, key repository.CredentialKey, value, hash string) (bool, error)

	AddLiked(ctx context.Context, id, target any) (bool, error)
	RemoveLiked(ctx context.Context, id, target any) (bool, error)
	ListLiked(ctx context.Context, id any) ([]string, error)
	ListLikedProfiles(ctx context.Context, id any) ([]map[string]any, error)

	ListProfiles(ctx context.Context, q models.FeedQuery) ([]bson.M, error)
	DisplayNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
}

type LetterStore interface {
	Insert(ctx context.Context, l *models.Letter) (primitive.ObjectID, error)
	ExistsForPair(ctx context.Context, sender, receiver primitive.ObjectID) (bool, error)
	Inbox(ctx context.Context, receiver primitive.ObjectID, limit int) ([]models.Letter, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Letter, error)
	SetReadAt(ctx context.Context, id, receiver primitive.ObjectID, at time.Time) (bool, error)
	Delete(ctx context.Context, id, receiver primitive.ObjectID) (bool, error)
}

// SessionCache is satisfied by *cache.Cache, including a nil one.
type SessionCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// ObjectStore hosts profile pictures.
type ObjectStore interface {
	Delete(ctx context.Context, key string) error
	UploadURL(ctx context.Context, fileName, contentType string) (*media.Upload, error)
}

var (
	_ UserStore   = (*repository.UserRepository)(nil)
	_ LetterStore = (*repository.LetterRepository)(nil)
	_ ObjectStore = (*media.Store)(nil)
)

func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
