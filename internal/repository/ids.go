package repository

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicate is returned when a unique index rejects a write.
var ErrDuplicate = errors.New("duplicate key")

// ObjectID normalizes a native id or its hex string form. ok is false for
// anything that is not a syntactically valid id; it never panics.
func ObjectID(v any) (primitive.ObjectID, bool) {
	switch x := v.(type) {
	case primitive.ObjectID:
		return x, true
	case *primitive.ObjectID:
		if x == nil {
			return primitive.NilObjectID, false
		}
		return *x, true
	case string:
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(x))
		if err != nil {
			return primitive.NilObjectID, false
		}
		return id, true
	default:
		return primitive.NilObjectID, false
	}
}

func mapWriteErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
