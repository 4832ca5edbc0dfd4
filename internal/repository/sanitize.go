package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Projections applied at query time. Sanitize does not strip fields, so any
// read that reaches a client must use one of these.
var (
	SafeUserProjection = bson.M{
		"password_hash": 0,
		"session_token": 0,
	}

	// liked holds nested ObjectIDs that Sanitize does not convert.
	PublicProfileProjection = bson.M{
		"password_hash": 0,
		"session_token": 0,
		"liked":         0,
	}
)

// FormatTime renders a timestamp the way every response carries it.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Sanitize converts top-level ObjectIDs to hex strings and timestamps to
// ISO-8601 strings. It is not recursive. With keep set, only those keys are
// copied.
func Sanitize(doc bson.M, keep ...string) map[string]any {
	if doc == nil {
		return nil
	}

	var allowed map[string]struct{}
	if len(keep) > 0 {
		allowed = make(map[string]struct{}, len(keep))
		for _, k := range keep {
			allowed[k] = struct{}{}
		}
	}

	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if allowed != nil {
			if _, ok := allowed[k]; !ok {
				continue
			}
		}
		out[k] = transportValue(v)
	}
	return out
}

func transportValue(v any) any {
	switch x := v.(type) {
	case primitive.ObjectID:
		return x.Hex()
	case primitive.DateTime:
		return FormatTime(x.Time())
	case time.Time:
		return FormatTime(x)
	case *time.Time:
		if x == nil {
			return nil
		}
		return FormatTime(*x)
	default:
		return v
	}
}
