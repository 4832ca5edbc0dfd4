package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSanitize_ConvertsIDsAndTimes(t *testing.T) {
	id := primitive.NewObjectID()
	at := time.Date(2025, 3, 4, 5, 6, 7, 123000000, time.UTC)
	local := at.In(time.FixedZone("X", 3*3600))
	tags := bson.A{"a", "b"}

	doc := bson.M{
		"_id":        id,
		"created_at": primitive.NewDateTimeFromTime(at),
		"updated_at": local,
		"read_at":    (*time.Time)(nil),
		"age":        int32(30),
		"name":       "Ana",
		"score":      1.5,
		"active":     true,
		"tags":       tags,
		"contact":    nil,
	}

	out := Sanitize(doc)
	require.Len(t, out, len(doc))

	assert.Equal(t, id.Hex(), out["_id"])
	assert.Equal(t, "2025-03-04T05:06:07.123Z", out["created_at"])
	assert.Equal(t, "2025-03-04T05:06:07.123Z", out["updated_at"])
	assert.Nil(t, out["read_at"])

	// everything else keeps its type
	assert.Equal(t, int32(30), out["age"])
	assert.Equal(t, "Ana", out["name"])
	assert.Equal(t, 1.5, out["score"])
	assert.Equal(t, true, out["active"])
	assert.Equal(t, tags, out["tags"])
	assert.Nil(t, out["contact"])
}

func TestSanitize_KeepList(t *testing.T) {
	id := primitive.NewObjectID()
	out := Sanitize(bson.M{"_id": id, "username": "ana", "city": "Porto"}, "_id", "username", "missing")

	assert.Equal(t, map[string]any{"_id": id.Hex(), "username": "ana"}, out)
}

func TestSanitize_NotRecursive(t *testing.T) {
	inner := primitive.NewObjectID()
	out := Sanitize(bson.M{"liked": bson.A{inner}})

	assert.Equal(t, bson.A{inner}, out["liked"])
}

func TestSanitize_Nil(t *testing.T) {
	assert.Nil(t, Sanitize(nil))
	assert.Empty(t, Sanitize(bson.M{}))
}

func TestSanitize_IDsAndTimesAreStrings(t *testing.T) {
	for i := 0; i < 20; i++ {
		doc := bson.M{
			"_id":        primitive.NewObjectID(),
			"sender_id":  primitive.NewObjectID(),
			"created_at": primitive.NewDateTimeFromTime(time.Now().Add(time.Duration(i) * time.Hour)),
			"n":          i,
		}
		out := Sanitize(doc)
		for _, k := range []string{"_id", "sender_id", "created_at"} {
			assert.IsType(t, "", out[k], k)
		}
		assert.Equal(t, i, out["n"])
	}
}
