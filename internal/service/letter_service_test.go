package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"acedating-api/internal/models"
	"acedating-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type letterFixture struct {
	svc     *LetterService
	users   *memUsers
	letters *memLetters
	ana, bo string
}

func newLetterFixture(t *testing.T) *letterFixture {
	t.Helper()
	users := newMemUsers()
	letters := newMemLetters()
	s := NewLetterService(users, letters)
	s.now = func() time.Time { return testNow }
	return &letterFixture{
		svc:     s,
		users:   users,
		letters: letters,
		ana:     users.add("ana", "Ana", "", "").Hex(),
		bo:      users.add("bo", "Bo", "", "").Hex(),
	}
}

func TestLetterService_Write(t *testing.T) {
	f := newLetterFixture(t)
	ctx := context.Background()

	id, err := f.svc.Write(ctx, f.ana, f.bo, "  hello there  ")
	require.NoError(t, err)

	l := f.letters.get(id)
	require.NotNil(t, l)
	assert.Equal(t, "hello there", l.Body)
	assert.Equal(t, testNow, l.CreatedAt)
	assert.Nil(t, l.ReadAt)

	// second letter for the same ordered pair
	_, err = f.svc.Write(ctx, f.ana, f.bo, "again")
	assert.ErrorIs(t, err, ErrConflict)

	// the reverse direction is a different pair
	_, err = f.svc.Write(ctx, f.bo, f.ana, "hi back")
	assert.NoError(t, err)
}

func TestLetterService_WriteValidation(t *testing.T) {
	f := newLetterFixture(t)
	ctx := context.Background()
	ghost := primitive.NewObjectID().Hex()

	cases := []struct {
		name     string
		from, to string
		text     string
		want     error
	}{
		{"self", f.ana, f.ana, "hi", ErrValidation},
		{"bad sender", "x", f.bo, "hi", ErrValidation},
		{"bad receiver", f.ana, "x", "hi", ErrValidation},
		{"blank", f.ana, f.bo, "   \n ", ErrValidation},
		{"too long", f.ana, f.bo, strings.Repeat("a", models.LetterMaxLen+1), ErrValidation},
		{"missing sender", ghost, f.bo, "hi", ErrNotFound},
		{"missing receiver", f.ana, ghost, "hi", ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Write(ctx, tc.from, tc.to, tc.text)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	items, err := f.svc.Inbox(ctx, f.bo)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLetterService_WriteCountsCharacters(t *testing.T) {
	f := newLetterFixture(t)

	_, err := f.svc.Write(context.Background(), f.ana, f.bo, strings.Repeat("é", models.LetterMaxLen))
	assert.NoError(t, err)
}

func TestLetterService_WriteRace(t *testing.T) {
	f := newLetterFixture(t)
	f.letters.insertErr = repository.ErrDuplicate

	_, err := f.svc.Write(context.Background(), f.ana, f.bo, "hi")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLetterService_Inbox(t *testing.T) {
	f := newLetterFixture(t)
	ctx := context.Background()
	noName := f.users.add("", "Cy", "", "")
	gone := primitive.NewObjectID()

	_, err := f.svc.Write(ctx, f.ana, f.bo, "first")
	require.NoError(t, err)

	f.svc.now = func() time.Time { return testNow.Add(time.Minute) }
	_, err = f.svc.Write(ctx, noName.Hex(), f.bo, "second")
	require.NoError(t, err)

	_, err = f.letters.Insert(ctx, &models.Letter{
		SenderID: gone, ReceiverID: mustID(t, f.bo), Body: "third", CreatedAt: testNow.Add(2 * time.Minute),
	})
	require.NoError(t, err)

	items, err := f.svc.Inbox(ctx, f.bo)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "third", items[0].Body)
	assert.Equal(t, models.UnknownSender, items[0].SenderName)
	assert.Equal(t, "Cy", items[1].SenderName)
	assert.Equal(t, "ana", items[2].SenderName)
	assert.Equal(t, f.ana, items[2].SenderID)
	assert.Equal(t, f.bo, items[2].ReceiverID)
	assert.Equal(t, repository.FormatTime(testNow), items[2].CreatedAt)
	assert.Nil(t, items[2].ReadAt)

	_, err = f.svc.Inbox(ctx, "bad")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLetterService_MarkRead(t *testing.T) {
	f := newLetterFixture(t)
	ctx := context.Background()
	id, err := f.svc.Write(ctx, f.ana, f.bo, "hi")
	require.NoError(t, err)

	_, err = f.svc.MarkRead(ctx, id.Hex(), f.ana)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, f.letters.get(id).ReadAt)

	at, err := f.svc.MarkRead(ctx, id.Hex(), f.bo)
	require.NoError(t, err)
	assert.Equal(t, repository.FormatTime(testNow), at)

	later := testNow.Add(time.Hour)
	f.svc.now = func() time.Time { return later }
	at, err = f.svc.MarkRead(ctx, id.Hex(), f.bo)
	require.NoError(t, err)
	assert.Equal(t, repository.FormatTime(later), at)
	assert.Equal(t, later, *f.letters.get(id).ReadAt)

	_, err = f.svc.MarkRead(ctx, primitive.NewObjectID().Hex(), f.bo)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.MarkRead(ctx, "bad", f.bo)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLetterService_Delete(t *testing.T) {
	f := newLetterFixture(t)
	ctx := context.Background()
	id, err := f.svc.Write(ctx, f.ana, f.bo, "hi")
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, id.Hex(), f.ana), ErrForbidden)
	assert.NotNil(t, f.letters.get(id))

	require.NoError(t, f.svc.Delete(ctx, id.Hex(), f.bo))
	assert.Nil(t, f.letters.get(id))

	assert.ErrorIs(t, f.svc.Delete(ctx, id.Hex(), f.bo), ErrNotFound)
}

func mustID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}
