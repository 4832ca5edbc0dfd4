package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"acedating-api/internal/models"
	"acedating-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LetterService handles introduction letters: one per ordered pair of users.
type LetterService struct {
	users   UserStore
	letters LetterStore
	now     func() time.Time
}

func NewLetterService(users UserStore, letters LetterStore) *LetterService {
	return &LetterService{users: users, letters: letters, now: nowUTC}
}

func (s *LetterService) Write(ctx context.Context, senderID, receiverID, text string) (primitive.ObjectID, error) {
	sender, ok := repository.ObjectID(senderID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid user id", ErrValidation)
	}
	receiver, ok := repository.ObjectID(receiverID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid profile id", ErrValidation)
	}
	if sender == receiver {
		return primitive.NilObjectID, fmt.Errorf("%w: cannot write a letter to yourself", ErrValidation)
	}

	text = strings.TrimSpace(text)
	switch n := utf8.RuneCountInString(text); {
	case n == 0:
		return primitive.NilObjectID, fmt.Errorf("%w: letter cannot be empty", ErrValidation)
	case n > models.LetterMaxLen:
		return primitive.NilObjectID, fmt.Errorf("%w: letter is longer than %d characters", ErrValidation, models.LetterMaxLen)
	}

	if err := s.mustExist(ctx, sender, "user not found"); err != nil {
		return primitive.NilObjectID, err
	}
	if err := s.mustExist(ctx, receiver, "profile not found"); err != nil {
		return primitive.NilObjectID, err
	}

	sent, err := s.letters.ExistsForPair(ctx, sender, receiver)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if sent {
		return primitive.NilObjectID, fmt.Errorf("%w: you already wrote to this profile", ErrConflict)
	}

	id, err := s.letters.Insert(ctx, &models.Letter{
		SenderID:   sender,
		ReceiverID: receiver,
		Body:       text,
		CreatedAt:  s.now(),
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return primitive.NilObjectID, fmt.Errorf("%w: you already wrote to this profile", ErrConflict)
	}
	return id, err
}

func (s *LetterService) mustExist(ctx context.Context, id primitive.ObjectID, msg string) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	}
	return nil
}

// Inbox lists the newest letters addressed to userID with sender names
// resolved in one lookup.
func (s *LetterService) Inbox(ctx context.Context, userID string) ([]models.InboxItem, error) {
	receiver, ok := repository.ObjectID(userID)
	if !ok {
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}

	letters, err := s.letters.Inbox(ctx, receiver, models.InboxLimit)
	if err != nil {
		return nil, err
	}

	senders := make([]primitive.ObjectID, 0, len(letters))
	seen := make(map[primitive.ObjectID]struct{}, len(letters))
	for _, l := range letters {
		if _, dup := seen[l.SenderID]; !dup {
			seen[l.SenderID] = struct{}{}
			senders = append(senders, l.SenderID)
		}
	}
	names, err := s.users.DisplayNames(ctx, senders)
	if err != nil {
		return nil, err
	}

	items := make([]models.InboxItem, 0, len(letters))
	for _, l := range letters {
		name, ok := names[l.SenderID]
		if !ok {
			name = models.UnknownSender
		}
		item := models.InboxItem{
			ID:         l.ID.Hex(),
			SenderID:   l.SenderID.Hex(),
			SenderName: name,
			ReceiverID: l.ReceiverID.Hex(),
			Body:       l.Body,
			CreatedAt:  repository.FormatTime(l.CreatedAt),
		}
		if l.ReadAt != nil {
			at := repository.FormatTime(*l.ReadAt)
			item.ReadAt = &at
		}
		items = append(items, item)
	}
	return items, nil
}

// MarkRead stamps the letter as read now and returns the new read_at. Only
// the receiver may do this; marking again overwrites the timestamp.
func (s *LetterService) MarkRead(ctx context.Context, letterID, userID string) (string, error) {
	letter, uid, err := s.ownedLetter(ctx, letterID, userID)
	if err != nil {
		return "", err
	}

	at := s.now()
	ok, err := s.letters.SetReadAt(ctx, letter.ID, uid, at)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: letter not found", ErrNotFound)
	}
	return repository.FormatTime(at), nil
}

func (s *LetterService) Delete(ctx context.Context, letterID, userID string) error {
	letter, uid, err := s.ownedLetter(ctx, letterID, userID)
	if err != nil {
		return err
	}
	ok, err := s.letters.Delete(ctx, letter.ID, uid)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: letter not found", ErrNotFound)
	}
	return nil
}

func (s *LetterService) ownedLetter(ctx context.Context, letterID, userID string) (*models.Letter, primitive.ObjectID, error) {
	lid, ok := repository.ObjectID(letterID)
	if !ok {
		return nil, primitive.NilObjectID, fmt.Errorf("%w: invalid letter id", ErrValidation)
	}
	uid, ok := repository.ObjectID(userID)
	if !ok {
		return nil, primitive.NilObjectID, fmt.Errorf("%w: invalid user id", ErrValidation)
	}

	letter, err := s.letters.FindByID(ctx, lid)
	if err != nil {
		return nil, primitive.NilObjectID, err
	}
	if letter == nil {
		return nil, primitive.NilObjectID, fmt.Errorf("%w: letter not found", ErrNotFound)
	}
	if letter.ReceiverID != uid {
		return nil, primitive.NilObjectID, fmt.Errorf("%w: only the receiver can do this", ErrForbidden)
	}
	return letter, uid, nil
}
