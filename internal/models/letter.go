package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LetterMaxLen  = 2000
	InboxLimit    = 200
	UnknownSender = "Someone"
)

// Letter is a one-off introduction message from sender to receiver.
type Letter struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	SenderID   primitive.ObjectID `json:"sender_id" bson:"sender_id"`
	ReceiverID primitive.ObjectID `json:"receiver_id" bson:"receiver_id"`
	Body       string             `json:"letter" bson:"letter"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	ReadAt     *time.Time         `json:"read_at" bson:"read_at"`
}

// InboxItem is a letter as the receiver sees it.
type InboxItem struct {
	ID         string  `json:"_id"`
	SenderID   string  `json:"sender_id"`
	SenderName string  `json:"sender_name"`
	ReceiverID string  `json:"receiver_id"`
	Body       string  `json:"letter"`
	CreatedAt  string  `json:"created_at"`
	ReadAt     *string `json:"read_at"`
}
