package repository

import (
	"context"
	"errors"
	"time"

	"acedating-api/internal/db"
	"acedating-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LetterRepository struct {
	col *mongo.Collection
}

func NewLetterRepository(database *mongo.Database) *LetterRepository {
	return &LetterRepository{col: database.Collection(db.LettersCollection)}
}

// Insert stores a new letter. A second letter for the same sender and
// receiver is rejected by the unique index with ErrDuplicate.
func (r *LetterRepository) Insert(ctx context.Context, l *models.Letter) (primitive.ObjectID, error) {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, l); err != nil {
		return primitive.NilObjectID, mapWriteErr(err)
	}
	return l.ID, nil
}

func (r *LetterRepository) ExistsForPair(ctx context.Context, sender, receiver primitive.ObjectID) (bool, error) {
	n, err := r.col.CountDocuments(ctx,
		bson.M{"sender_id": sender, "receiver_id": receiver},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Inbox lists letters addressed to receiver, newest first.
func (r *LetterRepository) Inbox(ctx context.Context, receiver primitive.ObjectID, limit int) ([]models.Letter, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"receiver_id": receiver}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Letter{}
	for cur.Next(ctx) {
		var l models.Letter
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, cur.Err()
}

func (r *LetterRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Letter, error) {
	var l models.Letter
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// SetReadAt stamps read_at; the receiver filter keeps the write scoped to the
// owner even if the caller skipped the check.
func (r *LetterRepository) SetReadAt(ctx context.Context, id, receiver primitive.ObjectID, at time.Time) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "receiver_id": receiver},
		bson.M{"$set": bson.M{"read_at": at}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *LetterRepository) Delete(ctx context.Context, id, receiver primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "receiver_id": receiver})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
