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

type UserRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{col: database.Collection(db.UsersCollection), now: nowUTC}
}

// Mongo keeps milliseconds; truncating keeps in-memory values equal to stored ones.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (r *UserRepository) Create(ctx context.Context, u models.NewUser) (primitive.ObjectID, error) {
	now := r.now()
	id := u.ID
	if id.IsZero() {
		id = primitive.NewObjectID()
	}

	var token any
	if u.SessionToken != "" {
		token = u.SessionToken
	}

	doc := bson.D{
		{Key: "_id", Value: id},
		{Key: "username", Value: u.Username},
		{Key: "password_hash", Value: u.PasswordHash},
		{Key: "session_token", Value: token},
		{Key: "created_at", Value: now},
		{Key: "updated_at", Value: now},

		{Key: "name", Value: u.Name},
		{Key: "age", Value: u.Age},
		{Key: "city", Value: u.City},
		{Key: "gender", Value: u.Gender},
		{Key: "orientation", Value: u.Orientation},
		{Key: "looking_for", Value: u.LookingFor},
		{Key: "info", Value: u.Info},
		{Key: "contact", Value: u.Contact},
		{Key: "image_url", Value: u.ImageURL},
		{Key: "preference", Value: u.Preference},

		{Key: "liked", Value: bson.A{}},
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, mapWriteErr(err)
	}
	return id, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByID(ctx context.Context, id any) (*models.User, error) {
	uid, ok := ObjectID(id)
	if !ok {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": uid})
}

func (r *UserRepository) FindBySessionToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"session_token": token})
}

// Profile returns the public projection of one user, nil when absent.
func (r *UserRepository) Profile(ctx context.Context, id any) (bson.M, error) {
	uid, ok := ObjectID(id)
	if !ok {
		return nil, nil
	}
	var doc bson.M
	err := r.col.FindOne(ctx, bson.M{"_id": uid},
		options.FindOne().SetProjection(PublicProfileProjection),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	return doc, err
}

func (r *UserRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetField reads one allow-listed field. Disallowed fields, malformed ids and
// missing users all yield nil.
func (r *UserRepository) GetField(ctx context.Context, id any, field Field) (any, error) {
	if !field.Allowed() {
		return nil, nil
	}
	uid, ok := ObjectID(id)
	if !ok {
		return nil, nil
	}

	var doc bson.M
	err := r.col.FindOne(ctx, bson.M{"_id": uid},
		options.FindOne().SetProjection(bson.M{string(field): 1}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc[string(field)], nil
}

// SetField writes one allow-listed field. updated_at is refreshed when touch
// is set, unless the field is itself a timestamp.
func (r *UserRepository) SetField(ctx context.Context, id any, field Field, value any, touch bool) (bool, error) {
	if !field.Allowed() {
		return false, nil
	}
	uid, ok := ObjectID(id)
	if !ok {
		return false, nil
	}

	set := bson.M{string(field): value}
	if touch && !field.isTimestamp() {
		set[string(FieldUpdatedAt)] = r.now()
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": set})
	if err != nil {
		return false, mapWriteErr(err)
	}
	return res.MatchedCount > 0, nil
}

// UpdateProfile applies a partial edit and returns the updated public
// document. An empty edit, a malformed id or a missing user yields nil.
func (r *UserRepository) UpdateProfile(ctx context.Context, id any, upd models.ProfileUpdate) (bson.M, error) {
	uid, ok := ObjectID(id)
	if !ok {
		return nil, nil
	}
	set := upd.Fields()
	if len(set) == 0 {
		return nil, nil
	}
	set[string(FieldUpdatedAt)] = r.now()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(PublicProfileProjection)

	var doc bson.M
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": uid}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, mapWriteErr(err)
	}
	return doc, nil
}

// ResetCredential replaces the password hash of the first user matching the
// alternate key.
func (r *UserRepository) ResetCredential(ctx context.Context, key CredentialKey, value, hash string) (bool, error) {
	if key != ByUsername && key != ByContact {
		return false, nil
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{string(key): value},
		bson.M{"$set": bson.M{
			string(FieldPasswordHash): hash,
			string(FieldUpdatedAt):    r.now(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// ================== LIKES ==================

func (r *UserRepository) AddLiked(ctx context.Context, id, target any) (bool, error) {
	uid, ok1 := ObjectID(id)
	pid, ok2 := ObjectID(target)
	if !ok1 || !ok2 || uid == pid {
		return false, nil
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{
			"$addToSet": bson.M{"liked": pid},
			"$set":      bson.M{"updated_at": r.now()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// RemoveLiked succeeds whenever the owner exists, liked or not.
func (r *UserRepository) RemoveLiked(ctx context.Context, id, target any) (bool, error) {
	uid, ok1 := ObjectID(id)
	pid, ok2 := ObjectID(target)
	if !ok1 || !ok2 {
		return false, nil
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{
			"$pull": bson.M{"liked": pid},
			"$set":  bson.M{"updated_at": r.now()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// likedIDs reads the liked list in stored order. Legacy string entries are
// normalized; unparseable entries and repeats are skipped.
func (r *UserRepository) likedIDs(ctx context.Context, uid primitive.ObjectID) ([]primitive.ObjectID, error) {
	var doc bson.M
	err := r.col.FindOne(ctx, bson.M{"_id": uid},
		options.FindOne().SetProjection(bson.M{"liked": 1}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	raw, _ := doc["liked"].(bson.A)
	out := make([]primitive.ObjectID, 0, len(raw))
	seen := make(map[primitive.ObjectID]struct{}, len(raw))
	for _, v := range raw {
		id, ok := ObjectID(v)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func (r *UserRepository) ListLiked(ctx context.Context, id any) ([]string, error) {
	uid, ok := ObjectID(id)
	if !ok {
		return []string{}, nil
	}
	ids, err := r.likedIDs(ctx, uid)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ids))
	for _, x := range ids {
		out = append(out, x.Hex())
	}
	return out, nil
}

// ListLikedProfiles returns the sanitized public profiles of the liked users
// in liked-list order. Ids that no longer resolve are dropped.
func (r *UserRepository) ListLikedProfiles(ctx context.Context, id any) ([]map[string]any, error) {
	out := []map[string]any{}

	uid, ok := ObjectID(id)
	if !ok {
		return out, nil
	}
	ids, err := r.likedIDs(ctx, uid)
	if err != nil || len(ids) == 0 {
		return out, err
	}

	cur, err := r.col.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(PublicProfileProjection),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	byID := make(map[primitive.ObjectID]bson.M, len(ids))
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		if oid, ok := doc["_id"].(primitive.ObjectID); ok {
			byID[oid] = doc
		}
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	for _, x := range ids {
		if doc, ok := byID[x]; ok {
			out = append(out, Sanitize(doc))
		}
	}
	return out, nil
}

// ================== FEED ==================

// ListProfiles returns public profiles with _id greater than q.After in
// ascending order.
func (r *UserRepository) ListProfiles(ctx context.Context, q models.FeedQuery) ([]bson.M, error) {
	filter := bson.M{}
	if !q.After.IsZero() {
		filter["_id"] = bson.M{"$gt": q.After}
	}
	if q.FilterByViewer {
		// null also matches documents without the field
		filter["preference"] = bson.M{"$in": bson.A{nil, "", q.ViewerGender}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(q.Limit)).
		SetProjection(PublicProfileProjection)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []bson.M{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}

// DisplayNames resolves username, falling back to name, for every id in one
// query. Users without either are absent from the result.
func (r *UserRepository) DisplayNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	out := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.col.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"username": 1, "name": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var u struct {
			ID       primitive.ObjectID `bson:"_id"`
			Username string             `bson:"username"`
			Name     string             `bson:"name"`
		}
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		switch {
		case u.Username != "":
			out[u.ID] = u.Username
		case u.Name != "":
			out[u.ID] = u.Name
		}
	}
	return out, cur.Err()
}

// ================== MAINTENANCE ==================

// BackfillLiked adds an empty liked list to users created before it existed.
func (r *UserRepository) BackfillLiked(ctx context.Context) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"liked": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"liked": bson.A{}}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// BackfillPreference sets preference to "" where it is missing.
func (r *UserRepository) BackfillPreference(ctx context.Context) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"preference": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"preference": ""}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
