package service

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"acedating-api/internal/media"
	"acedating-api/internal/models"
	"acedating-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// memUsers is an in-memory UserStore with the same observable behavior as
// the Mongo repository.
type memUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
	now   func() time.Time

	// createErr, when set, is returned by Create in place of an insert.
	createErr error
}

func newMemUsers() *memUsers {
	return &memUsers{
		users: map[primitive.ObjectID]*models.User{},
		now:   func() time.Time { return testNow },
	}
}

// add inserts a ready user and returns its id.
func (m *memUsers) add(username, name, gender, preference string) primitive.ObjectID {
	id, err := m.Create(context.Background(), models.NewUser{
		Username: username, Name: name, Gender: gender, Preference: preference, Age: 30,
	})
	if err != nil {
		panic(err)
	}
	return id
}

func (m *memUsers) get(id primitive.ObjectID) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil
	}
	cp := *u
	cp.Liked = slices.Clone(u.Liked)
	return &cp
}

func (m *memUsers) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func (m *memUsers) byUsername(username string) *models.User {
	for _, u := range m.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (m *memUsers) Create(_ context.Context, nu models.NewUser) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return primitive.NilObjectID, m.createErr
	}
	if m.byUsername(nu.Username) != nil {
		return primitive.NilObjectID, repository.ErrDuplicate
	}
	id := nu.ID
	if id.IsZero() {
		id = primitive.NewObjectID()
	}
	age := nu.Age
	var token *string
	if nu.SessionToken != "" {
		t := nu.SessionToken
		token = &t
	}
	now := m.now()
	m.users[id] = &models.User{
		ID: id, Username: nu.Username, PasswordHash: nu.PasswordHash, SessionToken: token,
		Name: nu.Name, Age: &age, City: nu.City, Gender: nu.Gender, Orientation: nu.Orientation,
		LookingFor: nu.LookingFor, Info: nu.Info, Contact: nu.Contact, ImageURL: nu.ImageURL,
		Preference: nu.Preference, Liked: []primitive.ObjectID{},
		CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	u := m.byUsername(username)
	m.mu.Unlock()
	if u == nil {
		return nil, nil
	}
	return m.get(u.ID), nil
}

func (m *memUsers) FindBySessionToken(_ context.Context, token string) (*models.User, error) {
	m.mu.Lock()
	var found primitive.ObjectID
	for id, u := range m.users {
		if u.SessionToken != nil && *u.SessionToken == token {
			found = id
		}
	}
	m.mu.Unlock()
	if found.IsZero() {
		return nil, nil
	}
	return m.get(found), nil
}

func publicDoc(u *models.User) bson.M {
	return bson.M{
		"_id":        u.ID,
		"username":   u.Username,
		"name":       u.Name,
		"age":        u.Age,
		"gender":     u.Gender,
		"preference": u.Preference,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func (m *memUsers) Profile(_ context.Context, id any) (bson.M, error) {
	uid, ok := repository.ObjectID(id)
	if !ok {
		return nil, nil
	}
	u := m.get(uid)
	if u == nil {
		return nil, nil
	}
	return publicDoc(u), nil
}

func (m *memUsers) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	return m.get(id) != nil, nil
}

func (m *memUsers) GetField(_ context.Context, id any, field repository.Field) (any, error) {
	uid, ok := repository.ObjectID(id)
	if !ok || !field.Allowed() {
		return nil, nil
	}
	u := m.get(uid)
	if u == nil {
		return nil, nil
	}
	switch field {
	case repository.FieldGender:
		return u.Gender, nil
	case repository.FieldSessionToken:
		if u.SessionToken == nil {
			return nil, nil
		}
		return *u.SessionToken, nil
	}
	return nil, nil
}

func (m *memUsers) SetField(_ context.Context, id any, field repository.Field, value any, touch bool) (bool, error) {
	uid, ok := repository.ObjectID(id)
	if !ok || !field.Allowed() {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return false, nil
	}
	switch field {
	case repository.FieldSessionToken:
		t, _ := value.(string)
		u.SessionToken = &t
	case repository.FieldGender:
		u.Gender, _ = value.(string)
	}
	if touch {
		u.UpdatedAt = m.now()
	}
	return true, nil
}

func (m *memUsers) UpdateProfile(_ context.Context, id any, upd models.ProfileUpdate) (bson.M, error) {
	uid, ok := repository.ObjectID(id)
	if !ok || len(upd.Fields()) == 0 {
		return nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return nil, nil
	}
	if upd.Username != nil {
		if other := m.byUsername(*upd.Username); other != nil && other.ID != uid {
			return nil, repository.ErrDuplicate
		}
		u.Username = *upd.Username
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Age != nil {
		age := *upd.Age
		u.Age = &age
	}
	if upd.ClearAge {
		u.Age = nil
	}
	if upd.Gender != nil {
		u.Gender = *upd.Gender
	}
	if upd.Preference != nil {
		u.Preference = *upd.Preference
	}
	u.UpdatedAt = m.now()
	return publicDoc(u), nil
}

func (m *memUsers) ResetCredential(_ context.Context, key repository.CredentialKey, value, hash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if (key == repository.ByUsername && u.Username == value) || (key == repository.ByContact && u.Contact == value) {
			u.PasswordHash = hash
			u.UpdatedAt = m.now()
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) AddLiked(_ context.Context, id, target any) (bool, error) {
	uid, ok1 := repository.ObjectID(id)
	pid, ok2 := repository.ObjectID(target)
	if !ok1 || !ok2 || uid == pid {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return false, nil
	}
	if !slices.Contains(u.Liked, pid) {
		u.Liked = append(u.Liked, pid)
	}
	u.UpdatedAt = m.now()
	return true, nil
}

func (m *memUsers) RemoveLiked(_ context.Context, id, target any) (bool, error) {
	uid, ok1 := repository.ObjectID(id)
	pid, ok2 := repository.ObjectID(target)
	if !ok1 || !ok2 {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return false, nil
	}
	u.Liked = slices.DeleteFunc(u.Liked, func(x primitive.ObjectID) bool { return x == pid })
	u.UpdatedAt = m.now()
	return true, nil
}

func (m *memUsers) ListLiked(_ context.Context, id any) ([]string, error) {
	out := []string{}
	uid, ok := repository.ObjectID(id)
	if !ok {
		return out, nil
	}
	u := m.get(uid)
	if u == nil {
		return out, nil
	}
	for _, x := range u.Liked {
		out = append(out, x.Hex())
	}
	return out, nil
}

func (m *memUsers) ListLikedProfiles(_ context.Context, id any) ([]map[string]any, error) {
	out := []map[string]any{}
	uid, ok := repository.ObjectID(id)
	if !ok {
		return out, nil
	}
	u := m.get(uid)
	if u == nil {
		return out, nil
	}
	for _, x := range u.Liked {
		if p := m.get(x); p != nil {
			out = append(out, repository.Sanitize(publicDoc(p)))
		}
	}
	return out, nil
}

func (m *memUsers) ListProfiles(_ context.Context, q models.FeedQuery) ([]bson.M, error) {
	m.mu.Lock()
	ids := make([]primitive.ObjectID, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	m.mu.Unlock()
	slices.SortFunc(ids, func(a, b primitive.ObjectID) int {
		return slices.Compare(a[:], b[:])
	})

	out := []bson.M{}
	for _, id := range ids {
		if !q.After.IsZero() && slices.Compare(id[:], q.After[:]) <= 0 {
			continue
		}
		u := m.get(id)
		if q.FilterByViewer && u.Preference != "" && u.Preference != q.ViewerGender {
			continue
		}
		out = append(out, publicDoc(u))
		if len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (m *memUsers) DisplayNames(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	out := map[primitive.ObjectID]string{}
	for _, id := range ids {
		u := m.get(id)
		switch {
		case u == nil:
		case u.Username != "":
			out[id] = u.Username
		case u.Name != "":
			out[id] = u.Name
		}
	}
	return out, nil
}

// memLetters is an in-memory LetterStore enforcing one letter per pair.
type memLetters struct {
	mu      sync.Mutex
	letters map[primitive.ObjectID]*models.Letter

	insertErr error
}

func newMemLetters() *memLetters {
	return &memLetters{letters: map[primitive.ObjectID]*models.Letter{}}
}

func (m *memLetters) get(id primitive.ObjectID) *models.Letter {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.letters[id]
	if !ok {
		return nil
	}
	cp := *l
	return &cp
}

func (m *memLetters) Insert(_ context.Context, l *models.Letter) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return primitive.NilObjectID, m.insertErr
	}
	for _, x := range m.letters {
		if x.SenderID == l.SenderID && x.ReceiverID == l.ReceiverID {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	cp := *l
	m.letters[l.ID] = &cp
	return l.ID, nil
}

func (m *memLetters) ExistsForPair(_ context.Context, sender, receiver primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.letters {
		if x.SenderID == sender && x.ReceiverID == receiver {
			return true, nil
		}
	}
	return false, nil
}

func (m *memLetters) Inbox(_ context.Context, receiver primitive.ObjectID, limit int) ([]models.Letter, error) {
	m.mu.Lock()
	out := []models.Letter{}
	for _, x := range m.letters {
		if x.ReceiverID == receiver {
			out = append(out, *x)
		}
	}
	m.mu.Unlock()
	slices.SortFunc(out, func(a, b models.Letter) int { return b.CreatedAt.Compare(a.CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memLetters) FindByID(_ context.Context, id primitive.ObjectID) (*models.Letter, error) {
	return m.get(id), nil
}

func (m *memLetters) SetReadAt(_ context.Context, id, receiver primitive.ObjectID, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.letters[id]
	if !ok || l.ReceiverID != receiver {
		return false, nil
	}
	l.ReadAt = &at
	return true, nil
}

func (m *memLetters) Delete(_ context.Context, id, receiver primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.letters[id]
	if !ok || l.ReceiverID != receiver {
		return false, nil
	}
	delete(m.letters, id)
	return true, nil
}

// memCache is a SessionCache over a map. TTLs are recorded, not enforced.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttl  map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

func (c *memCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	b, ok := c.data[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	c.ttl[key] = ttl
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		delete(c.ttl, k)
	}
	return nil
}

type fakeObjects struct {
	deleted []string
	err     error
}

func (f *fakeObjects) Delete(_ context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeObjects) UploadURL(_ context.Context, fileName, _ string) (*media.Upload, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &media.Upload{URL: "https://upload.example/" + fileName, Key: "profile-pics/x-" + fileName}, nil
}
