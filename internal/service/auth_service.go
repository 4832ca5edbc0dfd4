package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"acedating-api/internal/logging"
	"acedating-api/internal/models"
	"acedating-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const sessionKeyPrefix = "session:"

type AuthService struct {
	users    UserStore
	sessions SessionCache
	log      logging.Logger
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(users UserStore, sessions SessionCache, log logging.Logger, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		log:      log,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      nowUTC,
	}
}

type SignupData struct {
	Username string
	Password string
	Age      *int

	Name        string
	Orientation string
	LookingFor  string
	ImageURL    string
	City        string
	Gender      string
	Info        string
	Contact     string
	Preference  string
}

// Session is what signup and login hand back to the client.
type Session struct {
	Token  string
	UserID primitive.ObjectID
}

type sessionEntry struct {
	UserID string `json:"user_id"`
}

// ================== SIGNUP & LOGIN ==================

func (s *AuthService) Signup(ctx context.Context, data SignupData) (*Session, error) {
	username := strings.TrimSpace(data.Username)
	if username == "" || data.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if data.Age == nil {
		return nil, fmt.Errorf("%w: age must be a number", ErrValidation)
	}
	if *data.Age < 0 {
		return nil, fmt.Errorf("%w: age must be a positive number", ErrValidation)
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username already exists", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id := primitive.NewObjectID()
	token, err := s.issueToken(id)
	if err != nil {
		return nil, err
	}

	_, err = s.users.Create(ctx, models.NewUser{
		ID:           id,
		Username:     username,
		PasswordHash: string(hash),
		SessionToken: token,

		Name:        strings.TrimSpace(data.Name),
		Age:         *data.Age,
		City:        data.City,
		Gender:      data.Gender,
		Orientation: data.Orientation,
		LookingFor:  data.LookingFor,
		Info:        data.Info,
		Contact:     data.Contact,
		ImageURL:    data.ImageURL,
		Preference:  data.Preference,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, fmt.Errorf("%w: username already exists", ErrConflict)
	}
	if err != nil {
		return nil, err
	}

	s.remember(ctx, token, id, s.ttl)
	return &Session{Token: token, UserID: id}, nil
}

// Login checks the password and rotates the session token. A failed attempt
// leaves the stored token untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return nil, err
	}
	ok, err := s.users.SetField(ctx, u.ID, repository.FieldSessionToken, token, true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	if u.SessionToken != nil && *u.SessionToken != "" {
		if err := s.sessions.Delete(ctx, sessionKeyPrefix+*u.SessionToken); err != nil {
			s.log.Warn(ctx, "session cache delete failed", "user_id", u.ID.Hex(), "error", err)
		}
	}
	s.remember(ctx, token, u.ID, s.ttl)
	return &Session{Token: token, UserID: u.ID}, nil
}

// ResolveSession returns the user a bearer token belongs to. The token must
// verify and still be the user's current one.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (primitive.ObjectID, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid session token", ErrUnauthorized)
	}

	var entry sessionEntry
	found, err := s.sessions.GetJSON(ctx, sessionKeyPrefix+token, &entry)
	if err != nil {
		s.log.Warn(ctx, "session cache read failed", "error", err)
	}
	if found {
		if id, ok := repository.ObjectID(entry.UserID); ok {
			return id, nil
		}
	}

	u, err := s.users.FindBySessionToken(ctx, token)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if u == nil {
		return primitive.NilObjectID, fmt.Errorf("%w: session expired", ErrUnauthorized)
	}
	ttl := s.ttl
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}
	s.remember(ctx, token, u.ID, ttl)
	return u.ID, nil
}

// ResetPassword replaces the password of the user found by key.
func (s *AuthService) ResetPassword(ctx context.Context, key repository.CredentialKey, value, password string) error {
	value = strings.TrimSpace(value)
	if value == "" || password == "" {
		return fmt.Errorf("%w: lookup value and password are required", ErrValidation)
	}
	if key != repository.ByUsername && key != repository.ByContact {
		return fmt.Errorf("%w: unknown lookup key %q", ErrValidation, key)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	ok, err := s.users.ResetCredential(ctx, key, value, string(hash))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no user with %s %q", ErrNotFound, key, value)
	}
	return nil
}

// ================== TOKENS ==================

func (s *AuthService) issueToken(id primitive.ObjectID) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   id.Hex(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *AuthService) parseToken(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *AuthService) remember(ctx context.Context, token string, id primitive.ObjectID, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	err := s.sessions.SetJSON(ctx, sessionKeyPrefix+token, sessionEntry{UserID: id.Hex()}, ttl)
	if err != nil {
		s.log.Warn(ctx, "session cache write failed", "user_id", id.Hex(), "error", err)
	}
}
