package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the full users document. Handlers never encode it directly; public
// reads go through projections and the sanitizer.
type User struct {
	ID            primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Username      string               `json:"username" bson:"username"`
	PasswordHash  string               `json:"-" bson:"password_hash"`
	SessionToken  *string              `json:"-" bson:"session_token"`
	Name          string               `json:"name" bson:"name"`
	Age           *int                 `json:"age" bson:"age"`
	City          string               `json:"city" bson:"city"`
	Gender        string               `json:"gender" bson:"gender"`
	Orientation   string               `json:"orientation" bson:"orientation"`
	LookingFor    string               `json:"looking_for" bson:"looking_for"`
	Info          string               `json:"info" bson:"info"`
	Contact       string               `json:"contact" bson:"contact"`
	ImageURL      string               `json:"image_url" bson:"image_url"`
	ImagePublicID string               `json:"image_public_id,omitempty" bson:"image_public_id,omitempty"`
	Preference    string               `json:"preference" bson:"preference"`
	Liked         []primitive.ObjectID `json:"-" bson:"liked"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at" bson:"updated_at"`
}

// NewUser carries what signup knows about an account before it exists.
type NewUser struct {
	// ID is assigned by the caller when the session token must embed it;
	// zero lets the repository generate one.
	ID primitive.ObjectID

	Username     string
	PasswordHash string
	SessionToken string

	Name        string
	Age         int
	City        string
	Gender      string
	Orientation string
	LookingFor  string
	Info        string
	Contact     string
	ImageURL    string
	Preference  string
}

// ProfileUpdate is a partial profile edit. Nil fields are left untouched;
// ClearAge stores a null age.
type ProfileUpdate struct {
	Username      *string `json:"username"`
	Name          *string `json:"name"`
	Age           *int    `json:"age"`
	ClearAge      bool    `json:"-"`
	City          *string `json:"city"`
	Gender        *string `json:"gender"`
	Orientation   *string `json:"orientation"`
	LookingFor    *string `json:"looking_for"`
	Info          *string `json:"info"`
	Contact       *string `json:"contact"`
	ImageURL      *string `json:"image_url"`
	ImagePublicID *string `json:"image_public_id"`
	Preference    *string `json:"preference"`
}

// Fields returns the $set document for the non-nil fields.
func (p ProfileUpdate) Fields() map[string]any {
	out := map[string]any{}
	set := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	set("username", p.Username)
	set("name", p.Name)
	set("city", p.City)
	set("gender", p.Gender)
	set("orientation", p.Orientation)
	set("looking_for", p.LookingFor)
	set("info", p.Info)
	set("contact", p.Contact)
	set("image_url", p.ImageURL)
	set("image_public_id", p.ImagePublicID)
	set("preference", p.Preference)
	switch {
	case p.Age != nil:
		out["age"] = *p.Age
	case p.ClearAge:
		out["age"] = nil
	}
	return out
}

// FeedQuery selects one page of the profile feed.
type FeedQuery struct {
	After primitive.ObjectID // zero means from the start
	Limit int
	// ViewerGender is applied only when FilterByViewer is set: profiles with
	// an empty preference, or one equal to it, are visible.
	FilterByViewer bool
	ViewerGender   string
}
