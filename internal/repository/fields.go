package repository

// Field names a user document field that the generic get/set helpers may
// touch.
type Field string

const (
	FieldUsername      Field = "username"
	FieldName          Field = "name"
	FieldAge           Field = "age"
	FieldCity          Field = "city"
	FieldGender        Field = "gender"
	FieldOrientation   Field = "orientation"
	FieldLookingFor    Field = "looking_for"
	FieldInfo          Field = "info"
	FieldContact       Field = "contact"
	FieldImageURL      Field = "image_url"
	FieldImagePublicID Field = "image_public_id"
	FieldPreference    Field = "preference"

	FieldPasswordHash Field = "password_hash"
	FieldSessionToken Field = "session_token"
	FieldCreatedAt    Field = "created_at"
	FieldUpdatedAt    Field = "updated_at"

	FieldLiked Field = "liked"
)

var userFields = map[Field]struct{}{
	FieldUsername:      {},
	FieldName:          {},
	FieldAge:           {},
	FieldCity:          {},
	FieldGender:        {},
	FieldOrientation:   {},
	FieldLookingFor:    {},
	FieldInfo:          {},
	FieldContact:       {},
	FieldImageURL:      {},
	FieldImagePublicID: {},
	FieldPreference:    {},
	FieldPasswordHash:  {},
	FieldSessionToken:  {},
	FieldCreatedAt:     {},
	FieldUpdatedAt:     {},
	FieldLiked:         {},
}

func (f Field) Allowed() bool {
	_, ok := userFields[f]
	return ok
}

func (f Field) isTimestamp() bool {
	return f == FieldCreatedAt || f == FieldUpdatedAt
}

// CredentialKey is an alternate lookup key for password resets.
type CredentialKey string

const (
	ByUsername CredentialKey = "username"
	ByContact  CredentialKey = "contact"
)
