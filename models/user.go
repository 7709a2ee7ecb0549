package models

import "time"

// User represents an account entity used for authentication and profile
// management. It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the persistence layer at creation time and immutable after.
	UserID int64 `json:"id"`

	// Username is the unique, case-sensitive login identifier.
	// Uniqueness is enforced by the database at write time.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON and is loaded only by the
	// *WithSecret repository projections.
	PasswordHash string `json:"-"`

	// ProfilePicture is an optional reference to an uploaded image,
	// e.g. "/uploads/profiles/<name>". Empty when no picture is set.
	ProfilePicture string `json:"profile_picture,omitempty"`

	// IsActive reports whether the account may obtain new session tokens.
	// Login is rejected for deactivated accounts; already-issued tokens
	// remain valid until their natural expiry.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation of the record.
	// Maintained by the store on every update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate represents a partial update of a single user record.
// Only non-nil fields will be updated (partial update support).
type UserUpdate struct {
	// UserID is the unique identifier of the record to update.
	// Required.
	UserID int64 `json:"id"`

	// Username is the new unique login identifier.
	// If nil, the field will not be updated.
	Username *string `json:"username,omitempty"`

	// ProfilePicture is the new profile image reference.
	// If nil, the field will not be updated.
	ProfilePicture *string `json:"profile_picture,omitempty"`

	// PasswordHash is the new bcrypt password hash.
	// If nil, the field will not be updated. Never plaintext.
	PasswordHash *string `json:"-"`
}
