package models

// Credentials is the request body accepted by the registration and login
// endpoints.
type Credentials struct {
	// Username is the unique login identifier. Required.
	Username string `json:"username"`

	// Password is the plaintext password. Required. Hashed immediately on
	// receipt; never persisted or logged.
	Password string `json:"password"`
}

// ChangePasswordRequest is the request body of the change-password endpoint.
type ChangePasswordRequest struct {
	// CurrentPassword must match the stored credential for the change to
	// be applied.
	CurrentPassword string `json:"currentPassword"`

	// NewPassword replaces the stored credential on success.
	NewPassword string `json:"newPassword"`
}
