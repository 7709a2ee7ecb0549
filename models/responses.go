package models

// Response is the uniform envelope returned by every API endpoint.
// Errors carry Success=false and a human-readable Message; successful
// operations attach their payload under Data.
type Response struct {
	// Success reports whether the operation completed without error.
	Success bool `json:"success"`

	// Message is an optional human-readable description of the outcome.
	// For failures it explains what went wrong without leaking internals.
	Message string `json:"message,omitempty"`

	// Data is the operation-specific payload. Omitted on failure.
	Data any `json:"data,omitempty"`
}

// AuthData is the payload returned by registration and login:
// the account (without its secret) and a freshly issued bearer token.
type AuthData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UserData wraps a single user record.
type UserData struct {
	User User `json:"user"`
}

// UsersData wraps a user listing ordered by creation time, descending.
type UsersData struct {
	Users []User `json:"users"`
}

// HealthData is the payload of the health-check endpoint.
type HealthData struct {
	Timestamp string `json:"timestamp"`
}
