package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-account-service/models"
)

// UserRepository is the persistence contract consumed by the services.
//
// Two projections exist for reads: the default one excludes the password
// hash, and the *WithSecret variants include it. The secret projection is
// used only by credential-verification flows (login, change-password).
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrUsernameAlreadyExists if the unique
	// constraint rejects the username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks an account up by its username.
	// The password hash is not loaded.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByUsernameWithSecret looks an account up by its username,
	// including the stored password hash.
	FindUserByUsernameWithSecret(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks an account up by its identifier.
	// The password hash is not loaded.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByIDWithSecret looks an account up by its identifier,
	// including the stored password hash.
	FindUserByIDWithSecret(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies the non-nil fields of update to one record and
	// returns the updated account. Returns ErrUsernameAlreadyExists on a
	// username collision and ErrNoUserWasFound if the record is gone.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// DeleteUser permanently removes an account record. There is no
	// recovery path. Returns ErrNoUserWasFound if nothing was deleted.
	DeleteUser(ctx context.Context, userID int64) error

	// ListUsers returns every account ordered by creation time, newest
	// first. Unbounded.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ProfilePictureStorage is an opaque byte-store for uploaded profile images,
// keyed by filename. Save returns the stable reference stored on the user
// record; Delete accepts that same reference.
type ProfilePictureStorage interface {
	Save(ctx context.Context, fileName string, data io.Reader) (string, error)
	Delete(ctx context.Context, reference string) error

	// Dir returns the directory the pictures are served from.
	Dir() string
}
