package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-account-service/models"
)

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AccountService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	UpdateProfile(ctx context.Context, update ProfileUpdate) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, userID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ProfileUpdate carries the mutable profile fields of an account. Nil
// Username and nil Picture mean "leave unchanged"; at least one of the two
// must be set.
type ProfileUpdate struct {
	UserID int64

	// Username is the new login identifier, if any.
	Username *string

	// Picture is the uploaded image content, if any. PictureFileName is the
	// storage file name the image is saved under.
	Picture         io.Reader
	PictureFileName string
}
