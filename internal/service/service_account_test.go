package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/mock"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAccountSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*accountService,
	*mock.MockUserRepository,
	*mock.MockProfilePictureStorage,
	*mock.MockPasswordHasher,
) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	mockPictures := mock.NewMockProfilePictureStorage(ctrl)
	mockHasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAccountService(mockRepo, mockPictures, mockHasher, logger.NewLogger("test")).(*accountService)

	return svc, mockRepo, mockPictures, mockHasher
}

// ── GetProfile / GetUserByID / ListUsers ─────────────────────────────────────

func TestAccountService_GetProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{UserID: 1, Username: "john"}, nil)

	user, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "john", user.Username)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, int64(404)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetProfile(ctx, 404)
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAccountService_GetUserByID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, int64(7)).Return(models.User{UserID: 7, Username: "mary"}, nil)

	user, err := svc.GetUserByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAccountService_ListUsers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().ListUsers(ctx).Return([]models.User{
		{UserID: 2, Username: "mary"},
		{UserID: 1, Username: "john"},
	}, nil)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "mary", users[0].Username)
}

func TestAccountService_ListUsers_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().ListUsers(ctx).Return(nil, errors.New("db down"))

	_, err := svc.ListUsers(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user listing failed")
}

// ── UpdateProfile ────────────────────────────────────────────────────────────

func TestAccountService_UpdateProfile_NoChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAccountSvc(t, ctrl)

	_, err := svc.UpdateProfile(context.Background(), ProfileUpdate{UserID: 1})
	require.ErrorIs(t, err, ErrNoProfileChanges)
}

func TestAccountService_UpdateProfile_UsernameOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	newUsername := "johnny"

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{UserID: 1, Username: "john"}, nil),
		mockRepo.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.UserUpdate) (models.User, error) {
				require.NotNil(t, u.Username)
				assert.Equal(t, "johnny", *u.Username)
				assert.Nil(t, u.ProfilePicture)
				assert.Nil(t, u.PasswordHash)
				return models.User{UserID: 1, Username: "johnny"}, nil
			},
		),
	)

	updated, err := svc.UpdateProfile(ctx, ProfileUpdate{UserID: 1, Username: &newUsername})
	require.NoError(t, err)
	assert.Equal(t, "johnny", updated.Username)
}

func TestAccountService_UpdateProfile_PictureReplacesOld(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockPictures, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	oldRef := "/uploads/profiles/old.png"
	newRef := "/uploads/profiles/new.png"
	picture := strings.NewReader("picture-bytes")

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{UserID: 1, Username: "john", ProfilePicture: oldRef}, nil),
		mockPictures.EXPECT().Save(ctx, "new.png", picture).Return(newRef, nil),
		mockRepo.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.UserUpdate) (models.User, error) {
				require.NotNil(t, u.ProfilePicture)
				assert.Equal(t, newRef, *u.ProfilePicture)
				return models.User{UserID: 1, Username: "john", ProfilePicture: newRef}, nil
			},
		),
		// the replaced picture is removed only after the record points at the new one
		mockPictures.EXPECT().Delete(ctx, oldRef).Return(nil),
	)

	updated, err := svc.UpdateProfile(ctx, ProfileUpdate{UserID: 1, Picture: picture, PictureFileName: "new.png"})
	require.NoError(t, err)
	assert.Equal(t, newRef, updated.ProfilePicture)
}

func TestAccountService_UpdateProfile_OldPictureCleanupFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockPictures, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	oldRef := "/uploads/profiles/old.png"
	newRef := "/uploads/profiles/new.png"
	picture := strings.NewReader("picture-bytes")

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{UserID: 1, ProfilePicture: oldRef}, nil),
		mockPictures.EXPECT().Save(ctx, "new.png", picture).Return(newRef, nil),
		mockRepo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(models.User{UserID: 1, ProfilePicture: newRef}, nil),
		mockPictures.EXPECT().Delete(ctx, oldRef).Return(errors.New("disk error")),
	)

	// cleanup is best-effort: the update already succeeded
	_, err := svc.UpdateProfile(ctx, ProfileUpdate{UserID: 1, Picture: picture, PictureFileName: "new.png"})
	require.NoError(t, err)
}

func TestAccountService_UpdateProfile_UpdateFailureRemovesNewPicture(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockPictures, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	newRef := "/uploads/profiles/new.png"
	picture := strings.NewReader("picture-bytes")
	newUsername := "taken"

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{UserID: 1}, nil),
		mockPictures.EXPECT().Save(ctx, "new.png", picture).Return(newRef, nil),
		mockRepo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists),
		// the freshly saved file must not be orphaned
		mockPictures.EXPECT().Delete(ctx, newRef).Return(nil),
	)

	_, err := svc.UpdateProfile(ctx, ProfileUpdate{
		UserID:          1,
		Username:        &newUsername,
		Picture:         picture,
		PictureFileName: "new.png",
	})
	require.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAccountService_UpdateProfile_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockPictures, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	picture := strings.NewReader("picture-bytes")

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{UserID: 1}, nil),
		mockPictures.EXPECT().Save(ctx, "new.png", picture).Return("", errors.New("disk full")),
	)

	_, err := svc.UpdateProfile(ctx, ProfileUpdate{UserID: 1, Picture: picture, PictureFileName: "new.png"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving profile picture failed")
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestAccountService_ChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockHasher := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 1, Username: "john", PasswordHash: "$2a$10$old"}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByIDWithSecret(ctx, int64(1)).Return(stored, nil),
		mockHasher.EXPECT().Verify("old-pass", "$2a$10$old").Return(true),
		mockHasher.EXPECT().Hash("new-pass").Return("$2a$10$new", nil),
		mockRepo.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.UserUpdate) (models.User, error) {
				require.NotNil(t, u.PasswordHash)
				assert.Equal(t, "$2a$10$new", *u.PasswordHash)
				assert.Nil(t, u.Username)
				assert.Nil(t, u.ProfilePicture)
				return stored, nil
			},
		),
	)

	err := svc.ChangePassword(ctx, 1, "old-pass", "new-pass")
	require.NoError(t, err)
}

func TestAccountService_ChangePassword_EmptyPasswords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	require.ErrorIs(t, svc.ChangePassword(ctx, 1, "", "new"), ErrInvalidDataProvided)
	require.ErrorIs(t, svc.ChangePassword(ctx, 1, "old", ""), ErrInvalidDataProvided)
}

func TestAccountService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockHasher := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 1, PasswordHash: "$2a$10$old"}

	mockRepo.EXPECT().FindUserByIDWithSecret(ctx, int64(1)).Return(stored, nil)
	mockHasher.EXPECT().Verify("wrong", "$2a$10$old").Return(false)

	err := svc.ChangePassword(ctx, 1, "wrong", "new-pass")
	require.ErrorIs(t, err, ErrInvalidCurrentPassword)
}

func TestAccountService_ChangePassword_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByIDWithSecret(ctx, int64(404)).Return(models.User{}, store.ErrNoUserWasFound)

	err := svc.ChangePassword(ctx, 404, "old", "new")
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ── DeleteAccount ────────────────────────────────────────────────────────────

func TestAccountService_DeleteAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockPictures, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	pictureRef := "/uploads/profiles/p.png"

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{UserID: 1, ProfilePicture: pictureRef}, nil),
		mockRepo.EXPECT().DeleteUser(ctx, int64(1)).Return(nil),
		mockPictures.EXPECT().Delete(ctx, pictureRef).Return(nil),
	)

	require.NoError(t, svc.DeleteAccount(ctx, 1))
}

func TestAccountService_DeleteAccount_NoPicture(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{UserID: 1}, nil),
		mockRepo.EXPECT().DeleteUser(ctx, int64(1)).Return(nil),
	)

	require.NoError(t, svc.DeleteAccount(ctx, 1))
}

func TestAccountService_DeleteAccount_PictureCleanupFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockPictures, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	pictureRef := "/uploads/profiles/p.png"

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{UserID: 1, ProfilePicture: pictureRef}, nil),
		mockRepo.EXPECT().DeleteUser(ctx, int64(1)).Return(nil),
		mockPictures.EXPECT().Delete(ctx, pictureRef).Return(errors.New("disk error")),
	)

	// the account row is gone; a failed file cleanup must not fail the call
	require.NoError(t, svc.DeleteAccount(ctx, 1))
}

func TestAccountService_DeleteAccount_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, int64(404)).Return(models.User{}, store.ErrNoUserWasFound)

	err := svc.DeleteAccount(ctx, 404)
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}
