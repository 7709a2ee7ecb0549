// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-service/internal/crypto"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/models"
)

// accountService is the concrete implementation of AccountService.
// It covers everything an authenticated user does with an account after
// login: profile reads, listings, profile mutation, password change, and
// account removal.
type accountService struct {
	userRepository store.UserRepository
	pictures       store.ProfilePictureStorage
	hasher         crypto.PasswordHasher

	logger *logger.Logger
}

// NewAccountService constructs an AccountService over the given repository,
// picture storage, and password hasher.
func NewAccountService(userRepository store.UserRepository, pictures store.ProfilePictureStorage, hasher crypto.PasswordHasher, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		pictures:       pictures,
		hasher:         hasher,
		logger:         logger,
	}
}

// GetProfile returns the account record of the calling user.
//
// Returns a wrapped store.ErrNoUserWasFound if the account no longer exists
// (deleted between token issuance and this call).
func (s *accountService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// GetUserByID returns any account record by identifier.
func (s *accountService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// ListUsers returns every account, newest first.
func (s *accountService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// UpdateProfile applies the profile changes in update and returns the
// updated account record.
//
// When a new picture is uploaded it is persisted first; if the subsequent
// database update fails, the freshly saved file is removed so no orphan is
// left behind. When the update succeeds and the account previously carried a
// different picture, the old file is deleted best-effort: a failed cleanup
// is logged but never fails the request, since the account record already
// points at the new picture.
//
// Returns:
//   - ErrNoProfileChanges if neither a username nor a picture was provided.
//   - store.ErrUsernameAlreadyExists (wrapped) if the new username is taken.
//   - store.ErrNoUserWasFound (wrapped) if the account does not exist.
func (s *accountService) UpdateProfile(ctx context.Context, update ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Username == nil && update.Picture == nil {
		return models.User{}, ErrNoProfileChanges
	}

	current, err := s.userRepository.FindUserByID(ctx, update.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", update.UserID).Msg("profile lookup before update failed")
		return models.User{}, fmt.Errorf("profile lookup before update failed: %w", err)
	}

	fields := models.UserUpdate{
		UserID:   update.UserID,
		Username: update.Username,
	}

	var newPictureRef string
	if update.Picture != nil {
		newPictureRef, err = s.pictures.Save(ctx, update.PictureFileName, update.Picture)
		if err != nil {
			log.Err(err).Int64("user_id", update.UserID).Msg("saving profile picture failed")
			return models.User{}, fmt.Errorf("saving profile picture failed: %w", err)
		}
		fields.ProfilePicture = &newPictureRef
	}

	updated, err := s.userRepository.UpdateUser(ctx, fields)
	if err != nil {
		if newPictureRef != "" {
			if cleanupErr := s.pictures.Delete(ctx, newPictureRef); cleanupErr != nil {
				log.Err(cleanupErr).Str("picture", newPictureRef).Msg("cleanup of unused profile picture failed")
			}
		}
		log.Err(err).Int64("user_id", update.UserID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	if newPictureRef != "" && current.ProfilePicture != "" && current.ProfilePicture != newPictureRef {
		if err := s.pictures.Delete(ctx, current.ProfilePicture); err != nil {
			log.Err(err).Str("picture", current.ProfilePicture).Msg("cleanup of replaced profile picture failed")
		}
	}

	return updated, nil
}

// ChangePassword replaces the account password after verifying the current
// one.
//
// Returns:
//   - ErrInvalidDataProvided if either password is empty.
//   - ErrInvalidCurrentPassword if the current password does not match.
//   - store.ErrNoUserWasFound (wrapped) if the account does not exist.
func (s *accountService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if currentPassword == "" || newPassword == "" {
		log.Error().Int64("user_id", userID).Msg("invalid password change data provided")
		return ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByIDWithSecret(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup for password change failed")
		return fmt.Errorf("user lookup for password change failed: %w", err)
	}

	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		log.Error().Int64("user_id", userID).Msg("current password verification failed")
		return ErrInvalidCurrentPassword
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if _, err := s.userRepository.UpdateUser(ctx, models.UserUpdate{UserID: userID, PasswordHash: &newHash}); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// DeleteAccount permanently removes the account record and, best-effort, its
// stored profile picture. A picture cleanup failure is logged but does not
// fail the deletion: the account row is already gone at that point.
//
// Returns a wrapped store.ErrNoUserWasFound if the account does not exist.
func (s *accountService) DeleteAccount(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup for deletion failed")
		return fmt.Errorf("user lookup for deletion failed: %w", err)
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	if user.ProfilePicture != "" {
		if err := s.pictures.Delete(ctx, user.ProfilePicture); err != nil {
			log.Err(err).Str("picture", user.ProfilePicture).Msg("cleanup of deleted account picture failed")
		}
	}

	return nil
}
