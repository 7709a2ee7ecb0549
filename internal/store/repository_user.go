// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, mutation, and listing against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, IsActive, timestamps).
//
// The INSERT uses the [createUser] prepared query which returns all default
// projection columns via a RETURNING clause, so the caller receives the
// canonical database representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Username, &created.ProfilePicture, &created.IsActive, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		case "":
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByUsername retrieves a user record by username using the default
// (secret-free) projection. Returns [ErrNoUserWasFound] on an empty result.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.scanUser(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByUsernameWithSecret retrieves a user record by username including
// the stored password hash. Reserved for credential verification flows.
func (r *userRepository) FindUserByUsernameWithSecret(ctx context.Context, username string) (models.User, error) {
	return r.scanUserWithSecret(ctx, "*userRepository.FindUserByUsernameWithSecret", findUserByUsernameWithSecret, username)
}

// FindUserByID retrieves a user record by identifier using the default
// (secret-free) projection. Returns [ErrNoUserWasFound] on an empty result.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.scanUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByIDWithSecret retrieves a user record by identifier including the
// stored password hash. Reserved for credential verification flows.
func (r *userRepository) FindUserByIDWithSecret(ctx context.Context, userID int64) (models.User, error) {
	return r.scanUserWithSecret(ctx, "*userRepository.FindUserByIDWithSecret", findUserByIDWithSecret, userID)
}

// UpdateUser applies a partial update built from the non-nil fields of
// update and returns the canonical updated record.
//
// Error handling:
//   - no non-nil fields → [ErrNoFieldsToUpdate].
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - empty RETURNING result → [ErrNoUserWasFound].
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building update query failed")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.User
	if err := row.Scan(&updated.UserID, &updated.Username, &updated.ProfilePicture, &updated.IsActive, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", update.UserID).Msg("error: updating user failed")

		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrNoUserWasFound
		case postgresError(err) == pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteUser permanently removes a user record. Returns [ErrNoUserWasFound]
// if the record did not exist.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error: deleting user failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ListUsers returns all user records ordered by creation time, descending.
// The listing is unbounded; pagination is out of scope.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: listing users failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Username, &user.ProfilePicture, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// scanUser runs a single-row default-projection query.
func (r *userRepository) scanUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&found.UserID, &found.Username, &found.ProfilePicture, &found.IsActive, &found.CreatedAt, &found.UpdatedAt); err != nil {
		return models.User{}, r.classifyScanError(log, funcName, err)
	}

	return found, nil
}

// scanUserWithSecret runs a single-row secret-projection query.
func (r *userRepository) scanUserWithSecret(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&found.UserID, &found.Username, &found.PasswordHash, &found.ProfilePicture, &found.IsActive, &found.CreatedAt, &found.UpdatedAt); err != nil {
		return models.User{}, r.classifyScanError(log, funcName, err)
	}

	return found, nil
}

func (r *userRepository) classifyScanError(log *logger.Logger, funcName string, err error) error {
	log.Err(err).Str("func", funcName).Msg("error: user lookup failed")

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNoUserWasFound
	case postgresError(err) == pgerrcode.NoDataFound:
		return ErrNoUserWasFound
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
