// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/crypto"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher for
// password storage.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies stored password hashes.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and hasher, populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that both Username and Password are non-empty, hashes the
// password, and delegates persistence to the UserRepository. The plaintext
// password never reaches the storage layer.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
//   - A wrapped storage error if the repository call fails otherwise.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	// optimistic duplicate check; the unique constraint remains the authority
	_, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err == nil {
		log.Error().Str("username", credentials.Username).Msg("username is already taken")
		return models.User{}, store.ErrUsernameAlreadyExists
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("username", credentials.Username).Msg("error checking username availability")
		return models.User{}, fmt.Errorf("error checking username availability: %w", err)
	}

	passwordHash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.PasswordHash = ""

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Username and Password are non-empty, looks up the
// account with its stored hash, and verifies the supplied password against
// it. An unknown username and a wrong password are indistinguishable to the
// caller: both yield ErrInvalidCredentials. The account's active flag is
// checked only after the password has been verified, so a deactivated
// account cannot be probed without knowing its password.
//
// Returns the authenticated user record (without the password hash) or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrInvalidCredentials if the user does not exist or the password is wrong.
//   - ErrAccountDeactivated if the credentials are valid but the account is
//     deactivated.
//   - A wrapped storage error on unexpected repository failures.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsernameWithSecret(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("username", credentials.Username).Msg("login attempt for unknown username")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(credentials.Password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("login attempt for deactivated account")
		return models.User{}, ErrAccountDeactivated
	}

	foundUser.PasswordHash = ""

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
