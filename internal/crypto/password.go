// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by [PasswordHasher.Hash] when the supplied
// plaintext is empty. An empty credential must never reach the store.
var ErrEmptyPassword = errors.New("empty password provided")

// bcryptHasher is the production implementation of [PasswordHasher].
//
// bcrypt embeds a per-hash random salt and its own cost parameter inside the
// produced string, so the stored value is fully self-describing: the cost can
// be raised later without invalidating existing hashes.
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] backed by bcrypt with the
// given cost. Costs outside the range supported by the bcrypt library fall
// back to bcrypt.DefaultCost (10).
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher]. It returns [ErrEmptyPassword] for empty
// input and otherwise delegates to bcrypt, which salts from the OS CSPRNG.
func (b *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher]. bcrypt's comparison is constant-time
// with respect to the password; any error (mismatch, malformed hash, wrong
// format) collapses to false so callers cannot distinguish the cases.
func (b *bcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
