// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto provides the credential-hashing primitives of the
// application. It deliberately exposes only an interface plus a single
// production implementation so that services stay decoupled from the
// concrete hashing algorithm.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher defines one-way password hashing and verification.
//
// Implementations must produce salted, non-deterministic output in a
// self-describing format, and must compare in a way that does not leak
// timing information about the stored hash.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	// Fails on empty input; never returns the plaintext in any form.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the stored
	// hash. It never fails outward: a malformed or foreign-format hash
	// simply yields false.
	Verify(password, hash string) bool
}
