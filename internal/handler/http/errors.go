// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the bearer-token middleware when parsing the
// "Authorization" HTTP header of account requests. Callers can match against
// them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when a protected account route
	// is requested without any "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("authorization header is required")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a token (i.e. the bearer token
	// is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("malformed authorization header")

	// ErrEmptyToken is returned when the scheme prefix is present but the
	// bearer token itself is an empty string.
	ErrEmptyToken = errors.New("empty bearer token")
)
