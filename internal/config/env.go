// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via the `env` tags defined on
// [StructuredConfig] and its nested types — e.g. ADDRESS for the HTTP listen
// address, DATABASE_URI for the Postgres DSN, TOKEN_SIGN_KEY for the JWT
// secret and PROFILE_PICTURE_DIR for the picture storage directory.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type, such as a malformed TOKEN_DURATION).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
