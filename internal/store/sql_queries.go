package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-account-service/models"
)

// Column sets for the two read projections. The default projection never
// loads the password hash; the secret one is reserved for credential
// verification flows.
const (
	userColumns       = "user_id, username, profile_picture, is_active, created_at, updated_at"
	userSecretColumns = "user_id, username, password_hash, profile_picture, is_active, created_at, updated_at"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByUsernameWithSecret = `SELECT ` + userSecretColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	findUserByIDWithSecret = `SELECT ` + userSecretColumns + `
    FROM users
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListUsersQuery builds the unbounded listing query ordered by creation
// time, newest first.
func buildListUsersQuery() (string, []any, error) {
	query, args, err := psql.
		Select(userColumns).
		From("users").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery dynamically builds a partial UPDATE from the non-nil
// fields of update. updated_at is always bumped. The statement returns the
// default (secret-free) projection of the updated row.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	builder := psql.Update("users").Set("updated_at", sq.Expr("NOW()"))

	hasFields := false
	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
		hasFields = true
	}
	if update.ProfilePicture != nil {
		builder = builder.Set("profile_picture", *update.ProfilePicture)
		hasFields = true
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
		hasFields = true
	}

	if !hasFields {
		return "", nil, ErrNoFieldsToUpdate
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
