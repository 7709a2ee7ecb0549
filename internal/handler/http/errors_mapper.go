package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/service"
	"github.com/MKhiriev/go-account-service/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:    http.StatusBadRequest,
	service.ErrNoProfileChanges:       http.StatusBadRequest,
	service.ErrInvalidCurrentPassword: http.StatusBadRequest,
	service.ErrInvalidCredentials:     http.StatusUnauthorized,
	service.ErrAccountDeactivated:     http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrNoFieldsToUpdate:      http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing message for each classified error.
// Unclassified errors fall back to a generic message so that internals never
// leak into responses.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     "username and password are required",
	service.ErrNoProfileChanges:        "no profile changes provided",
	service.ErrInvalidCurrentPassword:  "current password is incorrect",
	service.ErrInvalidCredentials:      "invalid username or password",
	service.ErrAccountDeactivated:      "account is deactivated",
	service.ErrTokenIsExpiredOrInvalid: "token is expired or invalid",

	store.ErrUsernameAlreadyExists: "username already exists",
	store.ErrNoUserWasFound:        "user not found",
	store.ErrNoFieldsToUpdate:      "no fields to update",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return "internal server error"
}

// respondError maps a service/storage error to its HTTP status and
// client-facing message and writes the failure envelope.
func respondError(w http.ResponseWriter, err error) {
	writeError(w, messageFromError(err), statusFromError(err))
}
