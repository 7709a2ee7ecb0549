package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrAccountDeactivated      = errors.New("account is deactivated")
	ErrInvalidCurrentPassword  = errors.New("current password is incorrect")
	ErrNoProfileChanges        = errors.New("no profile changes provided")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
