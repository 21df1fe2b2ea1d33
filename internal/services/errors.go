package services

import "errors"

var (
	// ErrNotFound means no record matched the lookup key.
	ErrNotFound = errors.New("not found")
	// ErrBadCredentials means the account exists but the password is wrong.
	ErrBadCredentials = errors.New("invalid password")
)
