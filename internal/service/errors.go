package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrNotAuthorized       = errors.New("not authorized")

	// ErrIncompleteIdentity rejects a social login whose provider payload is
	// missing the subject id or the email, before any storage access.
	ErrIncompleteIdentity = errors.New("incomplete social identity")
)
