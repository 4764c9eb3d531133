package validators

import "errors"

var (
	ErrInvalidUsername    = errors.New("username must contain only lowercase letters and digits")
	ErrWeakPassword       = errors.New("password must be at least 10 characters and contain a lowercase letter, an uppercase letter, a digit and a special character")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrEmptyEmail         = errors.New("email is required")
	ErrEmptyTitle         = errors.New("memo title is required")
	ErrEmptyContent       = errors.New("memo content is required")
	ErrTitleTooLong       = errors.New("memo title exceeds maximum length")
	ErrContentTooLong     = errors.New("memo content exceeds maximum length")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrPasswordNotChanged = errors.New("new password must differ from the current one")
)
