// Package validators encodes the input rules enforced before any storage
// access: the username and password policy for local registration and the
// bounds on memo titles and contents.
package validators

import (
	"regexp"
	"unicode/utf8"

	"github.com/haeun-dev/memo-server/models"
)

// Bounds on memo fields, matching the column sizes in the memo table.
const (
	MaxTitleLength   = 100
	MaxContentLength = 1000
)

// usernamePattern accepts lowercase latin letters and digits only.
var usernamePattern = regexp.MustCompile(`^[a-z0-9]+$`)

// PasswordSymbols is the fixed set of special characters accepted by the
// password policy. Generated temporary passwords draw from the same set.
const PasswordSymbols = "@$!%*?&-_+=<>"

// ValidateUsername checks the local registration username rule: non-empty,
// lowercase latin letters and digits only.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}

	return nil
}

// ValidatePassword checks the password policy: at least 10 characters with
// at least one lowercase letter, one uppercase letter, one digit and one
// symbol from the fixed set.
func ValidatePassword(password string) error {
	// length is counted in characters, not bytes
	if utf8.RuneCountInString(password) < 10 {
		return ErrWeakPassword
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			for _, s := range PasswordSymbols {
				if r == s {
					hasSymbol = true
					break
				}
			}
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return ErrWeakPassword
	}

	return nil
}

// ValidateMemo checks that a memo's title and content are non-empty and
// within the column bounds.
func ValidateMemo(title, content string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if content == "" {
		return ErrEmptyContent
	}
	if len([]rune(title)) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if len([]rune(content)) > MaxContentLength {
		return ErrContentTooLong
	}

	return nil
}

// ValidateMemoUpdate checks a partial memo mutation: at least one field must
// be present, and every present field must satisfy the same rules as on
// creation.
func ValidateMemoUpdate(update models.MemoUpdate) error {
	if update.Title == nil && update.Content == nil {
		return ErrNoFieldsToUpdate
	}

	if update.Title != nil {
		if *update.Title == "" {
			return ErrEmptyTitle
		}
		if len([]rune(*update.Title)) > MaxTitleLength {
			return ErrTitleTooLong
		}
	}

	if update.Content != nil {
		if *update.Content == "" {
			return ErrEmptyContent
		}
		if len([]rune(*update.Content)) > MaxContentLength {
			return ErrContentTooLong
		}
	}

	return nil
}
