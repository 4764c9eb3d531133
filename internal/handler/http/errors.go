package http

import "errors"

// Sentinel errors raised directly by the transport layer. Callers can match
// against them with [errors.Is].
var (
	// ErrUnknownProvider is returned for an OAuth route whose {provider}
	// segment names no configured identity provider.
	ErrUnknownProvider = errors.New("unknown identity provider")

	// ErrStateMismatch is returned when the OAuth callback's state parameter
	// does not match the one stored in the session at redirect time.
	ErrStateMismatch = errors.New("oauth state mismatch")

	// ErrMissingCode is returned when the OAuth callback carries no
	// authorization code.
	ErrMissingCode = errors.New("missing authorization code")

	errInvalidJSON   = errors.New("invalid JSON was passed")
	errInvalidMemoID = errors.New("invalid memo id")
)
