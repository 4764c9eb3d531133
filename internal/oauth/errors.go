package oauth

import "errors"

// Sentinel errors surfaced by provider clients. All of them represent a
// failure of the identity provider itself (network or protocol), never bad
// input from our own user.
var (
	// ErrTokenExchange is returned when the authorization code cannot be
	// traded for an access token.
	ErrTokenExchange = errors.New("provider token exchange failed")

	// ErrUserInfoFetch is returned when the userinfo endpoint rejects the
	// freshly obtained access token or answers with an unusable payload.
	ErrUserInfoFetch = errors.New("provider user info fetch failed")

	// ErrUnlink is returned when the provider refuses to revoke the social
	// link. Callers treat it as a log-only condition.
	ErrUnlink = errors.New("provider unlink failed")
)
