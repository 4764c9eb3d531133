package service

import (
	"context"

	"github.com/haeun-dev/memo-server/internal/mailer"
	"github.com/haeun-dev/memo-server/internal/oauth"
	"github.com/haeun-dev/memo-server/internal/session"
	"github.com/haeun-dev/memo-server/models"
)

// IdentityService turns authentication events into exactly one canonical
// user row per person.
type IdentityService interface {
	// RegisterLocal validates and creates a local password account. Local
	// signup never merges with an existing social account sharing the
	// email; a username collision is a hard reject.
	RegisterLocal(ctx context.Context, request models.SignupRequest) (models.User, error)

	// LoginLocal verifies a username/password pair. An unknown username and
	// a wrong password are both reported as ErrWrongPassword.
	LoginLocal(ctx context.Context, request models.LoginRequest) (models.User, error)

	// ReconcileSocial finds or creates the canonical user for a completed
	// social login. Reports whether the user was newly created.
	ReconcileSocial(ctx context.Context, identity oauth.Identity) (models.User, bool, error)
}

// AuthService resolves a session to its user and gates protected operations.
type AuthService interface {
	// ResolveCurrentUser maps a session to its user, or reports none. A
	// pure read: it never creates or mutates a user, and an unrecognized
	// provider tag resolves to none rather than an error.
	ResolveCurrentUser(ctx context.Context, sess session.Session) (models.User, bool, error)

	// RequireAuthenticated resolves the session's user or fails with
	// ErrNotAuthorized.
	RequireAuthenticated(ctx context.Context, sess session.Session) (models.User, error)
}

// MemoService is owner-scoped memo CRUD. A memo that exists under another
// owner is reported as not found, never as forbidden.
type MemoService interface {
	CreateMemo(ctx context.Context, ownerID int64, request models.MemoCreateRequest) (models.Memo, error)
	ListMemos(ctx context.Context, ownerID int64) ([]models.Memo, error)
	UpdateMemo(ctx context.Context, memoID, ownerID int64, update models.MemoUpdate) (models.Memo, error)
	DeleteMemo(ctx context.Context, memoID, ownerID int64) error
}

// AccountService covers the account lifecycle beyond login: credential
// changes, recovery flows and withdrawal.
type AccountService interface {
	// ChangePassword verifies the current password and replaces it,
	// rejecting reuse of the old one. Sends a notice mail after commit.
	ChangePassword(ctx context.Context, request models.PasswordChangeRequest) error

	// SendUsername mails the username registered under the given email.
	SendUsername(ctx context.Context, email string) error

	// ResetPassword verifies the (username, email) pair, stores the hash of
	// a freshly generated temporary password and mails the plaintext.
	ResetPassword(ctx context.Context, username, email string) error

	// Withdraw deletes the user and all owned memos, then best-effort
	// unlinks the social account recorded in the session and mails a
	// goodbye notice.
	Withdraw(ctx context.Context, user models.User, sess session.Session) error
}

// Notifier is the post-commit mail contract: services only enqueue,
// delivery is the worker's problem.
type Notifier interface {
	Enqueue(notification mailer.Notification) bool
}
