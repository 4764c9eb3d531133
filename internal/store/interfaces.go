// Package store implements PostgreSQL persistence for users and memos.
//
// Repositories return domain sentinel errors ([ErrUserNotFound],
// [ErrUsernameAlreadyExists], ...) so that callers never inspect driver
// error codes. Multi-step writes run inside transactions with a deferred
// rollback; the uniqueness constraints on username, email and each provider
// id column are the final arbiter when concurrent writes race.
package store

import (
	"context"

	"github.com/haeun-dev/memo-server/models"
)

// UserRepository is the persistence boundary for canonical user accounts.
type UserRepository interface {
	// CreateUser inserts a new user record and returns it with its
	// server-assigned UserID. A username collision is reported as
	// [ErrUsernameAlreadyExists]; any other uniqueness collision as
	// [ErrDuplicateIdentity].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID looks a user up by internal id.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByUsername looks a user up by unique username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByEmail looks a user up by unique email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByProviderID looks a user up by the subject id stored in the
	// column belonging to the given provider.
	FindUserByProviderID(ctx context.Context, provider models.Provider, subjectID string) (models.User, error)

	// UpsertSocialUser reconciles a social login into exactly one canonical
	// row inside a single transaction: the row found by provider id wins,
	// then the row found by email (gaining the provider link), otherwise a
	// new row is inserted. Returns the canonical user and whether it was
	// newly created.
	UpsertSocialUser(ctx context.Context, provider models.Provider, subjectID, email, displayName string) (models.User, bool, error)

	// UpdatePassword replaces the stored password hash of the given user.
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error

	// DeleteUser removes the user row; owned memos are removed by the
	// ON DELETE CASCADE constraint in the same statement.
	DeleteUser(ctx context.Context, userID int64) error
}

// MemoRepository is the persistence boundary for memos. Every method is
// scoped by the owning user id; no operation can see or touch another
// user's memo.
type MemoRepository interface {
	// CreateMemo inserts a new memo and returns it with its server-assigned
	// MemoID.
	CreateMemo(ctx context.Context, memo models.Memo) (models.Memo, error)

	// FindMemosByOwner returns all memos owned by the given user.
	FindMemosByOwner(ctx context.Context, userID int64) ([]models.Memo, error)

	// UpdateMemo applies a partial update to the memo identified by
	// (memoID, ownerID) and returns the updated row. A memo that does not
	// exist under that owner yields [ErrMemoNotFound].
	UpdateMemo(ctx context.Context, memoID, ownerID int64, update models.MemoUpdate) (models.Memo, error)

	// DeleteMemo removes the memo identified by (memoID, ownerID).
	// A memo that does not exist under that owner yields [ErrMemoNotFound].
	DeleteMemo(ctx context.Context, memoID, ownerID int64) error
}
