package models

// User represents a canonical account entity. One row corresponds to one
// real person regardless of how they authenticate: a local password, a
// social provider, or any mix of those linked over time.
//
// Username, Email and each provider id carry a database uniqueness
// constraint; the constraint, not application code, is the final arbiter
// when two requests race to claim the same identity.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login name. For locally registered accounts it
	// matches [a-z0-9]+; for social-only accounts it is seeded from the
	// provider display name and may remain empty.
	Username string `json:"username"`

	// Email is the unique contact address, required for every account.
	// Social logins overwrite it with the provider's current value.
	Email string `json:"email"`

	// HashedPassword is the bcrypt hash of the local password.
	// Empty for accounts created purely via a social provider.
	// Never exposed via JSON.
	HashedPassword string `json:"-"`

	// GoogleID, KakaoID and NaverID hold the stable subject identifier the
	// respective provider assigns to the account. Each is independently
	// unique when set and empty when the account has no such link.
	GoogleID string `json:"-"`
	KakaoID  string `json:"-"`
	NaverID  string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
