package models

// SignupRequest carries the payload of a local registration attempt.
// The plaintext password never leaves the handler/service boundary: it is
// hashed before any storage access.
type SignupRequest struct {
	// Username is the requested login name, lowercase letters and digits only.
	Username string `json:"username"`

	// Email is the contact address for the new account.
	Email string `json:"email"`

	// Password is the plaintext password. Must satisfy the password policy.
	Password string `json:"password"`

	// PasswordConfirm must repeat Password exactly.
	PasswordConfirm string `json:"password_confirm"`
}

// LoginRequest carries the payload of a local login attempt.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MemoCreateRequest carries the payload for creating a new memo.
type MemoCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// EmailRequest asks the server to mail the username registered under Email.
type EmailRequest struct {
	Email string `json:"email"`
}

// UsernameEmailRequest identifies an account by the (username, email) pair
// for the temporary-password reset flow.
type UsernameEmailRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PasswordChangeRequest carries a password change for a local account.
type PasswordChangeRequest struct {
	Username           string `json:"username"`
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

// MessageResponse is the generic success envelope returned by mutating
// endpoints that have no richer payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
