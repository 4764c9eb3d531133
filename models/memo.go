package models

// Memo is a personal text note exclusively owned by one user. Deleting the
// owner cascade-deletes all their memos at the database level.
type Memo struct {
	// MemoID is the internal unique identifier of the memo.
	MemoID int64 `json:"id"`

	// UserID references the owning user. Every read and every mutation is
	// scoped by this field; a memo is never visible outside its owner.
	UserID int64 `json:"-"`

	// Title is a short non-empty heading, at most 100 characters.
	Title string `json:"title"`

	// Content is the memo body, non-empty, at most 1000 characters.
	Content string `json:"content"`
}

// TableName returns the name of the database table
// associated with the Memo model.
func (m Memo) TableName() string {
	return "memo"
}

// MemoUpdate carries a partial memo mutation. Nil fields are left untouched;
// the dynamic UPDATE statement only includes the fields that are set.
type MemoUpdate struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
