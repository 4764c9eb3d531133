package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/haeun-dev/memo-server/models"
)

// psql builds parameterised queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// providerIDColumns maps each supported provider tag to its column in the
// users table. Provider-specific lookups and merges go through this table
// instead of string interpolation scattered across queries.
var providerIDColumns = map[models.Provider]string{
	models.ProviderGoogle: "google_id",
	models.ProviderKakao:  "kakao_id",
	models.ProviderNaver:  "naver_id",
}

// userColumns is the canonical SELECT column list for the users table.
// Nullable columns are collapsed to empty strings so rows scan directly
// into models.User.
const userColumns = `user_id,
		COALESCE(username, ''),
		email,
		COALESCE(hashed_password, ''),
		COALESCE(google_id, ''),
		COALESCE(kakao_id, ''),
		COALESCE(naver_id, '')`

const (
	// Empty strings are stored as NULL so that the unique constraints on
	// username and the provider id columns only apply to real values.
	createUser = `INSERT INTO users (username, email, hashed_password, google_id, kakao_id, naver_id)
	VALUES (NULLIF($1, ''), $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
	RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
	FROM users
	WHERE user_id = $1;`

	findUserByUsername = `SELECT ` + userColumns + `
	FROM users
	WHERE username = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
	FROM users
	WHERE email = $1;`

	updateUserPassword = `UPDATE users
	SET hashed_password = $1
	WHERE user_id = $2;`

	// Owned memos are removed by the ON DELETE CASCADE constraint on
	// memo.user_id in the same statement.
	deleteUser = `DELETE FROM users
	WHERE user_id = $1;`

	createMemo = `INSERT INTO memo (user_id, title, content)
	VALUES ($1, $2, $3)
	RETURNING memo_id, user_id, title, content;`

	findMemosByOwner = `SELECT memo_id, user_id, title, content
	FROM memo
	WHERE user_id = $1
	ORDER BY memo_id;`

	deleteMemo = `DELETE FROM memo
	WHERE memo_id = $1 AND user_id = $2;`
)

// providerIDColumn resolves the id column for a provider tag; an
// unrecognized tag is an error instead of an empty column name leaking into
// a rendered query.
func providerIDColumn(provider models.Provider) (string, error) {
	column, ok := providerIDColumns[provider]
	if !ok {
		return "", fmt.Errorf("no id column for provider %q", provider)
	}
	return column, nil
}

// buildFindUserByProviderQuery builds a user lookup keyed by the id column
// of the given provider.
func buildFindUserByProviderQuery(provider models.Provider, subjectID string) (string, []any, error) {
	column, err := providerIDColumn(provider)
	if err != nil {
		return "", nil, err
	}

	return psql.
		Select("user_id",
			"COALESCE(username, '')",
			"email",
			"COALESCE(hashed_password, '')",
			"COALESCE(google_id, '')",
			"COALESCE(kakao_id, '')",
			"COALESCE(naver_id, '')").
		From("users").
		Where(sq.Eq{column: subjectID}).
		ToSql()
}

// buildSocialMergeQuery builds the UPDATE applied to an existing canonical
// row during social reconciliation: email is always overwritten, the
// provider id column is always (re)written, and the username is replaced
// only when the incoming display name is non-empty.
func buildSocialMergeQuery(userID int64, provider models.Provider, subjectID, email, displayName string) (string, []any, error) {
	column, err := providerIDColumn(provider)
	if err != nil {
		return "", nil, err
	}

	update := psql.
		Update("users").
		Set("email", email).
		Set(column, subjectID).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns)

	if displayName != "" {
		update = update.Set("username", displayName)
	}

	return update.ToSql()
}

// buildMemoUpdateQuery builds the partial UPDATE for a memo. Only non-nil
// fields of update are included in the SET clause; ownership is enforced in
// the WHERE clause so a foreign memo matches zero rows.
func buildMemoUpdateQuery(memoID, ownerID int64, update models.MemoUpdate) (string, []any, error) {
	builder := psql.
		Update("memo").
		Where(sq.Eq{"memo_id": memoID, "user_id": ownerID}).
		Suffix("RETURNING memo_id, user_id, title, content")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}

	return builder.ToSql()
}
