package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func newTestUserRepo(t *testing.T, db *sql.DB) UserRepository {
	t.Helper()
	return NewUserRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var userTableColumns = []string{
	"user_id", "username", "email", "hashed_password",
	"google_id", "kakao_id", "naver_id",
}

func userRowArgs(u models.User) []driver.Value {
	return []driver.Value{
		u.UserID, u.Username, u.Email, u.HashedPassword,
		u.GoogleID, u.KakaoID, u.NaverID,
	}
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraint}
}

func TestCreateUser(t *testing.T) {
	want := models.User{
		UserID:         7,
		Username:       "haeun",
		Email:          "haeun@example.com",
		HashedPassword: "$2a$10$hash",
	}

	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "success"},
		{
			name:    "duplicate username",
			execErr: uniqueViolation("users_username_key"),
			wantErr: ErrUsernameAlreadyExists,
		},
		{
			name:    "duplicate email",
			execErr: uniqueViolation("users_email_key"),
			wantErr: ErrDuplicateIdentity,
		},
		{
			name:    "driver failure",
			execErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestUserRepo(t, db)

			expectation := mock.ExpectQuery(regexp.QuoteMeta(createUser)).
				WithArgs(want.Username, want.Email, want.HashedPassword, "", "", "")

			if tt.execErr != nil {
				expectation.WillReturnError(tt.execErr)
			} else {
				expectation.WillReturnRows(
					sqlmock.NewRows(userTableColumns).AddRow(userRowArgs(want)...))
			}

			created, err := repo.CreateUser(testContext(), models.User{
				Username:       want.Username,
				Email:          want.Email,
				HashedPassword: want.HashedPassword,
			})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.execErr != nil:
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unexpected DB error")
			default:
				require.NoError(t, err)
				assert.Equal(t, want, created)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindUserByID(t *testing.T) {
	want := models.User{UserID: 42, Username: "haeun", Email: "haeun@example.com"}

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestUserRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(findUserByID)).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(userTableColumns).AddRow(userRowArgs(want)...))

		found, err := repo.FindUserByID(testContext(), 42)
		require.NoError(t, err)
		assert.Equal(t, want, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestUserRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(findUserByID)).
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindUserByID(testContext(), 42)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindUserByUsername(t *testing.T) {
	want := models.User{UserID: 1, Username: "haeun", Email: "haeun@example.com"}

	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(findUserByUsername)).
		WithArgs("haeun").
		WillReturnRows(sqlmock.NewRows(userTableColumns).AddRow(userRowArgs(want)...))

	found, err := repo.FindUserByUsername(testContext(), "haeun")
	require.NoError(t, err)
	assert.Equal(t, want, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmail)).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(testContext(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByProviderID(t *testing.T) {
	want := models.User{UserID: 3, Username: "haeun", Email: "haeun@example.com", KakaoID: "998877"}

	query, _, err := buildFindUserByProviderQuery(models.ProviderKakao, "998877")
	require.NoError(t, err)

	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("998877").
		WillReturnRows(sqlmock.NewRows(userTableColumns).AddRow(userRowArgs(want)...))

	found, err := repo.FindUserByProviderID(testContext(), models.ProviderKakao, "998877")
	require.NoError(t, err)
	assert.Equal(t, want, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSocialUser_MergesRowFoundByProviderID(t *testing.T) {
	existing := models.User{UserID: 5, Username: "haeun", Email: "old@example.com", GoogleID: "g-123"}
	merged := models.User{UserID: 5, Username: "Haeun Kim", Email: "new@example.com", GoogleID: "g-123"}

	lookupQuery, _, err := buildFindUserByProviderQuery(models.ProviderGoogle, "g-123")
	require.NoError(t, err)
	mergeQuery, _, err := buildSocialMergeQuery(5, models.ProviderGoogle, "g-123", "new@example.com", "Haeun Kim")
	require.NoError(t, err)

	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lookupQuery)).
		WithArgs("g-123").
		WillReturnRows(sqlmock.NewRows(userTableColumns).AddRow(userRowArgs(existing)...))
	mock.ExpectQuery(regexp.QuoteMeta(mergeQuery)).
		WillReturnRows(sqlmock.NewRows(userTableColumns).AddRow(userRowArgs(merged)...))
	mock.ExpectCommit()

	got, created, err := repo.UpsertSocialUser(testContext(), models.ProviderGoogle, "g-123", "new@example.com", "Haeun Kim")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, merged, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSocialUser_AttachesToRowFoundByEmail(t *testing.T) {
	existing := models.User{UserID: 9, Username: "local_user", Email: "shared@example.com", HashedPassword: "$2a$10$hash"}
	merged := existing
	merged.NaverID = "n-777"

	lookupQuery, _, err := buildFindUserByProviderQuery(models.ProviderNaver, "n-777")
	require.NoError(t, err)
	mergeQuery, _, err := buildSocialMergeQuery(9, models.ProviderNaver, "n-777", "shared@example.com", "")
	require.NoError(t, err)

	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lookupQuery)).
		WithArgs("n-777").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmail)).
		WithArgs("shared@example.com").
		WillReturnRows(sqlmock.NewRows(userTableColumns).AddRow(userRowArgs(existing)...))
	mock.ExpectQuery(regexp.QuoteMeta(mergeQuery)).
		WillReturnRows(sqlmock.NewRows(userTableColumns).AddRow(userRowArgs(merged)...))
	mock.ExpectCommit()

	got, created, err := repo.UpsertSocialUser(testContext(), models.ProviderNaver, "n-777", "shared@example.com", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, merged, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSocialUser_InsertsNewRow(t *testing.T) {
	inserted := models.User{UserID: 11, Username: "Haeun Kim", Email: "fresh@example.com", KakaoID: "k-555"}

	lookupQuery, _, err := buildFindUserByProviderQuery(models.ProviderKakao, "k-555")
	require.NoError(t, err)

	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lookupQuery)).
		WithArgs("k-555").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmail)).
		WithArgs("fresh@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs("Haeun Kim", "fresh@example.com", "", "", "k-555", "").
		WillReturnRows(sqlmock.NewRows(userTableColumns).AddRow(userRowArgs(inserted)...))
	mock.ExpectCommit()

	got, created, err := repo.UpsertSocialUser(testContext(), models.ProviderKakao, "k-555", "fresh@example.com", "Haeun Kim")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, inserted, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSocialUser_InsertFallsBackToPlaceholderUsername(t *testing.T) {
	inserted := models.User{UserID: 12, Username: "User", Email: "fresh@example.com", GoogleID: "g-555"}

	lookupQuery, _, err := buildFindUserByProviderQuery(models.ProviderGoogle, "g-555")
	require.NoError(t, err)

	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lookupQuery)).
		WithArgs("g-555").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmail)).
		WithArgs("fresh@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs("User", "fresh@example.com", "", "g-555", "", "").
		WillReturnRows(sqlmock.NewRows(userTableColumns).AddRow(userRowArgs(inserted)...))
	mock.ExpectCommit()

	got, created, err := repo.UpsertSocialUser(testContext(), models.ProviderGoogle, "g-555", "fresh@example.com", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "User", got.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSocialUser_InsertUsernameCollisionNamesTheKey(t *testing.T) {
	lookupQuery, _, err := buildFindUserByProviderQuery(models.ProviderKakao, "k-556")
	require.NoError(t, err)

	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	// a second social user falling back to the same placeholder username
	// hits the username key, not an identity key
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lookupQuery)).
		WithArgs("k-556").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmail)).
		WithArgs("second@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs("User", "second@example.com", "", "", "k-556", "").
		WillReturnError(uniqueViolation("users_username_key"))
	mock.ExpectRollback()

	_, _, err = repo.UpsertSocialUser(testContext(), models.ProviderKakao, "k-556", "second@example.com", "")
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSocialUser_RollsBackOnLostRace(t *testing.T) {
	existing := models.User{UserID: 5, Username: "haeun", Email: "shared@example.com"}

	lookupQuery, _, err := buildFindUserByProviderQuery(models.ProviderGoogle, "g-123")
	require.NoError(t, err)
	mergeQuery, _, err := buildSocialMergeQuery(5, models.ProviderGoogle, "g-123", "shared@example.com", "")
	require.NoError(t, err)

	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lookupQuery)).
		WithArgs("g-123").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmail)).
		WithArgs("shared@example.com").
		WillReturnRows(sqlmock.NewRows(userTableColumns).AddRow(userRowArgs(existing)...))
	mock.ExpectQuery(regexp.QuoteMeta(mergeQuery)).
		WillReturnError(uniqueViolation("users_google_id_key"))
	mock.ExpectRollback()

	_, _, err = repo.UpsertSocialUser(testContext(), models.ProviderGoogle, "g-123", "shared@example.com", "")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestUserRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(updateUserPassword)).
			WithArgs("$2a$10$newhash", int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdatePassword(testContext(), 4, "$2a$10$newhash")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestUserRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(updateUserPassword)).
			WithArgs("$2a$10$newhash", int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePassword(testContext(), 4, "$2a$10$newhash")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteUser(t *testing.T) {
	// Owned memos disappear with the row via the ON DELETE CASCADE
	// constraint in migrations/00002_create_memo_table.sql, which is
	// asserted by a test in that package; only the single DELETE is
	// visible at this layer.
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestUserRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(deleteUser)).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteUser(testContext(), 4)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestUserRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(deleteUser)).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteUser(testContext(), 4)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
