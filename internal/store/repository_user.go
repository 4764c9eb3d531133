package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles canonical account creation, lookup across every identity key
// (id, username, email, provider ids) and the social merge upsert against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.GoogleID,
		&user.KakaoID,
		&user.NaverID,
	)
	return user, err
}

// uniqueViolationError maps a PostgreSQL unique_violation to the domain
// sentinel matching the violated constraint: the username key maps to
// [ErrUsernameAlreadyExists], every other unique key (email, provider ids)
// to [ErrDuplicateIdentity].
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.Contains(pgErr.ConstraintName, "username") {
		return ErrUsernameAlreadyExists
	}
	return ErrDuplicateIdentity
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with its server-assigned UserID.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists] or
//     [ErrDuplicateIdentity] depending on the violated constraint.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.Email, user.HashedPassword,
		user.GoogleID, user.KakaoID, user.NaverID)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, uniqueViolationError(err)
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByID retrieves a user record by internal id.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "FindUserByID", findUserByID, userID)
}

// FindUserByUsername retrieves a user record by unique username.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "FindUserByUsername", findUserByUsername, username)
}

// FindUserByEmail retrieves a user record by unique email.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "FindUserByEmail", findUserByEmail, email)
}

// FindUserByProviderID retrieves a user record by the subject id stored in
// the id column of the given provider. Returns [ErrUserNotFound] when no
// row matches.
func (r *userRepository) FindUserByProviderID(ctx context.Context, provider models.Provider, subjectID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByProviderQuery(provider, subjectID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindUserByProviderID").
			Str("provider", provider.String()).
			Msg("failed to build provider lookup query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "FindUserByProviderID", query, args...)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository."+funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// UpsertSocialUser reconciles one social login into exactly one canonical
// row. The whole read-merge-write sequence runs inside a single transaction
// that is rolled back on any failure, so no partial merge is ever visible.
//
// Lookup order defines merge precedence:
//  1. the row holding the provider's subject id (a returning social user,
//     even if their email changed at the provider);
//  2. the row holding the email (a first social login attaching itself to
//     an existing local account);
//  3. no row at all: a brand-new user is inserted.
//
// A concurrent reconciliation of the same identity loses at the uniqueness
// constraints and surfaces as [ErrDuplicateIdentity]; a collision on the
// username key surfaces as [ErrUsernameAlreadyExists]. Retry is the
// caller's decision.
func (r *userRepository) UpsertSocialUser(ctx context.Context, provider models.Provider, subjectID, email, displayName string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpsertSocialUser").
			Str("provider", provider.String()).
			Msg("failed to begin transaction")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// lookup by provider id first, then by email
	existing, found, err := r.findCanonicalRow(ctx, tx, provider, subjectID, email)
	if err != nil {
		return models.User{}, false, err
	}

	var (
		reconciled models.User
		created    bool
	)

	if found {
		reconciled, err = r.mergeSocialRow(ctx, tx, existing.UserID, provider, subjectID, email, displayName)
	} else {
		reconciled, err = r.insertSocialRow(ctx, tx, provider, subjectID, email, displayName)
		created = true
	}
	if err != nil {
		return models.User{}, false, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*userRepository.UpsertSocialUser").
			Str("provider", provider.String()).
			Msg("failed to commit transaction")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "*userRepository.UpsertSocialUser").
		Int64("user_id", reconciled.UserID).
		Str("provider", provider.String()).
		Bool("created", created).
		Msg("social identity reconciled")

	return reconciled, created, nil
}

func (r *userRepository) findCanonicalRow(ctx context.Context, tx *sql.Tx, provider models.Provider, subjectID, email string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByProviderQuery(provider, subjectID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.findCanonicalRow").
			Str("provider", provider.String()).
			Msg("failed to build provider lookup query")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	byProvider, err := scanUser(tx.QueryRowContext(ctx, query, args...))
	if err == nil {
		return byProvider, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "*userRepository.findCanonicalRow").
			Str("provider", provider.String()).
			Msg("provider lookup failed")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	byEmail, err := scanUser(tx.QueryRowContext(ctx, findUserByEmail, email))
	if err == nil {
		return byEmail, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "*userRepository.findCanonicalRow").
			Str("provider", provider.String()).
			Msg("email lookup failed")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.User{}, false, nil
}

func (r *userRepository) mergeSocialRow(ctx context.Context, tx *sql.Tx, userID int64, provider models.Provider, subjectID, email, displayName string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSocialMergeQuery(userID, provider, subjectID, email, displayName)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.mergeSocialRow").
			Int64("user_id", userID).
			Msg("failed to build merge query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	merged, err := scanUser(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.mergeSocialRow").
			Int64("user_id", userID).
			Str("provider", provider.String()).
			Msg("failed to merge social identity into existing row")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, uniqueViolationError(err)
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return merged, nil
}

func (r *userRepository) insertSocialRow(ctx context.Context, tx *sql.Tx, provider models.Provider, subjectID, email, displayName string) (models.User, error) {
	log := logger.FromContext(ctx)

	// A first-time social account still needs a username; fall back to a
	// placeholder when the provider supplied no display name.
	if displayName == "" {
		displayName = "User"
	}

	newUser := models.User{
		Username: displayName,
		Email:    email,
	}
	newUser.SetProviderID(provider, subjectID)

	inserted, err := scanUser(tx.QueryRowContext(ctx, createUser,
		newUser.Username, newUser.Email, newUser.HashedPassword,
		newUser.GoogleID, newUser.KakaoID, newUser.NaverID))
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.insertSocialRow").
			Str("provider", provider.String()).
			Msg("failed to insert new social user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, uniqueViolationError(err)
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return inserted, nil
}

// UpdatePassword replaces the stored password hash of the given user.
// Returns [ErrUserNotFound] when the user does not exist.
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPassword, hashedPassword, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Int64("user_id", userID).Msg("failed to update password")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Int64("user_id", userID).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// DeleteUser removes the user row. The ON DELETE CASCADE constraint on
// memo.user_id removes all owned memos in the same statement, so no
// application-level transaction is needed.
// Returns [ErrUserNotFound] when the user does not exist.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	log.Info().Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("user deleted")
	return nil
}
