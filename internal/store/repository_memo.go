package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/models"
)

// memoRepository is the PostgreSQL-backed implementation of [MemoRepository].
// Every query carries the owner id in its WHERE clause, so a memo belonging
// to another user is indistinguishable from a missing one.
type memoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMemoRepository constructs a [MemoRepository] backed by the provided
// database connection and logger.
func NewMemoRepository(db *DB, logger *logger.Logger) MemoRepository {
	logger.Debug().Msg("creating memo repository")
	return &memoRepository{
		db:     db,
		logger: logger,
	}
}

func scanMemo(row rowScanner) (models.Memo, error) {
	var memo models.Memo
	err := row.Scan(&memo.MemoID, &memo.UserID, &memo.Title, &memo.Content)
	return memo, err
}

// CreateMemo persists a new memo and returns it with its server-assigned
// MemoID.
func (r *memoRepository) CreateMemo(ctx context.Context, memo models.Memo) (models.Memo, error) {
	log := logger.FromContext(ctx)

	created, err := scanMemo(r.db.QueryRowContext(ctx, createMemo, memo.UserID, memo.Title, memo.Content))
	if err != nil {
		log.Err(err).
			Str("func", "*memoRepository.CreateMemo").
			Int64("user_id", memo.UserID).
			Msg("error creating memo")
		return models.Memo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindMemosByOwner retrieves every memo owned by the given user, ordered by
// id. Returns an empty slice when the user owns no memos.
func (r *memoRepository) FindMemosByOwner(ctx context.Context, userID int64) ([]models.Memo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findMemosByOwner, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*memoRepository.FindMemosByOwner").
			Int64("user_id", userID).
			Msg("failed to execute query for listing memos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	memos := make([]models.Memo, 0, 16)

	for rows.Next() {
		memo, scanErr := scanMemo(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*memoRepository.FindMemosByOwner").
				Int64("user_id", userID).
				Msg("failed to scan memo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		memos = append(memos, memo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*memoRepository.FindMemosByOwner").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return memos, nil
}

// UpdateMemo applies a partial update to the memo identified by
// (memoID, ownerID) and returns the updated row.
//
// Ownership is enforced inside the UPDATE's WHERE clause: a memo owned by a
// different user matches zero rows and yields [ErrMemoNotFound], exactly as
// a memo that does not exist at all.
func (r *memoRepository) UpdateMemo(ctx context.Context, memoID, ownerID int64, update models.MemoUpdate) (models.Memo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMemoUpdateQuery(memoID, ownerID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*memoRepository.UpdateMemo").
			Int64("memo_id", memoID).
			Msg("failed to build update query")
		return models.Memo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanMemo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Memo{}, ErrMemoNotFound
		}

		log.Err(err).
			Str("func", "*memoRepository.UpdateMemo").
			Int64("memo_id", memoID).
			Int64("user_id", ownerID).
			Msg("failed to update memo")
		return models.Memo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteMemo removes the memo identified by (memoID, ownerID). A memo owned
// by a different user yields [ErrMemoNotFound], exactly as a missing one.
func (r *memoRepository) DeleteMemo(ctx context.Context, memoID, ownerID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMemo, memoID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*memoRepository.DeleteMemo").
			Int64("memo_id", memoID).
			Int64("user_id", ownerID).
			Msg("failed to delete memo")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*memoRepository.DeleteMemo").
			Int64("memo_id", memoID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrMemoNotFound
	}

	return nil
}
