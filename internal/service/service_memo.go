package service

import (
	"context"
	"fmt"

	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/store"
	"github.com/haeun-dev/memo-server/internal/validators"
	"github.com/haeun-dev/memo-server/models"
)

// memoService is the concrete implementation of MemoService. Every
// operation is keyed by the owner id resolved from the session, so a memo
// under another owner behaves exactly like a missing one.
type memoService struct {
	memoRepository store.MemoRepository
	logger         *logger.Logger
}

// NewMemoService constructs a MemoService wired to the given repository.
func NewMemoService(memoRepository store.MemoRepository, logger *logger.Logger) MemoService {
	return &memoService{
		memoRepository: memoRepository,
		logger:         logger,
	}
}

// CreateMemo validates the payload and inserts a memo under the owner.
func (s *memoService) CreateMemo(ctx context.Context, ownerID int64, request models.MemoCreateRequest) (models.Memo, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateMemo(request.Title, request.Content); err != nil {
		return models.Memo{}, err
	}

	created, err := s.memoRepository.CreateMemo(ctx, models.Memo{
		UserID:  ownerID,
		Title:   request.Title,
		Content: request.Content,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("memo creation ended with error")
		return models.Memo{}, fmt.Errorf("memo creation ended with error: %w", err)
	}

	return created, nil
}

// ListMemos returns every memo owned by the given user.
func (s *memoService) ListMemos(ctx context.Context, ownerID int64) ([]models.Memo, error) {
	log := logger.FromContext(ctx)

	memos, err := s.memoRepository.FindMemosByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("memo listing ended with error")
		return nil, fmt.Errorf("memo listing ended with error: %w", err)
	}

	return memos, nil
}

// UpdateMemo applies a partial update to the memo identified by
// (memoID, ownerID). A memo owned by someone else yields
// store.ErrMemoNotFound, never a forbidden error.
func (s *memoService) UpdateMemo(ctx context.Context, memoID, ownerID int64, update models.MemoUpdate) (models.Memo, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateMemoUpdate(update); err != nil {
		return models.Memo{}, err
	}

	updated, err := s.memoRepository.UpdateMemo(ctx, memoID, ownerID, update)
	if err != nil {
		log.Err(err).Int64("memo_id", memoID).Int64("owner_id", ownerID).Msg("memo update ended with error")
		return models.Memo{}, fmt.Errorf("memo update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteMemo removes the memo identified by (memoID, ownerID); same
// not-found semantics as UpdateMemo.
func (s *memoService) DeleteMemo(ctx context.Context, memoID, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := s.memoRepository.DeleteMemo(ctx, memoID, ownerID); err != nil {
		log.Err(err).Int64("memo_id", memoID).Int64("owner_id", ownerID).Msg("memo deletion ended with error")
		return fmt.Errorf("memo deletion ended with error: %w", err)
	}

	return nil
}
