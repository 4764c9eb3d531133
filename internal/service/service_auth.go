package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/session"
	"github.com/haeun-dev/memo-server/internal/store"
	"github.com/haeun-dev/memo-server/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repository.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ResolveCurrentUser maps a session to its user.
//
// A local session is looked up by internal id; a social session dispatches
// to the id column belonging to its provider tag. A session with no
// identity fields, an unrecognized provider tag or an identity that no
// longer has a row all resolve to none without error. Storage failures
// other than not-found are surfaced.
func (s *authService) ResolveCurrentUser(ctx context.Context, sess session.Session) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	var (
		foundUser models.User
		err       error
	)

	switch {
	case sess.IsLocal():
		foundUser, err = s.userRepository.FindUserByID(ctx, sess.UserID)
	case sess.IsSocial():
		if !sess.Provider.Valid() {
			return models.User{}, false, nil
		}
		foundUser, err = s.userRepository.FindUserByProviderID(ctx, sess.Provider, sess.SubjectID)
	default:
		return models.User{}, false, nil
	}

	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, false, nil
		}
		log.Err(err).Msg("resolving session user failed")
		return models.User{}, false, fmt.Errorf("resolving session user failed: %w", err)
	}

	return foundUser, true, nil
}

// RequireAuthenticated resolves the session's user or fails with
// ErrNotAuthorized. Every memo mutation and account deletion goes through
// this before touching storage.
func (s *authService) RequireAuthenticated(ctx context.Context, sess session.Session) (models.User, error) {
	foundUser, ok, err := s.ResolveCurrentUser(ctx, sess)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrNotAuthorized
	}

	return foundUser, nil
}
