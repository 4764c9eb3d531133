package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/haeun-dev/memo-server/internal/crypto"
	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/mailer"
	"github.com/haeun-dev/memo-server/internal/oauth"
	"github.com/haeun-dev/memo-server/internal/store"
	"github.com/haeun-dev/memo-server/internal/validators"
	"github.com/haeun-dev/memo-server/models"
)

// identityService is the concrete implementation of IdentityService.
// It owns the signup and login decision logic; persistence and atomicity
// live in the UserRepository, password hashing in the injected hasher.
type identityService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	notifier       Notifier
	logger         *logger.Logger
}

// NewIdentityService constructs an IdentityService wired to the given
// repository, hasher and notifier.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewIdentityService(userRepository store.UserRepository, hasher crypto.PasswordHasher, notifier Notifier, logger *logger.Logger) IdentityService {
	return &identityService{
		userRepository: userRepository,
		hasher:         hasher,
		notifier:       notifier,
		logger:         logger,
	}
}

// RegisterLocal creates a new local password account.
//
// It validates the username format, the password policy and the confirm
// field, hashes the password with the injected hasher and delegates
// persistence to the UserRepository. The plaintext password is never
// stored. A welcome mail is enqueued only after the insert has committed.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a validators sentinel for malformed input;
//   - store.ErrUsernameAlreadyExists / store.ErrDuplicateIdentity on a
//     uniqueness collision;
//   - a wrapped storage error otherwise.
func (s *identityService) RegisterLocal(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateUsername(request.Username); err != nil {
		log.Error().Str("username", request.Username).Msg("invalid username on signup")
		return models.User{}, err
	}
	if request.Email == "" {
		log.Error().Str("username", request.Username).Msg("empty email on signup")
		return models.User{}, validators.ErrEmptyEmail
	}
	if err := validators.ValidatePassword(request.Password); err != nil {
		return models.User{}, err
	}
	if request.Password != request.PasswordConfirm {
		return models.User{}, validators.ErrPasswordMismatch
	}

	hashed, err := s.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registered, err := s.userRepository.CreateUser(ctx, models.User{
		Username:       request.Username,
		Email:          request.Email,
		HashedPassword: hashed,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	s.notifier.Enqueue(mailer.Welcome(registered.Email))

	return registered, nil
}

// LoginLocal authenticates an existing local account.
//
// An unknown username, an account without a password (social-only) and a
// wrong password all surface as ErrWrongPassword so that the caller cannot
// probe which usernames exist.
func (s *identityService) LoginLocal(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Password == "" {
		log.Error().Str("username", request.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := s.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", request.Username).Msg("login for unknown username")
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if foundUser.HashedPassword == "" || !s.hasher.Verify(request.Password, foundUser.HashedPassword) {
		log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// ReconcileSocial finds or creates the canonical user for a social login.
//
// The provider payload must carry both the subject id and the email;
// absence of either fails with ErrIncompleteIdentity before any lookup.
// Lookup order and merge semantics are enforced by the repository inside
// one transaction: the row found by provider id wins, then the row found
// by email gains the provider link, otherwise a new row is inserted.
// A welcome mail is enqueued only for a newly created user, after commit.
func (s *identityService) ReconcileSocial(ctx context.Context, identity oauth.Identity) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	if !identity.Provider.Valid() {
		log.Error().Str("provider", identity.Provider.String()).Msg("unknown provider on social login")
		return models.User{}, false, ErrIncompleteIdentity
	}
	if identity.SubjectID == "" || identity.Email == "" {
		log.Error().
			Str("provider", identity.Provider.String()).
			Bool("has_subject_id", identity.SubjectID != "").
			Bool("has_email", identity.Email != "").
			Msg("social identity payload incomplete")
		return models.User{}, false, ErrIncompleteIdentity
	}

	reconciled, created, err := s.userRepository.UpsertSocialUser(ctx, identity.Provider, identity.SubjectID, identity.Email, identity.DisplayName)
	if err != nil {
		log.Err(err).Str("provider", identity.Provider.String()).Msg("social identity reconciliation failed")
		return models.User{}, false, fmt.Errorf("social identity reconciliation failed: %w", err)
	}

	if created {
		s.notifier.Enqueue(mailer.Welcome(reconciled.Email))
	}

	return reconciled, created, nil
}
