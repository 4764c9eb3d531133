package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/haeun-dev/memo-server/internal/crypto"
	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/mailer"
	"github.com/haeun-dev/memo-server/internal/oauth"
	"github.com/haeun-dev/memo-server/internal/session"
	"github.com/haeun-dev/memo-server/internal/store"
	"github.com/haeun-dev/memo-server/internal/validators"
	"github.com/haeun-dev/memo-server/models"
)

const tempPasswordLength = 12

// accountService is the concrete implementation of AccountService.
type accountService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	providers      oauth.Clients
	notifier       Notifier
	logger         *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// repository, hasher, provider clients and notifier.
func NewAccountService(userRepository store.UserRepository, hasher crypto.PasswordHasher, providers oauth.Clients, notifier Notifier, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		hasher:         hasher,
		providers:      providers,
		notifier:       notifier,
		logger:         logger,
	}
}

// ChangePassword replaces the account's password after verifying the
// current one. Reuse of the current password is rejected. A notice mail is
// enqueued only after the new hash has been persisted.
func (s *accountService) ChangePassword(ctx context.Context, request models.PasswordChangeRequest) error {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.CurrentPassword == "" {
		return ErrInvalidDataProvided
	}
	if err := validators.ValidatePassword(request.NewPassword); err != nil {
		return err
	}
	if request.NewPassword != request.NewPasswordConfirm {
		return validators.ErrPasswordMismatch
	}

	foundUser, err := s.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return fmt.Errorf("user search by username failed: %w", err)
	}

	if foundUser.HashedPassword == "" || !s.hasher.Verify(request.CurrentPassword, foundUser.HashedPassword) {
		log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong current password")
		return ErrWrongPassword
	}
	if s.hasher.Verify(request.NewPassword, foundUser.HashedPassword) {
		return validators.ErrPasswordNotChanged
	}

	hashed, err := s.hasher.Hash(request.NewPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, foundUser.UserID, hashed); err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	s.notifier.Enqueue(mailer.PasswordChanged(foundUser.Email, foundUser.Username))

	return nil
}

// SendUsername mails the username registered under the given email.
func (s *accountService) SendUsername(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return validators.ErrEmptyEmail
	}

	foundUser, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	s.notifier.Enqueue(mailer.UsernameReminder(foundUser.Email, foundUser.Username))

	return nil
}

// ResetPassword stores the hash of a freshly generated temporary password
// for the account identified by the (username, email) pair and mails the
// plaintext to the account's address. A username whose email does not
// match is reported as not found.
func (s *accountService) ResetPassword(ctx context.Context, username, email string) error {
	log := logger.FromContext(ctx)

	if username == "" || email == "" {
		return ErrInvalidDataProvided
	}

	foundUser, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return fmt.Errorf("user search by username failed: %w", err)
	}
	if foundUser.Email != email {
		return store.ErrUserNotFound
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		log.Err(err).Msg("temporary password generation failed")
		return fmt.Errorf("temporary password generation failed: %w", err)
	}

	hashed, err := s.hasher.Hash(tempPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, foundUser.UserID, hashed); err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	s.notifier.Enqueue(mailer.TempPassword(foundUser.Email, foundUser.Username, tempPassword))

	return nil
}

// Withdraw deletes the user row; owned memos go with it through the
// cascade. The social link recorded in the session is then revoked
// best-effort and a goodbye mail enqueued; neither can undo the deletion.
func (s *accountService) Withdraw(ctx context.Context, user models.User, sess session.Session) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, user.UserID); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	if sess.IsSocial() && sess.AccessToken != "" {
		if client, ok := s.providers.Get(sess.Provider); ok {
			if err := client.Unlink(ctx, sess.AccessToken); err != nil {
				log.Err(err).Str("provider", sess.Provider.String()).Msg("social unlink failed")
			}
		}
	}

	s.notifier.Enqueue(mailer.Goodbye(user.Email))

	return nil
}

// generateTempPassword produces a random password satisfying the password
// policy: one guaranteed character from each required class, the rest
// drawn from the full alphabet, then shuffled.
func generateTempPassword() (string, error) {
	const (
		lower   = "abcdefghijklmnopqrstuvwxyz"
		upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		digits  = "0123456789"
		symbols = validators.PasswordSymbols
	)
	alphabet := lower + upper + digits + symbols

	password := make([]byte, 0, tempPasswordLength)
	for _, class := range []string{lower, upper, digits, symbols} {
		ch, err := randomChar(class)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}
	for len(password) < tempPasswordLength {
		ch, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	for i := len(password) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("shuffling temporary password: %w", err)
		}
		password[i], password[j.Int64()] = password[j.Int64()], password[i]
	}

	return string(password), nil
}

func randomChar(alphabet string) (byte, error) {
	index, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, fmt.Errorf("drawing random character: %w", err)
	}
	return alphabet[index.Int64()], nil
}
