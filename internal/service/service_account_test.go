package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/haeun-dev/memo-server/internal/crypto"
	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/mailer"
	"github.com/haeun-dev/memo-server/internal/mock"
	"github.com/haeun-dev/memo-server/internal/oauth"
	"github.com/haeun-dev/memo-server/internal/session"
	"github.com/haeun-dev/memo-server/internal/store"
	"github.com/haeun-dev/memo-server/internal/validators"
	"github.com/haeun-dev/memo-server/models"
)

func newTestAccountSvc(ctrl *gomock.Controller, providers oauth.Clients) (AccountService, *mock.MockUserRepository, *mock.MockNotifier, crypto.PasswordHasher) {
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockNotifier := mock.NewMockNotifier(ctrl)
	hasher := crypto.NewBcryptHasher(4)

	svc := NewAccountService(mockUsers, hasher, providers, mockNotifier, logger.Nop())

	return svc, mockUsers, mockNotifier, hasher
}

func TestAccountService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	svc, mockUsers, mockNotifier, hasher := newTestAccountSvc(ctrl, nil)

	currentHash, err := hasher.Hash(strongPassword)
	require.NoError(t, err)
	stored := models.User{UserID: 7, Username: "haeun01", Email: "haeun@example.com", HashedPassword: currentHash}

	newPassword := "An0ther$ecret!"

	mockUsers.EXPECT().FindUserByUsername(ctx, "haeun01").Return(stored, nil)
	mockUsers.EXPECT().UpdatePassword(ctx, int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, hashed string) error {
			assert.True(t, hasher.Verify(newPassword, hashed))
			return nil
		})
	mockNotifier.EXPECT().Enqueue(gomock.Any()).DoAndReturn(
		func(n mailer.Notification) bool {
			assert.Equal(t, "haeun@example.com", n.To)
			return true
		})

	err = svc.ChangePassword(ctx, models.PasswordChangeRequest{
		Username:           "haeun01",
		CurrentPassword:    strongPassword,
		NewPassword:        newPassword,
		NewPasswordConfirm: newPassword,
	})
	require.NoError(t, err)
}

func TestAccountService_ChangePassword_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	svc, mockUsers, _, hasher := newTestAccountSvc(ctrl, nil)

	currentHash, err := hasher.Hash(strongPassword)
	require.NoError(t, err)
	stored := models.User{UserID: 7, Username: "haeun01", HashedPassword: currentHash}

	t.Run("wrong current password", func(t *testing.T) {
		mockUsers.EXPECT().FindUserByUsername(ctx, "haeun01").Return(stored, nil)

		err := svc.ChangePassword(ctx, models.PasswordChangeRequest{
			Username:           "haeun01",
			CurrentPassword:    "Not@thepass1",
			NewPassword:        "An0ther$ecret!",
			NewPasswordConfirm: "An0ther$ecret!",
		})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("reusing the current password", func(t *testing.T) {
		mockUsers.EXPECT().FindUserByUsername(ctx, "haeun01").Return(stored, nil)

		err := svc.ChangePassword(ctx, models.PasswordChangeRequest{
			Username:           "haeun01",
			CurrentPassword:    strongPassword,
			NewPassword:        strongPassword,
			NewPasswordConfirm: strongPassword,
		})
		assert.ErrorIs(t, err, validators.ErrPasswordNotChanged)
	})

	t.Run("weak new password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, models.PasswordChangeRequest{
			Username:           "haeun01",
			CurrentPassword:    strongPassword,
			NewPassword:        "weak",
			NewPasswordConfirm: "weak",
		})
		assert.ErrorIs(t, err, validators.ErrWeakPassword)
	})
}

func TestAccountService_SendUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	svc, mockUsers, mockNotifier, _ := newTestAccountSvc(ctrl, nil)

	mockUsers.EXPECT().FindUserByEmail(ctx, "haeun@example.com").
		Return(models.User{Username: "haeun01", Email: "haeun@example.com"}, nil)
	mockNotifier.EXPECT().Enqueue(gomock.Any()).DoAndReturn(
		func(n mailer.Notification) bool {
			assert.Contains(t, n.HTML, "haeun01")
			return true
		})

	require.NoError(t, svc.SendUsername(ctx, "haeun@example.com"))
}

func TestAccountService_SendUsername_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	svc, mockUsers, _, _ := newTestAccountSvc(ctrl, nil)

	mockUsers.EXPECT().FindUserByEmail(ctx, "ghost@example.com").
		Return(models.User{}, store.ErrUserNotFound)

	assert.ErrorIs(t, svc.SendUsername(ctx, "ghost@example.com"), store.ErrUserNotFound)
}

func TestAccountService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	svc, mockUsers, mockNotifier, _ := newTestAccountSvc(ctrl, nil)

	stored := models.User{UserID: 7, Username: "haeun01", Email: "haeun@example.com"}
	mockUsers.EXPECT().FindUserByUsername(ctx, "haeun01").Return(stored, nil)

	var storedHash string
	mockUsers.EXPECT().UpdatePassword(ctx, int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, hashed string) error {
			storedHash = hashed
			return nil
		})

	var mailed mailer.Notification
	mockNotifier.EXPECT().Enqueue(gomock.Any()).DoAndReturn(
		func(n mailer.Notification) bool {
			mailed = n
			return true
		})

	require.NoError(t, svc.ResetPassword(ctx, "haeun01", "haeun@example.com"))

	assert.Equal(t, "haeun@example.com", mailed.To)
	assert.NotEmpty(t, storedHash)
}

func TestAccountService_ResetPassword_EmailMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	svc, mockUsers, _, _ := newTestAccountSvc(ctrl, nil)

	mockUsers.EXPECT().FindUserByUsername(ctx, "haeun01").
		Return(models.User{UserID: 7, Username: "haeun01", Email: "real@example.com"}, nil)

	err := svc.ResetPassword(ctx, "haeun01", "other@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestGenerateTempPassword_SatisfiesPolicy(t *testing.T) {
	for i := 0; i < 20; i++ {
		password, err := generateTempPassword()
		require.NoError(t, err)
		assert.NoError(t, validators.ValidatePassword(password))
		assert.Len(t, password, tempPasswordLength)
	}
}

func TestAccountService_Withdraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	mockClient := mock.NewMockClient(ctrl)
	providers := oauth.Clients{models.ProviderNaver: mockClient}

	svc, mockUsers, mockNotifier, _ := newTestAccountSvc(ctrl, providers)

	user := models.User{UserID: 7, Email: "haeun@example.com", NaverID: "n1"}
	sess := session.Session{Provider: models.ProviderNaver, SubjectID: "n1", AccessToken: "naver-token"}

	mockUsers.EXPECT().DeleteUser(ctx, int64(7)).Return(nil)
	mockClient.EXPECT().Unlink(ctx, "naver-token").Return(nil)
	mockNotifier.EXPECT().Enqueue(gomock.Any()).DoAndReturn(
		func(n mailer.Notification) bool {
			assert.Equal(t, "haeun@example.com", n.To)
			return true
		})

	require.NoError(t, svc.Withdraw(ctx, user, sess))
}

func TestAccountService_Withdraw_UnlinkFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	mockClient := mock.NewMockClient(ctrl)
	providers := oauth.Clients{models.ProviderKakao: mockClient}

	svc, mockUsers, mockNotifier, _ := newTestAccountSvc(ctrl, providers)

	user := models.User{UserID: 8, Email: "k@example.com", KakaoID: "k1"}
	sess := session.Session{Provider: models.ProviderKakao, SubjectID: "k1", AccessToken: "kakao-token"}

	mockUsers.EXPECT().DeleteUser(ctx, int64(8)).Return(nil)
	mockClient.EXPECT().Unlink(ctx, "kakao-token").Return(errors.New("provider unreachable"))
	mockNotifier.EXPECT().Enqueue(gomock.Any()).Return(true)

	require.NoError(t, svc.Withdraw(ctx, user, sess))
}

func TestAccountService_Withdraw_DeletionFailureStopsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	svc, mockUsers, _, _ := newTestAccountSvc(ctrl, nil)

	mockUsers.EXPECT().DeleteUser(ctx, int64(9)).Return(store.ErrExecutingQuery)

	// No unlink, no goodbye mail when the deletion itself fails.
	err := svc.Withdraw(ctx, models.User{UserID: 9}, session.Session{UserID: 9})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
