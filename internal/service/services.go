package service

import (
	"github.com/haeun-dev/memo-server/internal/crypto"
	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/oauth"
	"github.com/haeun-dev/memo-server/internal/store"
)

type Services struct {
	IdentityService IdentityService
	AuthService     AuthService
	MemoService     MemoService
	AccountService  AccountService
}

func NewServices(repositories store.Repositories, hasher crypto.PasswordHasher, providers oauth.Clients, notifier Notifier, logger *logger.Logger) *Services {
	return &Services{
		IdentityService: NewIdentityService(repositories.UserRepository, hasher, notifier, logger),
		AuthService:     NewAuthService(repositories.UserRepository, logger),
		MemoService:     NewMemoService(repositories.MemoRepository, logger),
		AccountService:  NewAccountService(repositories.UserRepository, hasher, providers, notifier, logger),
	}
}
