package store

import (
	"github.com/haeun-dev/memo-server/internal/logger"
)

// Repositories aggregates every repository backed by the shared database
// connection.
type Repositories struct {
	UserRepository UserRepository
	MemoRepository MemoRepository
}

// NewRepositories wires all repositories to the given connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		MemoRepository: NewMemoRepository(db, logger),
	}
}
