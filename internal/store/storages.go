package store

import (
	"github.com/loginapp/authserver/internal/logger"
)

// Storages aggregates all persistence-layer repositories handed to the
// service layer.
type Storages struct {
	UserRepository UserRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
