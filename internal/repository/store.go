package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that share one connection or transaction.
type Store interface {
	Users() UserRepository
	Sessions() SessionRepository
	Catalog() CatalogRepository
	Reservations() ReservationRepository
	Emails() EmailLogRepository
	// WithTransaction executes fn within a database transaction. Every
	// repository obtained from tx writes through the same transaction; the
	// transaction rolls back when fn returns an error.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

type store struct {
	db *gorm.DB
}

// NewStore creates a GORM-backed store.
func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

func (s *store) Users() UserRepository               { return NewUserRepository(s.db) }
func (s *store) Sessions() SessionRepository         { return NewSessionRepository(s.db) }
func (s *store) Catalog() CatalogRepository          { return NewCatalogRepository(s.db) }
func (s *store) Reservations() ReservationRepository { return NewReservationRepository(s.db) }
func (s *store) Emails() EmailLogRepository          { return NewEmailLogRepository(s.db) }

func (s *store) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &store{db: tx})
	})
}
