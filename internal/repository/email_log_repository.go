package repository

import (
	"context"

	"gorm.io/gorm"

	"kitesurf/internal/model"
)

// EmailLogRepository records notification intents.
type EmailLogRepository interface {
	Create(ctx context.Context, entry *model.EmailLogEntry) error
	ListByRecipient(ctx context.Context, email string) ([]model.EmailLogEntry, error)
}

type emailLogRepository struct {
	db *gorm.DB
}

// NewEmailLogRepository creates a new email log repository.
func NewEmailLogRepository(db *gorm.DB) EmailLogRepository {
	return &emailLogRepository{db: db}
}

func (r *emailLogRepository) Create(ctx context.Context, entry *model.EmailLogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *emailLogRepository) ListByRecipient(ctx context.Context, email string) ([]model.EmailLogEntry, error) {
	var entries []model.EmailLogEntry
	if err := r.db.WithContext(ctx).
		Where("email_to = ?", email).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
