package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kitesurf/internal/model"
)

// SessionRepository persists login sessions and the login audit trail.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	FindActiveByToken(ctx context.Context, token string, now time.Time) (*model.Session, error)
	// ExpireActiveForUser ends every live session of userID at now and
	// returns the tokens it ended.
	ExpireActiveForUser(ctx context.Context, userID uint, now time.Time) ([]string, error)
	RecordLoginEvent(ctx context.Context, event *model.LoginEvent) error
	ListLoginEvents(ctx context.Context, userID uint, limit int) ([]model.LoginEvent, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) FindActiveByToken(ctx context.Context, token string, now time.Time) (*model.Session, error) {
	var session model.Session
	if err := r.db.WithContext(ctx).
		Where("session_token = ? AND expires_at > ?", token, now).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) ExpireActiveForUser(ctx context.Context, userID uint, now time.Time) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Session{}).
			Where("user_id = ? AND expires_at > ?", userID, now).
			Pluck("session_token", &tokens).Error; err != nil {
			return err
		}
		if len(tokens) == 0 {
			return nil
		}
		return tx.Model(&model.Session{}).
			Where("session_token IN ?", tokens).
			Update("expires_at", now).Error
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *sessionRepository) RecordLoginEvent(ctx context.Context, event *model.LoginEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *sessionRepository) ListLoginEvents(ctx context.Context, userID uint, limit int) ([]model.LoginEvent, error) {
	var events []model.LoginEvent
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("timestamp DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
