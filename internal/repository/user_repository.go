package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kitesurf/internal/model"
)

// UserRepository defines persistence operations for users and their
// activation tokens.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error

	CreateActivation(ctx context.Context, activation *model.UserActivation) error
	FindActivationByToken(ctx context.Context, token string) (*model.UserActivation, error)
	MarkActivationUsed(ctx context.Context, id uint, at time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Where("role = ? AND blocked = ?", role, false).
		Order("last_name ASC, first_name ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

func (r *userRepository) CreateActivation(ctx context.Context, activation *model.UserActivation) error {
	return r.db.WithContext(ctx).Create(activation).Error
}

func (r *userRepository) FindActivationByToken(ctx context.Context, token string) (*model.UserActivation, error) {
	var activation model.UserActivation
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&activation).Error; err != nil {
		return nil, err
	}
	return &activation, nil
}

// MarkActivationUsed consumes an unused token. It reports
// gorm.ErrRecordNotFound when the token was already used.
func (r *userRepository) MarkActivationUsed(ctx context.Context, id uint, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.UserActivation{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
