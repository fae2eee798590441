package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kitesurf/internal/auth"
	apperrors "kitesurf/internal/errors"
	"kitesurf/internal/model"
	"kitesurf/internal/repository"
)

const (
	activationSubject = "Activeer je account bij Windkracht-12"
	welcomeSubject    = "Welcome to Windkracht-12"
	welcomeBody       = "Your registration is complete. You can now log in to your account."
)

// Profile holds the editable personal details of a user.
type Profile struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	Birthdate *model.Date
	Phone     string
}

// Registration is returned by Register. Token is what the activation link
// carries.
type Registration struct {
	User      *model.User
	Token     string
	ExpiresAt time.Time
}

// UserService handles registration and profile operations.
type UserService interface {
	Register(ctx context.Context, email string) (*Registration, error)
	Activate(ctx context.Context, token, password string, profile Profile) (*model.User, error)
	GetProfile(ctx context.Context, id uint) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, profile Profile) (*model.User, error)
	// CreateStaff creates or refreshes an active, verified account with the
	// given role. Used for seeding owner and instructor accounts.
	CreateStaff(ctx context.Context, email, password string, role model.Role, profile Profile) (*model.User, error)
}

type userService struct {
	store  repository.Store
	hasher auth.PasswordHasher
	opts   Options
	logger *zap.Logger
	now    func() time.Time
}

// NewUserService creates a new user service.
func NewUserService(store repository.Store, hasher auth.PasswordHasher, opts Options, logger *zap.Logger) UserService {
	return &userService{
		store:  store,
		hasher: hasher,
		opts:   opts,
		logger: logger.Named("user"),
		now:    utcNow,
	}
}

// Register creates an inactive customer and queues an activation mail.
func (s *userService) Register(ctx context.Context, email string) (*Registration, error) {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.ErrInvalidEmail
	}

	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	reg := &Registration{
		Token:     auth.NewSessionToken(),
		ExpiresAt: s.now().Add(s.opts.ActivationTTL),
	}
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		_, err := tx.Users().FindByEmail(ctx, email)
		if err == nil {
			return apperrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check user existence: %w", err)
		}

		user := &model.User{Email: email, Role: model.RoleCustomer}
		if err := tx.Users().Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if err := tx.Users().CreateActivation(ctx, &model.UserActivation{
			UserID:    user.ID,
			Token:     reg.Token,
			ExpiresAt: reg.ExpiresAt,
		}); err != nil {
			return fmt.Errorf("create activation: %w", err)
		}
		if err := tx.Emails().Create(ctx, &model.EmailLogEntry{
			UserID:  &user.ID,
			EmailTo: &user.Email,
			Subject: activationSubject,
			Body:    "Gebruik deze code om je account te activeren: " + reg.Token,
			SentAt:  s.now(),
			Status:  model.EmailStatusQueued,
		}); err != nil {
			return fmt.Errorf("queue activation mail: %w", err)
		}
		reg.User = user
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyRegistered) {
			return nil, err
		}
		return nil, apperrors.Classify(err)
	}

	s.logger.Info("user registered", zap.Uint("user_id", reg.User.ID))
	return reg, nil
}

// Activate consumes an activation token, sets the password and profile and
// enables the account.
func (s *userService) Activate(ctx context.Context, token, password string, profile Profile) (*model.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	var user *model.User
	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		now := s.now()
		activation, err := tx.Users().FindActivationByToken(ctx, token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvalidActivationToken
			}
			return err
		}
		if activation.UsedAt != nil || !now.Before(activation.ExpiresAt) {
			return apperrors.ErrInvalidActivationToken
		}
		if err := tx.Users().MarkActivationUsed(ctx, activation.ID, now); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvalidActivationToken
			}
			return err
		}

		user, err = tx.Users().FindByID(ctx, activation.UserID)
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}
		user.PasswordHash = hash
		applyProfile(user, profile)
		user.IsActive = true
		user.EmailVerified = true
		if err := tx.Users().Update(ctx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		return tx.Emails().Create(ctx, &model.EmailLogEntry{
			UserID:  &user.ID,
			EmailTo: &user.Email,
			Subject: welcomeSubject,
			Body:    welcomeBody,
			SentAt:  now,
			Status:  model.EmailStatusQueued,
		})
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidActivationToken) {
			return nil, err
		}
		return nil, apperrors.Classify(err)
	}

	s.logger.Info("user activated", zap.Uint("user_id", user.ID))
	return user, nil
}

func applyProfile(user *model.User, p Profile) {
	user.FirstName = strings.TrimSpace(p.FirstName)
	user.LastName = strings.TrimSpace(p.LastName)
	user.Address = strings.TrimSpace(p.Address)
	user.City = strings.TrimSpace(p.City)
	user.Birthdate = p.Birthdate
	user.Phone = strings.TrimSpace(p.Phone)
}

func (s *userService) GetProfile(ctx context.Context, id uint) (*model.User, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Classify(err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uint, profile Profile) (*model.User, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	var user *model.User
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		var err error
		user, err = tx.Users().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}
		applyProfile(user, profile)
		return tx.Users().Update(ctx, user)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		return nil, apperrors.Classify(err)
	}
	return user, nil
}

func (s *userService) CreateStaff(ctx context.Context, email, password string, role model.Role, profile Profile) (*model.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("create staff: unknown role %q", role)
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	email = NormalizeEmail(email)

	var user *model.User
	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		existing, err := tx.Users().FindByEmail(ctx, email)
		switch {
		case err == nil:
			user = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = &model.User{Email: email}
		default:
			return err
		}
		user.PasswordHash = hash
		user.Role = role
		applyProfile(user, profile)
		user.IsActive = true
		user.EmailVerified = true
		user.Blocked = false
		if user.ID == 0 {
			return tx.Users().Create(ctx, user)
		}
		return tx.Users().Update(ctx, user)
	})
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	return user, nil
}
