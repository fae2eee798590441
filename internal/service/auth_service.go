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

// Failure reasons recorded in the login audit trail.
const (
	reasonUserNotFound     = "User not found"
	reasonInvalidPassword  = "Invalid password"
	reasonEmailNotVerified = "Email not verified"
	reasonAccountBlocked   = "Account blocked"
	reasonAccountInactive  = "Account inactive"
)

// LoginResult is returned after a successful login.
type LoginResult struct {
	Identity  model.SessionIdentity
	Token     string
	ExpiresAt time.Time
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string, client model.ClientInfo) (*LoginResult, error)
	Logout(ctx context.Context, userID uint, email string, client model.ClientInfo) error
	// ValidateSession resolves a live session token to its user, re-reading
	// the user's status from the store.
	ValidateSession(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	store      repository.Store
	jwtService *auth.JWTService
	sessions   auth.SessionCacheInterface
	hasher     auth.PasswordHasher
	opts       Options
	logger     *zap.Logger
	now        func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	store repository.Store,
	jwtService *auth.JWTService,
	sessions auth.SessionCacheInterface,
	hasher auth.PasswordHasher,
	opts Options,
	logger *zap.Logger,
) AuthService {
	return &authService{
		store:      store,
		jwtService: jwtService,
		sessions:   sessions,
		hasher:     hasher,
		opts:       opts,
		logger:     logger.Named("auth"),
		now:        utcNow,
	}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// checkStatus applies the account status checks in their fixed order.
func checkStatus(user *model.User) (string, error) {
	switch {
	case !user.EmailVerified:
		return reasonEmailNotVerified, apperrors.ErrAccountNotVerified
	case user.Blocked:
		return reasonAccountBlocked, apperrors.ErrAccountBlocked
	case !user.IsActive:
		return reasonAccountInactive, apperrors.ErrAccountInactive
	}
	return "", nil
}

// Login verifies credentials and opens a session. Every attempt leaves
// exactly one audit row; only a successful one leaves a session row.
func (s *authService) Login(ctx context.Context, email, password string, client model.ClientInfo) (*LoginResult, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	email = NormalizeEmail(email)
	user, err := s.store.Users().FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", apperrors.Classify(err))
	}

	if user == nil {
		s.hasher.Verify("", password)
		s.recordFailure(ctx, nil, email, reasonUserNotFound, client)
		return nil, apperrors.ErrInvalidCredentials
	}
	if !s.hasher.Verify(user.PasswordHash, password) {
		s.recordFailure(ctx, &user.ID, email, reasonInvalidPassword, client)
		return nil, apperrors.ErrInvalidCredentials
	}
	if reason, statusErr := checkStatus(user); statusErr != nil {
		s.recordFailure(ctx, &user.ID, email, reason, client)
		return nil, statusErr
	}

	now := s.now()
	sessionToken := auth.NewSessionToken()
	expiresAt := now.Add(s.opts.SessionTTL)
	token, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role), sessionToken, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := tx.Sessions().RecordLoginEvent(ctx, &model.LoginEvent{
			UserID:    &user.ID,
			Email:     email,
			Action:    model.LoginActionLogin,
			Timestamp: now,
			IPAddress: client.IPAddress,
			UserAgent: client.UserAgent,
			Success:   true,
		}); err != nil {
			return fmt.Errorf("record login: %w", err)
		}
		if err := tx.Sessions().Create(ctx, &model.Session{
			UserID:       user.ID,
			SessionToken: sessionToken,
			IPAddress:    client.IPAddress,
			UserAgent:    client.UserAgent,
			ExpiresAt:    expiresAt,
		}); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		return tx.Users().TouchLastLogin(ctx, user.ID, now)
	})
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	_ = s.sessions.StoreSession(ctx, sessionToken, user.ID, s.opts.SessionTTL)
	s.logger.Info("login", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))

	return &LoginResult{
		Identity:  user.Identity(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// recordFailure writes the failed attempt on its own deadline so a request
// that ran out of time during the password check is still audited.
func (s *authService) recordFailure(ctx context.Context, userID *uint, email, reason string, client model.ClientInfo) {
	ctx, cancel := s.opts.withTimeout(context.WithoutCancel(ctx))
	defer cancel()

	r := reason
	err := s.store.Sessions().RecordLoginEvent(ctx, &model.LoginEvent{
		UserID:        userID,
		Email:         email,
		Action:        model.LoginActionFailedAttempt,
		Timestamp:     s.now(),
		IPAddress:     client.IPAddress,
		UserAgent:     client.UserAgent,
		Success:       false,
		FailureReason: &r,
	})
	if err != nil {
		s.logger.Error("record failed login", zap.String("reason", reason), zap.Error(err))
	}
}

// Logout ends every live session of the user. The audit row is written on
// a best-effort basis.
func (s *authService) Logout(ctx context.Context, userID uint, email string, client model.ClientInfo) error {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	now := s.now()
	tokens, err := s.store.Sessions().ExpireActiveForUser(ctx, userID, now)
	if err != nil {
		return fmt.Errorf("expire sessions: %w", apperrors.Classify(err))
	}
	_ = s.sessions.DeleteSessions(ctx, tokens...)

	if err := s.store.Sessions().RecordLoginEvent(ctx, &model.LoginEvent{
		UserID:    &userID,
		Email:     NormalizeEmail(email),
		Action:    model.LoginActionLogout,
		Timestamp: now,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
		Success:   true,
	}); err != nil {
		s.logger.Warn("record logout", zap.Uint("user_id", userID), zap.Error(err))
	}

	s.logger.Info("logout", zap.Uint("user_id", userID), zap.Int("sessions", len(tokens)))
	return nil
}

func (s *authService) ValidateSession(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apperrors.ErrSessionInvalid
	}
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	userID, ok := s.sessions.GetSession(ctx, token)
	if !ok {
		session, err := s.store.Sessions().FindActiveByToken(ctx, token, s.now())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSessionInvalid
			}
			return nil, fmt.Errorf("find session: %w", apperrors.Classify(err))
		}
		userID = session.UserID
		_ = s.sessions.StoreSession(ctx, token, userID, session.ExpiresAt.Sub(s.now()))
	}

	user, err := s.store.Users().FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionInvalid
		}
		return nil, fmt.Errorf("find user: %w", apperrors.Classify(err))
	}
	if _, statusErr := checkStatus(user); statusErr != nil {
		return nil, statusErr
	}
	return user, nil
}
