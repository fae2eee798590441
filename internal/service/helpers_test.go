package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kitesurf/internal/auth"
	"kitesurf/internal/db/dbtest"
	"kitesurf/internal/model"
	"kitesurf/internal/repository"
)

type testEnv struct {
	db     *gorm.DB
	store  repository.Store
	hasher *auth.BcryptHasher
	opts   Options
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb := dbtest.Open(t)
	return &testEnv{
		db:     gdb,
		store:  repository.NewStore(gdb),
		hasher: auth.NewBcryptHasher(bcrypt.MinCost),
		opts:   DefaultOptions(),
	}
}

func (e *testEnv) authService() AuthService {
	return NewAuthService(e.store, auth.NewJWTService("test-secret"), auth.NewSessionCache(nil), e.hasher, e.opts, zap.NewNop())
}

func (e *testEnv) reservationService() ReservationService {
	return NewReservationService(e.store, e.opts, zap.NewNop())
}

func (e *testEnv) userService() UserService {
	return NewUserService(e.store, e.hasher, e.opts, zap.NewNop())
}

func (e *testEnv) catalogService() CatalogService {
	return NewCatalogService(e.store, nil, e.opts, zap.NewNop())
}

func (e *testEnv) createUser(t *testing.T, u model.User, password string) *model.User {
	t.Helper()
	if password != "" {
		hash, err := e.hasher.Hash(password)
		require.NoError(t, err)
		u.PasswordHash = hash
	}
	require.NoError(t, e.db.Create(&u).Error)
	// gorm skips zero values for columns with defaults, so write flags explicitly
	require.NoError(t, e.db.Model(&u).Updates(map[string]interface{}{
		"is_active":      u.IsActive,
		"email_verified": u.EmailVerified,
		"blocked":        u.Blocked,
	}).Error)
	return &u
}

func (e *testEnv) activeUser(t *testing.T, email string, role model.Role) *model.User {
	return e.createUser(t, model.User{
		Email:         email,
		Role:          role,
		FirstName:     "Test",
		LastName:      string(role),
		IsActive:      true,
		EmailVerified: true,
	}, "correct")
}

// seedCatalog inserts a single-person package (id 1), a duo package (id 2)
// and one location (id 1).
func (e *testEnv) seedCatalog(t *testing.T) {
	t.Helper()
	require.NoError(t, e.catalogService().Seed(context.Background(),
		[]model.Package{
			{Name: "Privéles", Price: decimal.NewFromInt(175), DurationHours: 2.5, MaxPersons: 1, NumSessions: 1},
			{Name: "Losse Duo Kiteles", Price: decimal.NewFromInt(135), DurationHours: 3.5, MaxPersons: 2, NumSessions: 1},
		},
		[]model.Location{{Name: "Zandvoort"}},
	))
}

func count(t *testing.T, gdb *gorm.DB, m interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := gdb.Model(m)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
