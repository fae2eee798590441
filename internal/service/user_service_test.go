package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "kitesurf/internal/errors"
	"kitesurf/internal/model"
)

func TestUserService_RegisterAndActivate(t *testing.T) {
	env := newTestEnv(t)
	users := env.userService()
	ctx := context.Background()

	reg, err := users.Register(ctx, "Nieuw@B.com")
	require.NoError(t, err)
	assert.Equal(t, "nieuw@b.com", reg.User.Email)
	assert.Equal(t, model.RoleCustomer, reg.User.Role)
	assert.NotEmpty(t, reg.Token)

	stored, err := users.GetProfile(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
	assert.False(t, stored.EmailVerified)
	assert.Equal(t, int64(1), count(t, env.db, &model.EmailLogEntry{}, "subject = ?", activationSubject))

	_, err = users.Register(ctx, "nieuw@b.com")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyRegistered)

	birthdate := model.NewDate(1990, time.May, 4)
	activated, err := users.Activate(ctx, reg.Token, "Windkracht#12", Profile{
		FirstName: "Nina",
		LastName:  "Bakker",
		City:      "Haarlem",
		Birthdate: &birthdate,
	})
	require.NoError(t, err)
	assert.True(t, activated.IsActive)
	assert.True(t, activated.EmailVerified)
	assert.Equal(t, "Nina", activated.FirstName)
	assert.Equal(t, int64(1), count(t, env.db, &model.EmailLogEntry{}, "subject = ? AND status = ?", welcomeSubject, model.EmailStatusQueued))

	_, err = users.Activate(ctx, reg.Token, "other", Profile{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidActivationToken)

	res, err := env.authService().Login(ctx, "nieuw@b.com", "Windkracht#12", client)
	require.NoError(t, err)
	assert.Equal(t, "Bakker", res.Identity.LastName)

	reloaded, err := users.GetProfile(ctx, reg.User.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Birthdate)
	assert.Equal(t, "1990-05-04", reloaded.Birthdate.String())
}

func TestUserService_Register_InvalidEmail(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.userService().Register(context.Background(), "geen-email")
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
}

func TestUserService_Activate_ExpiredToken(t *testing.T) {
	env := newTestEnv(t)
	env.opts.ActivationTTL = -time.Minute
	users := env.userService()
	ctx := context.Background()

	reg, err := users.Register(ctx, "laat@b.com")
	require.NoError(t, err)

	_, err = users.Activate(ctx, reg.Token, "secret", Profile{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidActivationToken)

	_, err = users.Activate(ctx, "does-not-exist", "secret", Profile{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidActivationToken)
}

func TestUserService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	user := env.activeUser(t, "a@b.com", model.RoleCustomer)
	users := env.userService()
	ctx := context.Background()

	updated, err := users.UpdateProfile(ctx, user.ID, Profile{FirstName: " Anna ", LastName: "Visser", Phone: "0612345678"})
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.FirstName)
	assert.True(t, updated.IsActive, "profile edits keep the account status")

	_, err = users.UpdateProfile(ctx, 999, Profile{})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	_, err = users.GetProfile(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_CreateStaff(t *testing.T) {
	env := newTestEnv(t)
	users := env.userService()
	ctx := context.Background()

	owner, err := users.CreateStaff(ctx, "Eigenaar@B.com", "first", model.RoleOwner, Profile{FirstName: "Eva"})
	require.NoError(t, err)
	again, err := users.CreateStaff(ctx, "eigenaar@b.com", "second", model.RoleOwner, Profile{FirstName: "Eva"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, again.ID)

	_, err = env.authService().Login(ctx, "eigenaar@b.com", "second", client)
	assert.NoError(t, err)

	_, err = users.CreateStaff(ctx, "x@b.com", "pw", "admin", Profile{})
	assert.Error(t, err)
}
