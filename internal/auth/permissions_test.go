package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kitesurf/internal/model"
)

func TestCan(t *testing.T) {
	customer := &model.User{Role: model.RoleCustomer, IsActive: true}
	instructor := &model.User{Role: model.RoleInstructor, IsActive: true}
	owner := &model.User{Role: model.RoleOwner, IsActive: true}

	tests := []struct {
		name   string
		user   *model.User
		action Permission
		want   bool
	}{
		{"customer books", customer, PermBookLessons, true},
		{"customer cannot manage all", customer, PermManageAllLessons, false},
		{"instructor cancels", instructor, PermCancelLessons, true},
		{"instructor cannot book", instructor, PermBookLessons, false},
		{"owner manages packages", owner, PermManageLessonPackages, true},
		{"inactive user", &model.User{Role: model.RoleOwner}, PermManageAllLessons, false},
		{"blocked user", &model.User{Role: model.RoleOwner, IsActive: true, Blocked: true}, PermManageAllLessons, false},
		{"nil user", nil, PermViewOwnProfile, false},
		{"unknown role", &model.User{Role: "admin", IsActive: true}, PermViewOwnProfile, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Can(tt.user, tt.action))
		})
	}

	assert.True(t, CanAny(instructor, PermManageAllLessons, PermManageCustomerLessons))
	assert.False(t, CanAny(customer, PermManageAllLessons, PermCancelLessons))
}
