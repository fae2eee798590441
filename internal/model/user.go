package model

import "time"

// Role is the user's role within the school.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleInstructor Role = "instructor"
	RoleOwner      Role = "owner"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleInstructor, RoleOwner:
		return true
	}
	return false
}

// User is a row of the credential store. Users are never hard-deleted.
type User struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Email         string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string     `json:"-" gorm:"column:password;size:255"` // Never expose in JSON
	Role          Role       `json:"role" gorm:"size:20;not null;default:'customer';index"`
	FirstName     string     `json:"first_name" gorm:"size:100"`
	LastName      string     `json:"last_name" gorm:"size:100"`
	Address       string     `json:"address,omitempty" gorm:"size:255"`
	City          string     `json:"city,omitempty" gorm:"size:100"`
	Birthdate     *Date      `json:"birthdate,omitempty" gorm:"type:date"`
	Phone         string     `json:"phone,omitempty" gorm:"size:30"`
	IsActive      bool       `json:"is_active" gorm:"not null;default:false"`
	EmailVerified bool       `json:"email_verified" gorm:"not null;default:false"`
	Blocked       bool       `json:"blocked" gorm:"not null;default:false;index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
}

// DisplayName is "first last", trimmed when either part is missing.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Identity projects the user onto the data returned to a client after login.
func (u *User) Identity() SessionIdentity {
	return SessionIdentity{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// SessionIdentity is the minimal authenticated-user projection.
type SessionIdentity struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UserActivation is a one-time token sent after registration.
type UserActivation struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"not null;index"`
	Token     string     `json:"-" gorm:"size:64;uniqueIndex;not null"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName overrides the default table name.
func (UserActivation) TableName() string { return "user_activations" }
