package model

import "time"

// LoginAction is the kind of audit event.
type LoginAction string

const (
	LoginActionLogin         LoginAction = "login"
	LoginActionLogout        LoginAction = "logout"
	LoginActionFailedAttempt LoginAction = "failed_attempt"
)

// LoginEvent is an append-only audit row. UserID is a weak reference and is
// nil when the attempted email matched no user.
type LoginEvent struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	UserID        *uint       `json:"user_id,omitempty" gorm:"index"`
	Email         string      `json:"email" gorm:"size:255;not null;index"`
	Action        LoginAction `json:"action" gorm:"size:20;not null"`
	Timestamp     time.Time   `json:"timestamp" gorm:"precision:6;not null;index"`
	IPAddress     string      `json:"ip_address" gorm:"size:45"`
	UserAgent     string      `json:"user_agent" gorm:"size:512"`
	Success       bool        `json:"success" gorm:"not null"`
	FailureReason *string     `json:"failure_reason,omitempty" gorm:"size:255"`
}

// TableName overrides the default table name.
func (LoginEvent) TableName() string { return "logins" }

// Session is a server side login session. Logout sets ExpiresAt to the
// logout time; rows are kept as audit trail.
type Session struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	SessionToken string    `json:"-" gorm:"size:64;uniqueIndex;not null"`
	IPAddress    string    `json:"ip_address" gorm:"size:45"`
	UserAgent    string    `json:"user_agent" gorm:"size:512"`
	ExpiresAt    time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the default table name.
func (Session) TableName() string { return "user_sessions" }

// ActiveAt reports whether the session is still valid at t.
func (s *Session) ActiveAt(t time.Time) bool {
	return t.Before(s.ExpiresAt)
}

// ClientInfo carries request metadata recorded with audit rows.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}
