package model

import "time"

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "pending"
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
	ReservationStatusDefinitive ReservationStatus = "definitive"
)

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusDefinitive, ReservationStatusCancelled},
}

// Valid reports whether s is a known status.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled, ReservationStatusDefinitive:
		return true
	}
	return false
}

// CanTransitionTo reports whether a reservation in state s may move to next.
// Re-applying the current state is always allowed.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reservation is a booked lesson. Status changes are the only mutation.
type Reservation struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	CustomerID   uint              `json:"customer_id" gorm:"not null;index"`
	InstructorID *uint             `json:"instructor_id" gorm:"index"`
	PackageID    uint              `json:"package_id" gorm:"not null;index"`
	LocationID   uint              `json:"location_id" gorm:"not null;index"`
	Date         Date              `json:"date" gorm:"type:date;not null;index"`
	Status       ReservationStatus `json:"status" gorm:"size:20;not null;default:'pending';index"`
	CancelReason *string           `json:"cancel_reason"`
	Paid         bool              `json:"paid" gorm:"not null;default:false"`
	PaymentDate  *time.Time        `json:"payment_date"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	// Loaded on demand, never persisted through this struct.
	DuoParticipant *DuoParticipant `json:"duo_participant,omitempty" gorm:"-"`
}

// DuoParticipant is the optional second attendee of a reservation.
type DuoParticipant struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	ReservationID uint    `json:"reservation_id" gorm:"not null;uniqueIndex"`
	Name          string  `json:"name" gorm:"size:255;not null"`
	Email         *string `json:"email" gorm:"size:255"`
	Phone         *string `json:"phone" gorm:"size:30"`
}

// EmailStatus is the delivery state of a logged notification.
type EmailStatus string

const (
	EmailStatusQueued EmailStatus = "queued"
	EmailStatusSent   EmailStatus = "sent"
	EmailStatusFailed EmailStatus = "failed"
)

// EmailLogEntry records the intent to notify a user. Nothing is delivered.
type EmailLogEntry struct {
	ID      uint        `json:"id" gorm:"primaryKey"`
	UserID  *uint       `json:"user_id" gorm:"index"`
	EmailTo *string     `json:"email_to" gorm:"size:255"`
	Subject string      `json:"subject" gorm:"size:255;not null"`
	Body    string      `json:"body" gorm:"type:text;not null"`
	SentAt  time.Time   `json:"sent_at" gorm:"not null"`
	Status  EmailStatus `json:"status" gorm:"size:20;not null;default:'queued'"`
}

// TableName overrides the default table name.
func (EmailLogEntry) TableName() string { return "email_log" }
