package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitesurf/internal/model"
)

// ReservationFilter narrows a reservation listing. Zero values match all.
type ReservationFilter struct {
	CustomerID uint
	Status     model.ReservationStatus
}

// ReservationRepository defines reservation persistence operations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	FindByID(ctx context.Context, id uint) (*model.Reservation, error)
	// FindByIDForUpdate finds a reservation with a row-level lock. Only
	// meaningful inside Store.WithTransaction.
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Reservation, error)
	List(ctx context.Context, filter ReservationFilter) ([]model.Reservation, error)
	UpdateStatus(ctx context.Context, id uint, status model.ReservationStatus, cancelReason *string) error

	CreateDuoParticipant(ctx context.Context, participant *model.DuoParticipant) error
	FindDuoParticipants(ctx context.Context, reservationIDs ...uint) (map[uint]*model.DuoParticipant, error)
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository.
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) FindByID(ctx context.Context, id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) List(ctx context.Context, filter ReservationFilter) ([]model.Reservation, error) {
	q := r.db.WithContext(ctx).Model(&model.Reservation{})
	if filter.CustomerID != 0 {
		q = q.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var reservations []model.Reservation
	if err := q.Order("date DESC, id DESC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id uint, status model.ReservationStatus, cancelReason *string) error {
	return r.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        status,
			"cancel_reason": cancelReason,
		}).Error
}

func (r *reservationRepository) CreateDuoParticipant(ctx context.Context, participant *model.DuoParticipant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *reservationRepository) FindDuoParticipants(ctx context.Context, reservationIDs ...uint) (map[uint]*model.DuoParticipant, error) {
	out := make(map[uint]*model.DuoParticipant, len(reservationIDs))
	if len(reservationIDs) == 0 {
		return out, nil
	}
	var participants []model.DuoParticipant
	if err := r.db.WithContext(ctx).
		Where("reservation_id IN ?", reservationIDs).
		Find(&participants).Error; err != nil {
		return nil, err
	}
	for i := range participants {
		out[participants[i].ReservationID] = &participants[i]
	}
	return out, nil
}
