package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kitesurf/internal/auth"
	apperrors "kitesurf/internal/errors"
	"kitesurf/internal/model"
	"kitesurf/internal/repository"
)

const (
	confirmationSubject = "Reserveringsbevestiging Kitesurfschool"
	cancellationSubject = "Annulering reservering Kitesurfschool"
)

// DuoParticipantInput describes the optional second attendee.
type DuoParticipantInput struct {
	Name  string
	Email string
	Phone string
}

// CreateReservationInput holds the data for a new reservation.
type CreateReservationInput struct {
	CustomerID     uint
	PackageID      uint
	LocationID     uint
	Date           model.Date
	DuoParticipant *DuoParticipantInput
}

// ReservationService handles booking operations.
type ReservationService interface {
	Create(ctx context.Context, actor *model.User, in CreateReservationInput) (*model.Reservation, error)
	Get(ctx context.Context, actor *model.User, id uint) (*model.Reservation, error)
	List(ctx context.Context, actor *model.User, status model.ReservationStatus) ([]model.Reservation, error)
	UpdateStatus(ctx context.Context, actor *model.User, id uint, status model.ReservationStatus, cancelReason string) (*model.Reservation, error)
}

type reservationService struct {
	store  repository.Store
	opts   Options
	logger *zap.Logger
}

// NewReservationService creates a new reservation service.
func NewReservationService(store repository.Store, opts Options, logger *zap.Logger) ReservationService {
	return &reservationService{
		store:  store,
		opts:   opts,
		logger: logger.Named("reservation"),
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func validateCreate(in CreateReservationInput) error {
	if in.CustomerID == 0 || in.PackageID == 0 || in.LocationID == 0 || in.Date.IsZero() {
		return apperrors.ErrInvalidReservation
	}
	if in.DuoParticipant != nil && strings.TrimSpace(in.DuoParticipant.Name) == "" {
		return apperrors.ErrInvalidReservation
	}
	return nil
}

// Create books a lesson. The reservation, its duo participant and the
// confirmation notice are written in one transaction; nothing is kept when
// any insert fails.
func (s *reservationService) Create(ctx context.Context, actor *model.User, in CreateReservationInput) (*model.Reservation, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	ownBooking := actor != nil && actor.ID == in.CustomerID && auth.Can(actor, auth.PermBookLessons)
	if !ownBooking && !auth.Can(actor, auth.PermManageAllLessons) {
		return nil, apperrors.ErrForbidden
	}

	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	var id uint
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		customer, err := tx.Users().FindByID(ctx, in.CustomerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUnknownCustomer
			}
			return err
		}
		if customer.Role != model.RoleCustomer {
			return apperrors.ErrUnknownCustomer
		}

		pkg, err := tx.Catalog().FindPackage(ctx, in.PackageID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUnknownPackage
			}
			return err
		}
		if _, err := tx.Catalog().FindLocation(ctx, in.LocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUnknownLocation
			}
			return err
		}
		if in.DuoParticipant != nil && !pkg.AllowsDuo() {
			return apperrors.ErrDuoNotAllowed
		}

		reservation := &model.Reservation{
			CustomerID: in.CustomerID,
			PackageID:  in.PackageID,
			LocationID: in.LocationID,
			Date:       in.Date,
			Status:     model.ReservationStatusPending,
		}
		if err := tx.Reservations().Create(ctx, reservation); err != nil {
			return fmt.Errorf("insert reservation: %w", err)
		}

		if in.DuoParticipant != nil {
			if err := tx.Reservations().CreateDuoParticipant(ctx, &model.DuoParticipant{
				ReservationID: reservation.ID,
				Name:          strings.TrimSpace(in.DuoParticipant.Name),
				Email:         optional(in.DuoParticipant.Email),
				Phone:         optional(in.DuoParticipant.Phone),
			}); err != nil {
				return fmt.Errorf("insert duo participant: %w", err)
			}
		}

		if err := tx.Emails().Create(ctx, &model.EmailLogEntry{
			UserID:  &customer.ID,
			EmailTo: &customer.Email,
			Subject: confirmationSubject,
			Body:    fmt.Sprintf("Reservering #%d is succesvol aangemaakt.", reservation.ID),
			SentAt:  utcNow(),
			Status:  model.EmailStatusQueued,
		}); err != nil {
			return fmt.Errorf("insert email log: %w", err)
		}

		id = reservation.ID
		return nil
	})
	if err != nil {
		if isReservationRejection(err) {
			return nil, err
		}
		s.logger.Error("create reservation", zap.Uint("customer_id", in.CustomerID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrReservationCreationFailed, apperrors.Classify(err))
	}

	created, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("reservation created", zap.Uint("id", id), zap.Uint("customer_id", in.CustomerID))
	return created, nil
}

func isReservationRejection(err error) bool {
	return errors.Is(err, apperrors.ErrUnknownCustomer) ||
		errors.Is(err, apperrors.ErrUnknownPackage) ||
		errors.Is(err, apperrors.ErrUnknownLocation) ||
		errors.Is(err, apperrors.ErrDuoNotAllowed)
}

// load reads a reservation with its duo participant, if any.
func (s *reservationService) load(ctx context.Context, id uint) (*model.Reservation, error) {
	reservation, err := s.store.Reservations().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", apperrors.Classify(err))
	}
	duos, err := s.store.Reservations().FindDuoParticipants(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find duo participant: %w", apperrors.Classify(err))
	}
	reservation.DuoParticipant = duos[id]
	return reservation, nil
}

func canView(actor *model.User, r *model.Reservation) bool {
	switch {
	case auth.Can(actor, auth.PermManageAllLessons):
		return true
	case auth.Can(actor, auth.PermViewOwnLessons):
		return r.CustomerID == actor.ID
	case auth.Can(actor, auth.PermViewLessonSchedule):
		return true
	}
	return false
}

func (s *reservationService) Get(ctx context.Context, actor *model.User, id uint) (*model.Reservation, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	reservation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canView(actor, reservation) {
		// Do not reveal that the id exists.
		return nil, apperrors.ErrReservationNotFound
	}
	return reservation, nil
}

// List returns the reservations visible to actor, newest date first.
// Customers see their own bookings; instructors and owners see the whole
// schedule.
func (s *reservationService) List(ctx context.Context, actor *model.User, status model.ReservationStatus) ([]model.Reservation, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}
	filter := repository.ReservationFilter{Status: status}
	switch {
	case auth.Can(actor, auth.PermManageAllLessons):
	case auth.Can(actor, auth.PermViewOwnLessons):
		filter.CustomerID = actor.ID
	case auth.Can(actor, auth.PermViewLessonSchedule):
	default:
		return nil, apperrors.ErrForbidden
	}

	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	reservations, err := s.store.Reservations().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", apperrors.Classify(err))
	}
	ids := make([]uint, len(reservations))
	for i := range reservations {
		ids[i] = reservations[i].ID
	}
	duos, err := s.store.Reservations().FindDuoParticipants(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("find duo participants: %w", apperrors.Classify(err))
	}
	for i := range reservations {
		reservations[i].DuoParticipant = duos[reservations[i].ID]
	}
	return reservations, nil
}

func canChangeStatus(actor *model.User, r *model.Reservation, status model.ReservationStatus) bool {
	switch {
	case auth.CanAny(actor, auth.PermManageAllLessons, auth.PermManageCustomerLessons):
		return true
	case status == model.ReservationStatusCancelled && auth.Can(actor, auth.PermCancelOwnLessons):
		return r.CustomerID == actor.ID
	}
	return false
}

func sameReason(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// UpdateStatus moves a reservation along its lifecycle. Re-applying the
// current status leaves the row untouched unless a new cancel reason is
// given, and only a real change to cancelled queues a cancellation notice.
func (s *reservationService) UpdateStatus(ctx context.Context, actor *model.User, id uint, status model.ReservationStatus, cancelReason string) (*model.Reservation, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	var reason *string
	if status == model.ReservationStatusCancelled {
		reason = optional(cancelReason)
	}

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		current, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrReservationNotFound
			}
			return err
		}
		if !canView(actor, current) {
			return apperrors.ErrReservationNotFound
		}
		if !canChangeStatus(actor, current, status) {
			return apperrors.ErrForbidden
		}
		if !current.Status.CanTransitionTo(status) {
			return apperrors.ErrInvalidStatusTransition
		}
		if current.Status == status && status == model.ReservationStatusCancelled && reason == nil {
			// keep the reason of the first cancellation
			reason = current.CancelReason
		}

		if current.Status == status && sameReason(current.CancelReason, reason) {
			return nil
		}
		if err := tx.Reservations().UpdateStatus(ctx, id, status, reason); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		if status == model.ReservationStatusCancelled && current.Status != status {
			customer, err := tx.Users().FindByID(ctx, current.CustomerID)
			if err != nil {
				return fmt.Errorf("find customer: %w", err)
			}
			body := fmt.Sprintf("Reservering #%d is geannuleerd.", id)
			if reason != nil {
				body += " Reden: " + *reason
			}
			if err := tx.Emails().Create(ctx, &model.EmailLogEntry{
				UserID:  &customer.ID,
				EmailTo: &customer.Email,
				Subject: cancellationSubject,
				Body:    body,
				SentAt:  utcNow(),
				Status:  model.EmailStatusQueued,
			}); err != nil {
				return fmt.Errorf("insert email log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrReservationNotFound),
			errors.Is(err, apperrors.ErrForbidden),
			errors.Is(err, apperrors.ErrInvalidStatusTransition):
			return nil, err
		}
		s.logger.Error("update reservation status", zap.Uint("id", id), zap.String("status", string(status)), zap.Error(err))
		return nil, fmt.Errorf("update reservation %d: %w", id, apperrors.Classify(err))
	}

	s.logger.Info("reservation status updated", zap.Uint("id", id), zap.String("status", string(status)), zap.Uint("by", actor.ID))
	return s.load(ctx, id)
}

