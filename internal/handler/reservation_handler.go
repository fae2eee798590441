package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"kitesurf/internal/errors"
	"kitesurf/internal/model"
	"kitesurf/internal/service"
)

// ReservationHandler handles reservation endpoints.
type ReservationHandler struct {
	reservationService service.ReservationService
	logger             *zap.Logger
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(reservationService service.ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
		logger:             logger.Named("reservation_handler"),
	}
}

// DuoParticipantRequest describes the second attendee.
type DuoParticipantRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

// CreateReservationRequest represents a booking request. CustomerID
// defaults to the caller.
type CreateReservationRequest struct {
	CustomerID     uint                   `json:"customer_id"`
	PackageID      uint                   `json:"package_id" validate:"required"`
	LocationID     uint                   `json:"location_id" validate:"required"`
	Date           model.Date             `json:"date"`
	DuoParticipant *DuoParticipantRequest `json:"duo_participant,omitempty"`
}

// UpdateStatusRequest represents a status change.
type UpdateStatusRequest struct {
	Status       model.ReservationStatus `json:"status" validate:"required"`
	CancelReason string                  `json:"cancel_reason"`
}

func reservationID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, badRequest("Ongeldig reserveringsnummer")
	}
	return uint(id), nil
}

// Create godoc
// @Summary Book a lesson
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReservationRequest true "Reservation"
// @Success 201 {object} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return HTTPError(errors.ErrInvalidReservation)
	}
	if err := c.Validate(&req); err != nil {
		return HTTPError(errors.ErrInvalidReservation)
	}

	user := CurrentUser(c)
	in := service.CreateReservationInput{
		CustomerID: req.CustomerID,
		PackageID:  req.PackageID,
		LocationID: req.LocationID,
		Date:       req.Date,
	}
	if in.CustomerID == 0 {
		in.CustomerID = user.ID
	}
	if d := req.DuoParticipant; d != nil {
		in.DuoParticipant = &service.DuoParticipantInput{Name: d.Name, Email: d.Email, Phone: d.Phone}
	}

	reservation, err := h.reservationService.Create(c.Request().Context(), user, in)
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusCreated, reservation)
}

// Get godoc
// @Summary Get a reservation with its duo participant
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return err
	}
	reservation, err := h.reservationService.Get(c.Request().Context(), CurrentUser(c), id)
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, reservation)
}

// List godoc
// @Summary List reservations visible to the caller
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	status := model.ReservationStatus(c.QueryParam("status"))
	reservations, err := h.reservationService.List(c.Request().Context(), CurrentUser(c), status)
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, reservations)
}

// UpdateStatus godoc
// @Summary Change the status of a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return err
	}
	var req UpdateStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	reservation, err := h.reservationService.UpdateStatus(c.Request().Context(), CurrentUser(c), id, req.Status, req.CancelReason)
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, reservation)
}
