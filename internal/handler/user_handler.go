package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kitesurf/internal/model"
	"kitesurf/internal/service"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfileRequest holds the editable profile fields.
type UpdateProfileRequest struct {
	FirstName string      `json:"first_name" validate:"required"`
	LastName  string      `json:"last_name" validate:"required"`
	Address   string      `json:"address"`
	City      string      `json:"city"`
	Birthdate *model.Date `json:"birthdate"`
	Phone     string      `json:"phone" validate:"omitempty,max=30"`
}

// Me godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.userService.GetProfile(c.Request().Context(), CurrentUser(c).ID)
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), CurrentUser(c).ID, service.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		Birthdate: req.Birthdate,
		Phone:     req.Phone,
	})
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}
