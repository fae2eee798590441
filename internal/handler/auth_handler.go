package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"kitesurf/internal/errors"
	"kitesurf/internal/guard"
	"kitesurf/internal/model"
	"kitesurf/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, userService service.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		logger:      logger.Named("auth_handler"),
	}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LogoutRequest represents a logout request.
type LogoutRequest struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ActivateRequest completes a registration.
type ActivateRequest struct {
	Token     string      `json:"token" validate:"required"`
	Password  string      `json:"password" validate:"required,min=8"`
	FirstName string      `json:"firstName" validate:"required"`
	LastName  string      `json:"lastName" validate:"required"`
	Address   string      `json:"address"`
	City      string      `json:"city"`
	Birthdate *model.Date `json:"birthdate"`
	Phone     string      `json:"phone"`
}

// AuthResponse is the body of every auth endpoint.
type AuthResponse struct {
	Success   bool                   `json:"success"`
	Message   string                 `json:"message,omitempty"`
	User      *model.SessionIdentity `json:"user,omitempty"`
	Token     string                 `json:"token,omitempty"`
	ExpiresAt *time.Time             `json:"expiresAt,omitempty"`
}

func authFailure(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, AuthResponse{Success: false, Message: httpErr.Message})
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Failure 401 {object} AuthResponse
// @Failure 500 {object} AuthResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, AuthResponse{Message: "Ongeldige aanvraag"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, AuthResponse{Message: "Vul een geldig email adres en wachtwoord in"})
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, clientInfo(c))
	if err != nil {
		if !errors.IsAuthRejection(err) {
			h.logger.Error("login failed", zap.Error(err))
		}
		return authFailure(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Success:   true,
		User:      &res.Identity,
		Token:     res.Token,
		ExpiresAt: &res.ExpiresAt,
	})
}

// Logout godoc
// @Summary Log out and end all sessions
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LogoutRequest false "User being logged out"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} AuthResponse
// @Failure 500 {object} AuthResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	user := CurrentUser(c)
	var req LogoutRequest
	_ = c.Bind(&req)
	if req.UserID != 0 && req.UserID != user.ID {
		return authFailure(errors.ErrForbidden)
	}

	if err := h.authService.Logout(c.Request().Context(), user.ID, user.Email, clientInfo(c)); err != nil {
		h.logger.Error("logout failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, AuthResponse{Message: "Uitloggen is mislukt"})
	}

	return c.JSON(http.StatusOK, AuthResponse{Success: true, Message: "Je bent uitgelogd"})
}

// Register godoc
// @Summary Register a new customer
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Email address"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Failure 409 {object} AuthResponse
// @Failure 500 {object} AuthResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, AuthResponse{Message: "Ongeldige aanvraag"})
	}
	if err := c.Validate(&req); err != nil {
		return authFailure(errors.ErrInvalidEmail)
	}

	if _, err := h.userService.Register(c.Request().Context(), req.Email); err != nil {
		return authFailure(err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Controleer je email om je account te activeren",
	})
}

// Activate godoc
// @Summary Activate a registered account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ActivateRequest true "Activation data"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Failure 500 {object} AuthResponse
// @Router /auth/activate [post]
func (h *AuthHandler) Activate(c echo.Context) error {
	var req ActivateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, AuthResponse{Message: "Ongeldige aanvraag"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, AuthResponse{Message: "Niet alle verplichte velden zijn correct ingevuld"})
	}

	user, err := h.userService.Activate(c.Request().Context(), req.Token, req.Password, service.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		Birthdate: req.Birthdate,
		Phone:     req.Phone,
	})
	if err != nil {
		return authFailure(err)
	}

	identity := user.Identity()
	return c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Je account is geactiveerd, je kunt nu inloggen",
		User:    &identity,
	})
}

// Route godoc
// @Summary Evaluate page access for the current visitor
// @Tags auth
// @Produce json
// @Param path query string true "Requested page path"
// @Success 200 {object} guard.Decision
// @Router /auth/route [get]
func (h *AuthHandler) Route(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		path = "/"
	}

	var identity *model.SessionIdentity
	if user := CurrentUser(c); user != nil {
		id := user.Identity()
		identity = &id
	}
	return c.JSON(http.StatusOK, guard.Evaluate(path, identity))
}
