package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kitesurf/internal/errors"
	"kitesurf/internal/model"
)

const currentUserKey = "current_user"

// SetCurrentUser stores the authenticated user for the rest of the request.
func SetCurrentUser(c echo.Context, user *model.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the authenticated user, or nil on public routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}

func clientInfo(c echo.Context) model.ClientInfo {
	return model.ClientInfo{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

// HTTPError converts a service error into an echo error with the mapped
// status and a client safe message.
func HTTPError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  "INVALID_REQUEST",
	})
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest("Ongeldige aanvraag")
	}
	if err := c.Validate(req); err != nil {
		return badRequest("Niet alle verplichte velden zijn correct ingevuld")
	}
	return nil
}
