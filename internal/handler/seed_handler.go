package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"kitesurf/internal/auth"
	"kitesurf/internal/errors"
	"kitesurf/internal/service"
)

// SeedHandler restores the standard catalog.
type SeedHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(catalogService service.CatalogService, logger *zap.Logger) *SeedHandler {
	return &SeedHandler{catalogService: catalogService, logger: logger}
}

// SeedCatalogResponse represents the seed response.
type SeedCatalogResponse struct {
	Message   string `json:"message"`
	Packages  int    `json:"packages"`
	Locations int    `json:"locations"`
}

// SeedCatalog godoc
// @Summary Upsert the standard lesson packages and locations
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedCatalogResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /catalog/seed [post]
func (h *SeedHandler) SeedCatalog(c echo.Context) error {
	user := CurrentUser(c)
	if !auth.Can(user, auth.PermManageLessonPackages) {
		return HTTPError(errors.ErrForbidden)
	}

	packages, locations := service.DefaultPackages(), service.DefaultLocations()
	if err := h.catalogService.Seed(c.Request().Context(), packages, locations); err != nil {
		h.logger.Error("seed catalog failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return HTTPError(err)
	}

	return c.JSON(http.StatusOK, SeedCatalogResponse{
		Message:   "Catalogus bijgewerkt",
		Packages:  len(packages),
		Locations: len(locations),
	})
}
