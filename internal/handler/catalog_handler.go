package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kitesurf/internal/service"
)

// CatalogHandler serves lesson packages and locations.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListPackages godoc
// @Summary List lesson packages, cheapest first
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Package
// @Failure 500 {object} errors.ErrorResponse
// @Router /packages [get]
func (h *CatalogHandler) ListPackages(c echo.Context) error {
	packages, err := h.catalogService.ListPackages(c.Request().Context())
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, packages)
}

// ListLocations godoc
// @Summary List lesson locations by name
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Location
// @Failure 500 {object} errors.ErrorResponse
// @Router /locations [get]
func (h *CatalogHandler) ListLocations(c echo.Context) error {
	locations, err := h.catalogService.ListLocations(c.Request().Context())
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, locations)
}
