package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kitesurf/internal/model"
	"kitesurf/internal/service"
	"kitesurf/internal/weather"
)

// WeatherHandler serves simulated forecasts per location.
type WeatherHandler struct {
	catalogService service.CatalogService
	now            func() time.Time
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(catalogService service.CatalogService) *WeatherHandler {
	return &WeatherHandler{catalogService: catalogService, now: time.Now}
}

// LocationWeather pairs a location with its forecast.
type LocationWeather struct {
	model.Location
	Weather weather.Weather `json:"weather"`
}

// List godoc
// @Summary Current conditions at every location
// @Tags weather
// @Produce json
// @Success 200 {array} LocationWeather
// @Failure 500 {object} errors.ErrorResponse
// @Router /weather [get]
func (h *WeatherHandler) List(c echo.Context) error {
	locations, err := h.catalogService.ListLocations(c.Request().Context())
	if err != nil {
		return HTTPError(err)
	}

	now := h.now()
	out := make([]LocationWeather, len(locations))
	for i, loc := range locations {
		out[i] = LocationWeather{
			Location: loc,
			Weather:  weather.Generate(weather.Seed(loc.ID, now), now),
		}
	}
	return c.JSON(http.StatusOK, out)
}
