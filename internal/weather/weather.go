// Package weather produces simulated spot forecasts. No external weather
// service is queried.
package weather

import (
	"math"
	"math/rand/v2"
	"time"
)

// Condition is the general sky state.
type Condition string

const (
	Sunny  Condition = "sunny"
	Cloudy Condition = "cloudy"
	Rainy  Condition = "rainy"
	Stormy Condition = "stormy"
)

var (
	conditions = []Condition{Sunny, Cloudy, Rainy, Stormy}
	// Compass points as shown to Dutch visitors (O = oost, Z = zuid).
	directions = []string{"N", "NO", "O", "ZO", "Z", "ZW", "W", "NW"}
)

// Weather is a single observation at a spot. Wind values are in Beaufort.
type Weather struct {
	Temperature   int       `json:"temperature"`
	FeelsLike     int       `json:"feelsLike"`
	WindSpeed     int       `json:"windSpeed"`
	WindDirection string    `json:"windDirection"`
	WindGusts     int       `json:"windGusts"`
	WaveHeight    float64   `json:"waveHeight"`
	Humidity      int       `json:"humidity"`
	Visibility    int       `json:"visibility"`
	Condition     Condition `json:"condition"`
	Timestamp     time.Time `json:"timestamp"`
}

// Generate returns the forecast for seed, stamped with at. The same seed
// always yields the same values:
//
//	temperature 15-29 °C, feels like 14-28 °C, wind 2-9 Bft, gusts 3-12 Bft,
//	waves 0.5-2.5 m, humidity 60-89 %, visibility 5-12 km
func Generate(seed uint64, at time.Time) Weather {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	return Weather{
		Temperature:   15 + r.IntN(15),
		FeelsLike:     14 + r.IntN(15),
		WindSpeed:     2 + r.IntN(8),
		WindDirection: directions[r.IntN(len(directions))],
		WindGusts:     3 + r.IntN(10),
		WaveHeight:    math.Round((r.Float64()*2+0.5)*10) / 10,
		Humidity:      60 + r.IntN(30),
		Visibility:    5 + r.IntN(8),
		Condition:     conditions[r.IntN(len(conditions))],
		Timestamp:     at.UTC(),
	}
}

// Seed derives a seed for a location that changes every hour.
func Seed(locationID uint, at time.Time) uint64 {
	hour := uint64(at.UTC().Unix() / 3600)
	return hour*1_000_003 + uint64(locationID)
}
