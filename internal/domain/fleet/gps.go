package fleet

import (
	"math"

	"github.com/Pratul75/report360/internal/domain/shared"
)

// earthRadiusKM is the mean Earth radius used by the haversine formula.
const earthRadiusKM = 6371.0

// Point is a GPS coordinate pair
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks the coordinate ranges
func (p Point) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return shared.NewDomainError("INVALID_INPUT", "Latitude must be between -90 and 90")
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return shared.NewDomainError("INVALID_INPUT", "Longitude must be between -180 and 180")
	}
	return nil
}

// HaversineKM returns the great-circle distance between two points in
// kilometres, rounded to two decimal places.
func HaversineKM(from, to Point) (float64, error) {
	if err := from.Validate(); err != nil {
		return 0, err
	}
	if err := to.Validate(); err != nil {
		return 0, err
	}

	lat1 := from.Latitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	dLat := (to.Latitude - from.Latitude) * math.Pi / 180
	dLon := (to.Longitude - from.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKM*c*100) / 100, nil
}
