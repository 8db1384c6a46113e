// Package trip models an ordered multi-leg journey between cities and its
// aggregate cost under a given vehicle.
package trip

import (
	"strings"

	"github.com/c2001-33332835/onboard-navigation/pkg"
	"github.com/c2001-33332835/onboard-navigation/pkg/geo"
	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/vehicle"
)

// Trip is a non-empty city sequence. Consecutive cities form legs. A trip has
// no intrinsic vehicle; costs are evaluated against a supplied one.
type Trip struct {
	sequence []*location.City
}

// New starts a trip at the departure city.
func New(departure *location.City) *Trip {
	return &Trip{sequence: []*location.City{departure}}
}

// AddNextCity appends the next city to the trip.
func (t *Trip) AddNextCity(city *location.City) {
	t.sequence = append(t.sequence, city)
}

// Cities returns the city sequence in trip order.
func (t *Trip) Cities() []*location.City {
	return t.sequence
}

// Legs returns the consecutive city pairs of the trip.
func (t *Trip) Legs() [][2]*location.City {
	if len(t.sequence) < 2 {
		return nil
	}
	legs := make([][2]*location.City, 0, len(t.sequence)-1)
	for i := 0; i < len(t.sequence)-1; i++ {
		legs = append(legs, [2]*location.City{t.sequence[i], t.sequence[i+1]})
	}
	return legs
}

// TotalTravelTime sums the vehicle's travel time over every leg. The first
// impossible leg makes the whole trip impossible.
func (t *Trip) TotalTravelTime(v vehicle.Vehicle) float64 {
	total := 0.0
	for i := 0; i < len(t.sequence)-1; i++ {
		legTime := v.ComputeTravelTime(t.sequence[i], t.sequence[i+1])
		if pkg.IsInf(legTime) {
			return pkg.INF_WEIGHT
		}
		total += legTime
	}
	return total
}

// FindFastestVehicle evaluates the trip against every candidate and returns
// the one with the minimum total time. Ties go to the earliest candidate. When
// no candidate can complete the trip the result is (nil, INF_WEIGHT).
func (t *Trip) FindFastestVehicle(vehicles []vehicle.Vehicle) (vehicle.Vehicle, float64) {
	var fastest vehicle.Vehicle
	best := pkg.INF_WEIGHT
	for _, v := range vehicles {
		travelTime := t.TotalTravelTime(v)
		if travelTime < best {
			fastest = v
			best = travelTime
		}
	}
	return fastest, best
}

// Coordinates returns the coordinate sequence of the trip, for consumers that
// draw it.
func (t *Trip) Coordinates() []geo.Coordinate {
	coords := make([]geo.Coordinate, len(t.sequence))
	for i, city := range t.sequence {
		coords[i] = city.Coordinate()
	}
	return coords
}

// Polyline encodes the trip geometry for the rendering consumer.
func (t *Trip) Polyline() string {
	return geo.PolylineFromCoords(t.Coordinates())
}

// String renders the trip as "City1 (A) -> City2 (B) -> ...".
func (t *Trip) String() string {
	names := make([]string, len(t.sequence))
	for i, city := range t.sequence {
		names[i] = city.String()
	}
	return strings.Join(names, " -> ")
}
