// Package vehicle implements the per-vehicle travel-time rules. A vehicle is a
// pure cost function over city pairs; it holds no reference to the registry.
package vehicle

import (
	"fmt"
	"math"

	"github.com/c2001-33332835/onboard-navigation/pkg"
	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/util"
)

// Vehicle computes the duration of a direct leg between two cities, in hours
// rounded up to a whole hour. An impossible leg is pkg.INF_WEIGHT.
type Vehicle interface {
	ComputeTravelTime(departure, arrival *location.City) float64
	String() string
}

// hoursAtSpeed rounds a leg up to whole hours. A zero distance is zero hours.
func hoursAtSpeed(distanceKM float64, speedKMH int) float64 {
	return math.Ceil(distanceKM / float64(speedKMH))
}

// DirectVehicle travels between any two cities at a single speed.
type DirectVehicle struct {
	speed int
}

// NewDirectVehicle creates a DirectVehicle with a speed in km/h.
func NewDirectVehicle(speed int) (*DirectVehicle, error) {
	if speed <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"direct vehicle speed must be positive, got %d", speed)
	}
	return &DirectVehicle{speed: speed}, nil
}

func (v *DirectVehicle) ComputeTravelTime(departure, arrival *location.City) float64 {
	return hoursAtSpeed(departure.Distance(arrival), v.speed)
}

func (v *DirectVehicle) String() string {
	return fmt.Sprintf("DirectVehicle (%d km/h)", v.speed)
}

// CountryLinkedVehicle travels freely inside one country, and across borders
// only between two primary capitals, at a separate speed.
type CountryLinkedVehicle struct {
	inCountrySpeed    int
	crossCountrySpeed int
}

// NewCountryLinkedVehicle creates a CountryLinkedVehicle with its two speeds
// in km/h: one inside a country, one between primary capitals.
func NewCountryLinkedVehicle(inCountrySpeed, crossCountrySpeed int) (*CountryLinkedVehicle, error) {
	if inCountrySpeed <= 0 || crossCountrySpeed <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"country-linked vehicle speeds must be positive, got %d and %d",
			inCountrySpeed, crossCountrySpeed)
	}
	return &CountryLinkedVehicle{
		inCountrySpeed:    inCountrySpeed,
		crossCountrySpeed: crossCountrySpeed,
	}, nil
}

func (v *CountryLinkedVehicle) ComputeTravelTime(departure, arrival *location.City) float64 {
	if departure.Country() == arrival.Country() {
		return hoursAtSpeed(departure.Distance(arrival), v.inCountrySpeed)
	}
	if departure.CapitalType() != location.CapitalPrimary ||
		arrival.CapitalType() != location.CapitalPrimary {
		return pkg.INF_WEIGHT
	}
	return hoursAtSpeed(departure.Distance(arrival), v.crossCountrySpeed)
}

func (v *CountryLinkedVehicle) String() string {
	return fmt.Sprintf("CountryLinkedVehicle (%d km/h | %d km/h)", v.inCountrySpeed, v.crossCountrySpeed)
}

// RangeLimitedVehicle covers any leg strictly shorter than its range in a
// fixed time. A leg at or beyond the range is impossible.
type RangeLimitedVehicle struct {
	fixedTime   int
	maxDistance int
}

// NewRangeLimitedVehicle creates a RangeLimitedVehicle with a fixed travel
// time in hours and a range limit in km.
func NewRangeLimitedVehicle(fixedTime, maxDistance int) (*RangeLimitedVehicle, error) {
	if fixedTime <= 0 || maxDistance <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"range-limited vehicle time and range must be positive, got %d and %d",
			fixedTime, maxDistance)
	}
	return &RangeLimitedVehicle{
		fixedTime:   fixedTime,
		maxDistance: maxDistance,
	}, nil
}

func (v *RangeLimitedVehicle) ComputeTravelTime(departure, arrival *location.City) float64 {
	if departure.Distance(arrival) >= float64(v.maxDistance) {
		return pkg.INF_WEIGHT
	}
	return float64(v.fixedTime)
}

func (v *RangeLimitedVehicle) String() string {
	return fmt.Sprintf("RangeLimitedVehicle (%d h | %d km)", v.fixedTime, v.maxDistance)
}
