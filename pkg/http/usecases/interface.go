package usecases

import (
	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/trip"
	"github.com/c2001-33332835/onboard-navigation/pkg/vehicle"
)

type RoutingEngine interface {
	FindShortestPath(v vehicle.Vehicle, fromCity, toCity *location.City) (*trip.Trip, bool)
	FindFastestVehicle(t *trip.Trip, fleet []vehicle.Vehicle) (vehicle.Vehicle, float64)
}

type SpatialIndex interface {
	NearestCity(lat, lon, searchRadiusKM float64) (*location.City, bool)
}
