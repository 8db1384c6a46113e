package controllers

import (
	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/trip"
)

type NavigationService interface {
	Fleet() []string
	ShortestPath(vehicleIndex int, fromID, toID string) (*trip.Trip, float64, error)
	ShortestPathByCoord(vehicleIndex int, fromLat, fromLon, toLat, toLon float64) (*trip.Trip, float64, error)
	FastestVehicle(cityIDs []string) (string, float64, *trip.Trip, error)
	CitiesOf(country string, capitalTypes []string) ([]*location.City, error)
}
