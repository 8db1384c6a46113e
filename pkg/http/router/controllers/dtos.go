package controllers

import (
	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/trip"
)

type shortestPathRequest struct {
	Vehicle int    `json:"vehicle" validate:"min=0"`
	FromID  string `json:"from_id" validate:"required"`
	ToID    string `json:"to_id" validate:"required"`
}

type shortestPathByCoordRequest struct {
	Vehicle        int     `json:"vehicle" validate:"min=0"`
	OriginLat      float64 `json:"origin_lat" validate:"min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"min=-180,max=180"`
}

type fastestVehicleRequest struct {
	CityIDs []string `json:"city_ids" validate:"required,min=2"`
}

type cityResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	ISO3        string  `json:"iso3"`
	CapitalType string  `json:"capital_type"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

func newCityResponse(city *location.City) cityResponse {
	return cityResponse{
		ID:          city.ID(),
		Name:        city.Name(),
		Country:     city.Country().Name(),
		ISO3:        city.Country().ISO3(),
		CapitalType: city.CapitalType().String(),
		Lat:         city.Coordinate().GetLat(),
		Lon:         city.Coordinate().GetLon(),
	}
}

func newCityResponses(cities []*location.City) []cityResponse {
	responses := make([]cityResponse, len(cities))
	for i, city := range cities {
		responses[i] = newCityResponse(city)
	}
	return responses
}

type routeResponse struct {
	Hours    float64        `json:"hours"`
	Trip     string         `json:"trip"`
	Cities   []cityResponse `json:"cities"`
	Polyline string         `json:"polyline"`
}

func newRouteResponse(t *trip.Trip, hours float64) routeResponse {
	return routeResponse{
		Hours:    hours,
		Trip:     t.String(),
		Cities:   newCityResponses(t.Cities()),
		Polyline: t.Polyline(),
	}
}

type fastestVehicleResponse struct {
	Vehicle string  `json:"vehicle"`
	Hours   float64 `json:"hours"`
	Trip    string  `json:"trip"`
}

func newFastestVehicleResponse(vehicleName string, hours float64, t *trip.Trip) fastestVehicleResponse {
	return fastestVehicleResponse{
		Vehicle: vehicleName,
		Hours:   hours,
		Trip:    t.String(),
	}
}

type fleetResponse struct {
	Vehicles []string `json:"vehicles"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
