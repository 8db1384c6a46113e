package usecases

import (
	"go.uber.org/zap"

	"github.com/c2001-33332835/onboard-navigation/pkg"
	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/trip"
	"github.com/c2001-33332835/onboard-navigation/pkg/util"
	"github.com/c2001-33332835/onboard-navigation/pkg/vehicle"
)

// NavigationService bridges the HTTP controllers to the registry, the routing
// engine, the spatial index and the configured vehicle fleet.
type NavigationService struct {
	log            *zap.Logger
	registry       *location.Registry
	engine         RoutingEngine
	spatialIndex   SpatialIndex
	fleet          []vehicle.Vehicle
	searchRadiusKM float64
}

func NewNavigationService(log *zap.Logger, registry *location.Registry, engine RoutingEngine,
	spatialIndex SpatialIndex, fleet []vehicle.Vehicle, searchRadiusKM float64) *NavigationService {
	return &NavigationService{
		log:            log,
		registry:       registry,
		engine:         engine,
		spatialIndex:   spatialIndex,
		fleet:          fleet,
		searchRadiusKM: searchRadiusKM,
	}
}

// Fleet lists the configured vehicles by display string, in fleet order.
func (ns *NavigationService) Fleet() []string {
	names := make([]string, len(ns.fleet))
	for i, v := range ns.fleet {
		names[i] = v.String()
	}
	return names
}

func (ns *NavigationService) vehicleAt(index int) (vehicle.Vehicle, error) {
	if index < 0 || index >= len(ns.fleet) {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"vehicle index %d is out of range, fleet has %d vehicles", index, len(ns.fleet))
	}
	return ns.fleet[index], nil
}

// ShortestPath computes the fastest route between two registered cities for
// one fleet vehicle.
func (ns *NavigationService) ShortestPath(vehicleIndex int, fromID, toID string) (*trip.Trip, float64, error) {
	v, err := ns.vehicleAt(vehicleIndex)
	if err != nil {
		return nil, 0, err
	}
	fromCity, ok := ns.registry.GetCityByID(fromID)
	if !ok {
		return nil, 0, util.WrapErrorf(nil, util.ErrNotFound, "no city with id %q", fromID)
	}
	toCity, ok := ns.registry.GetCityByID(toID)
	if !ok {
		return nil, 0, util.WrapErrorf(nil, util.ErrNotFound, "no city with id %q", toID)
	}

	result, found := ns.engine.FindShortestPath(v, fromCity, toCity)
	if !found {
		return nil, 0, util.WrapErrorf(nil, util.ErrNotFound,
			"no route from %s to %s with %s", fromCity, toCity, v)
	}
	return result, result.TotalTravelTime(v), nil
}

// ShortestPathByCoord snaps both coordinates to their nearest registered city
// and routes between them.
func (ns *NavigationService) ShortestPathByCoord(vehicleIndex int,
	fromLat, fromLon, toLat, toLon float64) (*trip.Trip, float64, error) {
	fromCity, ok := ns.spatialIndex.NearestCity(fromLat, fromLon, ns.searchRadiusKM)
	if !ok {
		return nil, 0, util.WrapErrorf(nil, util.ErrNotFound,
			"no city within %.0f km of %f,%f", ns.searchRadiusKM, fromLat, fromLon)
	}
	toCity, ok := ns.spatialIndex.NearestCity(toLat, toLon, ns.searchRadiusKM)
	if !ok {
		return nil, 0, util.WrapErrorf(nil, util.ErrNotFound,
			"no city within %.0f km of %f,%f", ns.searchRadiusKM, toLat, toLon)
	}
	return ns.ShortestPath(vehicleIndex, fromCity.ID(), toCity.ID())
}

// FastestVehicle evaluates the fixed trip through the given city ids against
// the whole fleet.
func (ns *NavigationService) FastestVehicle(cityIDs []string) (string, float64, *trip.Trip, error) {
	if len(cityIDs) < 2 {
		return "", 0, nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"a trip needs at least 2 cities, got %d", len(cityIDs))
	}

	first, ok := ns.registry.GetCityByID(cityIDs[0])
	if !ok {
		return "", 0, nil, util.WrapErrorf(nil, util.ErrNotFound, "no city with id %q", cityIDs[0])
	}
	t := trip.New(first)
	for _, id := range cityIDs[1:] {
		city, ok := ns.registry.GetCityByID(id)
		if !ok {
			return "", 0, nil, util.WrapErrorf(nil, util.ErrNotFound, "no city with id %q", id)
		}
		t.AddNextCity(city)
	}

	fastest, hours := ns.engine.FindFastestVehicle(t, ns.fleet)
	if fastest == nil || pkg.IsInf(hours) {
		return "", 0, nil, util.WrapErrorf(nil, util.ErrNotFound,
			"no fleet vehicle can complete the trip %s", t)
	}
	return fastest.String(), hours, t, nil
}

// CitiesOf lists a country's cities, optionally filtered by capital type.
func (ns *NavigationService) CitiesOf(country string, capitalTypes []string) ([]*location.City, error) {
	c, ok := ns.registry.GetCountry(country)
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "country %q is not registered", country)
	}

	filters := make([]location.CapitalType, 0, len(capitalTypes))
	for _, raw := range capitalTypes {
		filters = append(filters, location.ParseCapitalType(raw))
	}
	return c.GetCities(filters...), nil
}
