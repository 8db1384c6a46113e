// Package routing builds a per-vehicle weighted graph over the registry and
// answers shortest-path queries on it.
package routing

import (
	"runtime"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/trip"
	"github.com/c2001-33332835/onboard-navigation/pkg/vehicle"
)

const pathCacheSize = 1 << 16

// pathCacheKey identifies a query result. The vehicle's display string is its
// cost-function signature, and the registry size guards against cities
// registered after the cache entry was filled.
type pathCacheKey struct {
	vehicle   string
	from      string
	to        string
	numCities int
}

type Engine struct {
	registry   *location.Registry
	log        *zap.Logger
	pathCache  *lru.Cache[pathCacheKey, []string]
	numWorkers int
}

func NewEngine(registry *location.Registry, log *zap.Logger) *Engine {
	pathCache, _ := lru.New[pathCacheKey, []string](pathCacheSize)
	return &Engine{
		registry:   registry,
		log:        log,
		pathCache:  pathCache,
		numWorkers: runtime.NumCPU(),
	}
}

// FindShortestPath returns the minimum-travel-time trip between two cities for
// the given vehicle, or false when the cities lie in disconnected components
// of the vehicle's induced graph. Not-found is a normal outcome, not an error.
func (e *Engine) FindShortestPath(v vehicle.Vehicle, fromCity, toCity *location.City) (*trip.Trip, bool) {
	key := pathCacheKey{
		vehicle:   v.String(),
		from:      fromCity.ID(),
		to:        toCity.ID(),
		numCities: e.registry.NumCities(),
	}
	if cityIDs, ok := e.pathCache.Get(key); ok {
		if cached, ok := e.tripFromCityIDs(cityIDs); ok {
			return cached, true
		}
	}

	started := time.Now()
	g := buildGraph(e.registry, v, e.numWorkers)

	source, okFrom := g.index[fromCity.ID()]
	target, okTo := g.index[toCity.ID()]
	if !okFrom || !okTo {
		return nil, false
	}

	path, travelTime, found := g.shortestPath(source, target)
	if !found {
		e.log.Debug("no path between cities",
			zap.String("vehicle", v.String()),
			zap.String("from", fromCity.String()),
			zap.String("to", toCity.String()))
		return nil, false
	}

	result := trip.New(fromCity)
	cityIDs := make([]string, 0, len(path))
	cityIDs = append(cityIDs, fromCity.ID())
	for _, vertex := range path[1:] {
		city := g.cities[vertex]
		result.AddNextCity(city)
		cityIDs = append(cityIDs, city.ID())
	}
	e.pathCache.Add(key, cityIDs)

	e.log.Debug("shortest path computed",
		zap.String("vehicle", v.String()),
		zap.String("from", fromCity.String()),
		zap.String("to", toCity.String()),
		zap.Float64("hours", travelTime),
		zap.Int("legs", len(path)-1),
		zap.Duration("took", time.Since(started)))
	return result, true
}

// FindFastestVehicle evaluates a fixed trip across a candidate fleet and
// returns the first vehicle achieving the minimum total time. All-impossible
// yields (nil, INF_WEIGHT).
func (e *Engine) FindFastestVehicle(t *trip.Trip, fleet []vehicle.Vehicle) (vehicle.Vehicle, float64) {
	return t.FindFastestVehicle(fleet)
}

func (e *Engine) tripFromCityIDs(cityIDs []string) (*trip.Trip, bool) {
	if len(cityIDs) == 0 {
		return nil, false
	}
	first, ok := e.registry.GetCityByID(cityIDs[0])
	if !ok {
		return nil, false
	}
	result := trip.New(first)
	for _, id := range cityIDs[1:] {
		city, ok := e.registry.GetCityByID(id)
		if !ok {
			return nil, false
		}
		result.AddNextCity(city)
	}
	return result, true
}
