package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/vehicle"
)

func exampleWorld(t *testing.T) (r *location.Registry, melbourne, canberra, sydney, tokyo *location.City) {
	t.Helper()
	r = location.NewExampleRegistry()
	australia, ok := r.GetCountry("Australia")
	require.True(t, ok)
	japan, ok := r.GetCountry("Japan")
	require.True(t, ok)

	melbourne, _ = australia.GetCity("Melbourne")
	canberra, _ = australia.GetCity("Canberra")
	sydney, _ = australia.GetCity("Sydney")
	tokyo, _ = japan.GetCity("Tokyo")
	return r, melbourne, canberra, sydney, tokyo
}

func cityNames(cities []*location.City) []string {
	names := make([]string, len(cities))
	for i, city := range cities {
		names[i] = city.Name()
	}
	return names
}

func TestFindShortestPathDirectVehicle(t *testing.T) {
	r, melbourne, _, _, tokyo := exampleWorld(t)
	engine := NewEngine(r, zap.NewNop())

	direct, err := vehicle.NewDirectVehicle(200)
	require.NoError(t, err)

	// direct flight: 8190 km -> 41 h beats any stopover
	trip, found := engine.FindShortestPath(direct, melbourne, tokyo)
	require.True(t, found)
	assert.Equal(t, []string{"Melbourne", "Tokyo"}, cityNames(trip.Cities()))
	assert.Equal(t, 41.0, trip.TotalTravelTime(direct))
}

func TestFindShortestPathViaPrimaryCapitals(t *testing.T) {
	r, melbourne, _, _, tokyo := exampleWorld(t)
	engine := NewEngine(r, zap.NewNop())

	linked, err := vehicle.NewCountryLinkedVehicle(100, 500)
	require.NoError(t, err)

	// Melbourne cannot leave the country directly (admin capital); the route
	// must hop through Canberra, the only primary capital of Australia.
	trip, found := engine.FindShortestPath(linked, melbourne, tokyo)
	require.True(t, found)
	assert.Equal(t, []string{"Melbourne", "Canberra", "Tokyo"}, cityNames(trip.Cities()))
	assert.Equal(t, 21.0, trip.TotalTravelTime(linked)) // 5 + 16
}

func TestFindShortestPathNotFound(t *testing.T) {
	r, melbourne, _, _, tokyo := exampleWorld(t)
	engine := NewEngine(r, zap.NewNop())

	// every leg to Japan is at least 7824 km, far beyond range
	ranged, err := vehicle.NewRangeLimitedVehicle(3, 2000)
	require.NoError(t, err)

	trip, found := engine.FindShortestPath(ranged, melbourne, tokyo)
	assert.False(t, found)
	assert.Nil(t, trip)
}

func TestFindShortestPathSameCity(t *testing.T) {
	r, melbourne, _, _, _ := exampleWorld(t)
	engine := NewEngine(r, zap.NewNop())

	direct, err := vehicle.NewDirectVehicle(200)
	require.NoError(t, err)

	trip, found := engine.FindShortestPath(direct, melbourne, melbourne)
	require.True(t, found)
	assert.Equal(t, []string{"Melbourne"}, cityNames(trip.Cities()))
	assert.Zero(t, trip.TotalTravelTime(direct))
}

func TestFindShortestPathRangeLimitedHops(t *testing.T) {
	r, melbourne, _, sydney, _ := exampleWorld(t)
	engine := NewEngine(r, zap.NewNop())

	// range covers Melbourne-Canberra (466) and Canberra-Sydney (248) but not
	// Melbourne-Sydney (714): the cheapest route must stop over once.
	ranged, err := vehicle.NewRangeLimitedVehicle(2, 500)
	require.NoError(t, err)

	trip, found := engine.FindShortestPath(ranged, melbourne, sydney)
	require.True(t, found)
	assert.Equal(t, []string{"Melbourne", "Canberra", "Sydney"}, cityNames(trip.Cities()))
	assert.Equal(t, 4.0, trip.TotalTravelTime(ranged))
}

func TestFindShortestPathCached(t *testing.T) {
	r, melbourne, _, _, tokyo := exampleWorld(t)
	engine := NewEngine(r, zap.NewNop())

	linked, err := vehicle.NewCountryLinkedVehicle(100, 500)
	require.NoError(t, err)

	first, found := engine.FindShortestPath(linked, melbourne, tokyo)
	require.True(t, found)
	second, found := engine.FindShortestPath(linked, melbourne, tokyo)
	require.True(t, found)

	assert.Equal(t, cityNames(first.Cities()), cityNames(second.Cities()))
	assert.Equal(t, first.TotalTravelTime(linked), second.TotalTravelTime(linked))
}

func TestFindShortestPathCacheInvalidatedByRegistryGrowth(t *testing.T) {
	r, melbourne, _, _, tokyo := exampleWorld(t)
	engine := NewEngine(r, zap.NewNop())

	// range too short for any direct Australia-Japan leg
	ranged, err := vehicle.NewRangeLimitedVehicle(1, 6000)
	require.NoError(t, err)

	_, found := engine.FindShortestPath(ranged, melbourne, tokyo)
	require.False(t, found)

	// a stopover within range of both sides appears later
	_, err = r.RegisterCountry("Guam", "GUM")
	require.NoError(t, err)
	_, err = r.RegisterCity("Hagåtña", "13.4745", "144.7504", "Guam", "primary", "3168")
	require.NoError(t, err)

	trip, found := engine.FindShortestPath(ranged, melbourne, tokyo)
	require.True(t, found)
	assert.Equal(t, []string{"Melbourne", "Hagåtña", "Tokyo"}, cityNames(trip.Cities()))
	assert.Equal(t, 2.0, trip.TotalTravelTime(ranged))
}

func TestFindFastestVehicleDelegates(t *testing.T) {
	r, melbourne, canberra, _, _ := exampleWorld(t)
	engine := NewEngine(r, zap.NewNop())

	direct, _ := vehicle.NewDirectVehicle(200)
	linked, _ := vehicle.NewCountryLinkedVehicle(100, 500)

	trip, found := engine.FindShortestPath(direct, melbourne, canberra)
	require.True(t, found)

	fastest, hours := engine.FindFastestVehicle(trip, []vehicle.Vehicle{direct, linked})
	assert.Same(t, direct, fastest)
	assert.Equal(t, 3.0, hours)
}

func TestBuildGraphDeterministic(t *testing.T) {
	r, _, _, _, _ := exampleWorld(t)

	linked, err := vehicle.NewCountryLinkedVehicle(100, 500)
	require.NoError(t, err)

	first := buildGraph(r, linked, 4)
	second := buildGraph(r, linked, 1)

	require.Equal(t, first.numVertices(), second.numVertices())
	for i := range first.adj {
		assert.Equal(t, first.adj[i], second.adj[i])
	}
}

func TestBuildGraphEdges(t *testing.T) {
	r, melbourne, _, _, tokyo := exampleWorld(t)

	linked, err := vehicle.NewCountryLinkedVehicle(100, 500)
	require.NoError(t, err)

	g := buildGraph(r, linked, 2)

	// all three Australian cities interconnect, Tokyo only reaches Canberra
	melbourneIdx := g.index[melbourne.ID()]
	tokyoIdx := g.index[tokyo.ID()]
	assert.Len(t, g.adj[melbourneIdx], 2)
	assert.Len(t, g.adj[tokyoIdx], 1)
}
