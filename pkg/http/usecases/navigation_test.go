package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/c2001-33332835/onboard-navigation/pkg/engine/routing"
	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/spatialindex"
	"github.com/c2001-33332835/onboard-navigation/pkg/util"
	"github.com/c2001-33332835/onboard-navigation/pkg/vehicle"
)

const (
	melbourneID = "1036533631"
	canberraID  = "1036142029"
	sydneyID    = "1036074917"
	tokyoID     = "1392685764"
)

func newExampleService(t *testing.T) *NavigationService {
	t.Helper()
	log := zap.NewNop()
	registry := location.NewExampleRegistry()
	engine := routing.NewEngine(registry, log)
	index := spatialindex.NewRtree()
	index.Build(registry, log)
	return NewNavigationService(log, registry, engine, index, vehicle.NewExampleFleet(), 200)
}

func TestFleet(t *testing.T) {
	ns := newExampleService(t)
	assert.Equal(t, []string{
		"DirectVehicle (200 km/h)",
		"CountryLinkedVehicle (100 km/h | 500 km/h)",
		"RangeLimitedVehicle (3 h | 2000 km)",
	}, ns.Fleet())
}

func TestShortestPath(t *testing.T) {
	ns := newExampleService(t)

	// vehicle 1 is the country-linked one: the route detours via Canberra
	result, hours, err := ns.ShortestPath(1, melbourneID, tokyoID)
	require.NoError(t, err)
	assert.Equal(t, 21.0, hours)
	assert.Equal(t, "Melbourne (AUS) -> Canberra (AUS) -> Tokyo (JPN)", result.String())
}

func TestShortestPathErrors(t *testing.T) {
	ns := newExampleService(t)

	testCases := []struct {
		name     string
		vehicle  int
		from, to string
		wantCode error
	}{
		{name: "vehicle index negative", vehicle: -1, from: melbourneID, to: tokyoID, wantCode: util.ErrBadParamInput},
		{name: "vehicle index too large", vehicle: 3, from: melbourneID, to: tokyoID, wantCode: util.ErrBadParamInput},
		{name: "unknown from city", vehicle: 0, from: "0", to: tokyoID, wantCode: util.ErrNotFound},
		{name: "unknown to city", vehicle: 0, from: melbourneID, to: "0", wantCode: util.ErrNotFound},
		{name: "no route in range", vehicle: 2, from: melbourneID, to: tokyoID, wantCode: util.ErrNotFound},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ns.ShortestPath(tt.vehicle, tt.from, tt.to)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, util.ErrorCode(err))
		})
	}
}

func TestShortestPathByCoord(t *testing.T) {
	ns := newExampleService(t)

	// coordinates near Melbourne and Tokyo snap to the registered cities
	result, hours, err := ns.ShortestPathByCoord(0, -37.9, 145.0, 35.7, 139.8)
	require.NoError(t, err)
	assert.Equal(t, 41.0, hours)
	assert.Equal(t, "Melbourne (AUS) -> Tokyo (JPN)", result.String())

	// nothing within the search radius of the open ocean
	_, _, err = ns.ShortestPathByCoord(0, 0, -150, 35.7, 139.8)
	require.Error(t, err)
	assert.Equal(t, util.ErrNotFound, util.ErrorCode(err))
}

func TestFastestVehicle(t *testing.T) {
	ns := newExampleService(t)

	name, hours, result, err := ns.FastestVehicle([]string{melbourneID, canberraID, tokyoID})
	require.NoError(t, err)
	assert.Equal(t, "CountryLinkedVehicle (100 km/h | 500 km/h)", name)
	assert.Equal(t, 21.0, hours)
	assert.Equal(t, "Melbourne (AUS) -> Canberra (AUS) -> Tokyo (JPN)", result.String())
}

func TestFastestVehicleErrors(t *testing.T) {
	ns := newExampleService(t)

	_, _, _, err := ns.FastestVehicle([]string{melbourneID})
	require.Error(t, err)
	assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))

	_, _, _, err = ns.FastestVehicle([]string{melbourneID, "0"})
	require.Error(t, err)
	assert.Equal(t, util.ErrNotFound, util.ErrorCode(err))
}

func TestFastestVehicleAllImpossible(t *testing.T) {
	log := zap.NewNop()
	registry := location.NewExampleRegistry()
	engine := routing.NewEngine(registry, log)
	index := spatialindex.NewRtree()
	index.Build(registry, log)

	// a fleet that cannot cross to Japan at all
	ranged, err := vehicle.NewRangeLimitedVehicle(3, 2000)
	require.NoError(t, err)
	ns := NewNavigationService(log, registry, engine, index, []vehicle.Vehicle{ranged}, 200)

	_, _, _, err = ns.FastestVehicle([]string{melbourneID, tokyoID})
	require.Error(t, err)
	assert.Equal(t, util.ErrNotFound, util.ErrorCode(err))
}

func TestCitiesOf(t *testing.T) {
	ns := newExampleService(t)

	all, err := ns.CitiesOf("Australia", nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	primaries, err := ns.CitiesOf("Australia", []string{"primary"})
	require.NoError(t, err)
	require.Len(t, primaries, 1)
	assert.Equal(t, "Canberra", primaries[0].Name())

	_, err = ns.CitiesOf("Atlantis", nil)
	require.Error(t, err)
	assert.Equal(t, util.ErrNotFound, util.ErrorCode(err))
}
