package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2001-33332835/onboard-navigation/pkg"
	"github.com/c2001-33332835/onboard-navigation/pkg/location"
)

// The example world: Melbourne (admin) and Sydney (admin) and Canberra
// (primary) in Australia, Tokyo (primary) in Japan.
// Rounded distances: Melbourne-Canberra 466 km, Melbourne-Sydney 714 km,
// Melbourne-Tokyo 8190 km, Canberra-Tokyo 7952 km.
func exampleCities(t *testing.T) (melbourne, canberra, sydney, tokyo *location.City) {
	t.Helper()
	r := location.NewExampleRegistry()
	australia, ok := r.GetCountry("Australia")
	require.True(t, ok)
	japan, ok := r.GetCountry("Japan")
	require.True(t, ok)

	melbourne, _ = australia.GetCity("Melbourne")
	canberra, _ = australia.GetCity("Canberra")
	sydney, _ = australia.GetCity("Sydney")
	tokyo, _ = japan.GetCity("Tokyo")
	return melbourne, canberra, sydney, tokyo
}

func TestNewVehicleInvalidParams(t *testing.T) {
	_, err := NewDirectVehicle(0)
	assert.Error(t, err)
	_, err = NewDirectVehicle(-10)
	assert.Error(t, err)

	_, err = NewCountryLinkedVehicle(0, 500)
	assert.Error(t, err)
	_, err = NewCountryLinkedVehicle(100, -1)
	assert.Error(t, err)

	_, err = NewRangeLimitedVehicle(0, 2000)
	assert.Error(t, err)
	_, err = NewRangeLimitedVehicle(3, 0)
	assert.Error(t, err)
}

func TestDirectVehicle(t *testing.T) {
	melbourne, canberra, _, tokyo := exampleCities(t)

	v, err := NewDirectVehicle(200)
	require.NoError(t, err)

	// partial hours round up to the next whole hour
	assert.Equal(t, 3.0, v.ComputeTravelTime(melbourne, canberra))
	assert.Equal(t, 41.0, v.ComputeTravelTime(melbourne, tokyo))
	// zero distance is zero hours
	assert.Zero(t, v.ComputeTravelTime(melbourne, melbourne))

	assert.Equal(t, "DirectVehicle (200 km/h)", v.String())
}

func TestCountryLinkedVehicle(t *testing.T) {
	melbourne, canberra, sydney, tokyo := exampleCities(t)

	v, err := NewCountryLinkedVehicle(100, 500)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		from, to *location.City
		want     float64
	}{
		{name: "same country admin to primary", from: melbourne, to: canberra, want: 5},
		{name: "same country admin to admin", from: melbourne, to: sydney, want: 8},
		{name: "cross country both primary", from: canberra, to: tokyo, want: 16},
		{name: "cross country departure not primary", from: melbourne, to: tokyo, want: pkg.INF_WEIGHT},
		{name: "cross country arrival not primary", from: tokyo, to: sydney, want: pkg.INF_WEIGHT},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ComputeTravelTime(tt.from, tt.to))
		})
	}

	assert.Equal(t, "CountryLinkedVehicle (100 km/h | 500 km/h)", v.String())
}

func TestRangeLimitedVehicle(t *testing.T) {
	melbourne, canberra, _, tokyo := exampleCities(t)

	v, err := NewRangeLimitedVehicle(3, 2000)
	require.NoError(t, err)

	// below the limit the time is fixed regardless of distance
	assert.Equal(t, 3.0, v.ComputeTravelTime(melbourne, canberra))
	assert.True(t, pkg.IsInf(v.ComputeTravelTime(melbourne, tokyo)))

	// the boundary is exclusive: a leg exactly at the limit is impossible
	atBoundary, err := NewRangeLimitedVehicle(3, 466)
	require.NoError(t, err)
	assert.True(t, pkg.IsInf(atBoundary.ComputeTravelTime(melbourne, canberra)))

	justAbove, err := NewRangeLimitedVehicle(3, 467)
	require.NoError(t, err)
	assert.Equal(t, 3.0, justAbove.ComputeTravelTime(melbourne, canberra))

	assert.Equal(t, "RangeLimitedVehicle (3 h | 2000 km)", v.String())
}

func TestFromConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		want    string
		wantErr bool
	}{
		{name: "direct", cfg: Config{Type: TypeDirect, Speed: 200}, want: "DirectVehicle (200 km/h)"},
		{name: "country linked", cfg: Config{Type: TypeCountryLinked, InCountrySpeed: 100, CrossCountrySpeed: 500},
			want: "CountryLinkedVehicle (100 km/h | 500 km/h)"},
		{name: "range limited", cfg: Config{Type: TypeRangeLimited, FixedTime: 3, MaxDistance: 2000},
			want: "RangeLimitedVehicle (3 h | 2000 km)"},
		{name: "unknown type", cfg: Config{Type: "submarine"}, wantErr: true},
		{name: "invalid param", cfg: Config{Type: TypeDirect, Speed: 0}, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromConfig(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestFleetFromConfig(t *testing.T) {
	fleet, err := FleetFromConfig([]Config{
		{Type: TypeDirect, Speed: 200},
		{Type: TypeRangeLimited, FixedTime: 1, MaxDistance: 500},
	})
	require.NoError(t, err)
	require.Len(t, fleet, 2)

	_, err = FleetFromConfig([]Config{{Type: TypeDirect, Speed: -1}})
	assert.Error(t, err)
}
