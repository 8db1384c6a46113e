package vehicle

import (
	"github.com/c2001-33332835/onboard-navigation/pkg/util"
)

const (
	TypeDirect        = "direct"
	TypeCountryLinked = "country_linked"
	TypeRangeLimited  = "range_limited"
)

// Config is one fleet entry as declared in the config file.
type Config struct {
	Type              string `mapstructure:"type"`
	Speed             int    `mapstructure:"speed"`
	InCountrySpeed    int    `mapstructure:"in_country_speed"`
	CrossCountrySpeed int    `mapstructure:"cross_country_speed"`
	FixedTime         int    `mapstructure:"fixed_time"`
	MaxDistance       int    `mapstructure:"max_distance"`
}

// FromConfig builds a vehicle from one fleet entry.
func FromConfig(cfg Config) (Vehicle, error) {
	switch cfg.Type {
	case TypeDirect:
		return NewDirectVehicle(cfg.Speed)
	case TypeCountryLinked:
		return NewCountryLinkedVehicle(cfg.InCountrySpeed, cfg.CrossCountrySpeed)
	case TypeRangeLimited:
		return NewRangeLimitedVehicle(cfg.FixedTime, cfg.MaxDistance)
	default:
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"unknown vehicle type %q", cfg.Type)
	}
}

// FleetFromConfig builds the whole fleet, failing fast on the first invalid
// entry.
func FleetFromConfig(cfgs []Config) ([]Vehicle, error) {
	fleet := make([]Vehicle, 0, len(cfgs))
	for _, cfg := range cfgs {
		v, err := FromConfig(cfg)
		if err != nil {
			return nil, err
		}
		fleet = append(fleet, v)
	}
	return fleet, nil
}

// NewExampleFleet returns the three demo vehicles used by the wizard's demo
// mode.
func NewExampleFleet() []Vehicle {
	direct, _ := NewDirectVehicle(200)
	linked, _ := NewCountryLinkedVehicle(100, 500)
	ranged, _ := NewRangeLimitedVehicle(3, 2000)
	return []Vehicle{direct, linked, ranged}
}
