// Package location holds the geographic data model: countries, cities and
// great-circle distances between them. All state lives in an explicit Registry
// owned by the caller; there are no package-level registries.
package location

import (
	"fmt"
	"math"
	"strings"

	"github.com/c2001-33332835/onboard-navigation/pkg/geo"
	"github.com/c2001-33332835/onboard-navigation/pkg/util"
)

// CapitalType classifies a city (e.g. "primary" for a national capital).
type CapitalType string

const (
	CapitalPrimary     CapitalType = "primary"
	CapitalAdmin       CapitalType = "admin"
	CapitalMinor       CapitalType = "minor"
	CapitalUnspecified CapitalType = ""
)

// ParseCapitalType maps a raw dataset value to a CapitalType. Anything
// unrecognized (including the empty string) is CapitalUnspecified.
func ParseCapitalType(raw string) CapitalType {
	switch CapitalType(raw) {
	case CapitalPrimary, CapitalAdmin, CapitalMinor:
		return CapitalType(raw)
	default:
		return CapitalUnspecified
	}
}

func (ct CapitalType) String() string {
	return string(ct)
}

// Country owns its cities in registration order.
type Country struct {
	name   string
	iso3   string
	cities []*City
}

func (c *Country) Name() string {
	return c.name
}

func (c *Country) ISO3() string {
	return c.iso3
}

func (c *Country) String() string {
	return c.name
}

// GetCities returns the country's cities in registration order. When capital
// types are given, only cities of those types are returned.
func (c *Country) GetCities(capitalTypes ...CapitalType) []*City {
	if len(capitalTypes) == 0 {
		return c.cities
	}

	filtered := make([]*City, 0, len(c.cities))
	for _, city := range c.cities {
		for _, ct := range capitalTypes {
			if city.capitalType == ct {
				filtered = append(filtered, city)
				break
			}
		}
	}
	return filtered
}

// GetCity returns the first city registered under the given name, scanning in
// registration order. Duplicate names inside one country are possible in the
// dataset; the first match wins.
func (c *Country) GetCity(cityName string) (*City, bool) {
	for _, city := range c.cities {
		if city.name == cityName {
			return city, true
		}
	}
	return nil, false
}

// City is immutable once registered.
type City struct {
	name        string
	coord       geo.Coordinate
	capitalType CapitalType
	country     *Country
	id          string
}

func (c *City) Name() string {
	return c.name
}

func (c *City) ID() string {
	return c.id
}

func (c *City) Country() *Country {
	return c.country
}

func (c *City) CapitalType() CapitalType {
	return c.capitalType
}

func (c *City) Coordinate() geo.Coordinate {
	return c.coord
}

// Distance returns the great-circle distance to the other city in kilometers,
// rounded to the nearest whole kilometer.
func (c *City) Distance(other *City) float64 {
	d := geo.CalculateHaversineDistance(c.coord.GetLat(), c.coord.GetLon(),
		other.coord.GetLat(), other.coord.GetLon())
	return math.Round(d)
}

// String renders the city name with the country ISO3 code, e.g. "Melbourne (AUS)".
func (c *City) String() string {
	return fmt.Sprintf("%s (%s)", c.name, c.country.iso3)
}

// Registry indexes countries by name and cities by id. Registration order is
// preserved for both; the routing engine relies on the deterministic city
// iteration order.
type Registry struct {
	countries    map[string]*Country
	countryOrder []*Country
	cities       map[string]*City
	cityOrder    []*City
}

func NewRegistry() *Registry {
	return &Registry{
		countries: make(map[string]*Country),
		cities:    make(map[string]*City),
	}
}

// RegisterCountry adds a country under a globally unique name. Re-registering
// an existing name never overwrites: the existing country is returned together
// with a conflict error.
func (r *Registry) RegisterCountry(name, iso3 string) (*Country, error) {
	if existing, ok := r.countries[name]; ok {
		return existing, util.WrapErrorf(nil, util.ErrConflict,
			"country %q is already registered", name)
	}

	country := &Country{
		name: name,
		iso3: strings.ToUpper(iso3),
	}
	r.countries[name] = country
	r.countryOrder = append(r.countryOrder, country)
	return country, nil
}

func (r *Registry) GetCountry(name string) (*Country, bool) {
	country, ok := r.countries[name]
	return country, ok
}

// Countries returns all countries in registration order.
func (r *Registry) Countries() []*Country {
	return r.countryOrder
}

// RegisterCity parses the raw coordinate fields, attaches the city to its
// already-registered country and indexes it by id. The country must exist and
// the id must be unused.
func (r *Registry) RegisterCity(name, latitude, longitude, countryName, capitalType, cityID string) (*City, error) {
	country, ok := r.countries[countryName]
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound,
			"country %q is not registered", countryName)
	}

	lat, err := util.StringToFloat64(latitude)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput,
			"city %q: latitude %q is not a number", name, latitude)
	}
	lon, err := util.StringToFloat64(longitude)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput,
			"city %q: longitude %q is not a number", name, longitude)
	}

	if _, ok := r.cities[cityID]; ok {
		return nil, util.WrapErrorf(nil, util.ErrConflict,
			"city id %q is already registered", cityID)
	}

	city := &City{
		name:        name,
		coord:       geo.NewCoordinate(lat, lon),
		capitalType: ParseCapitalType(capitalType),
		country:     country,
		id:          cityID,
	}
	r.cities[cityID] = city
	r.cityOrder = append(r.cityOrder, city)
	country.cities = append(country.cities, city)
	return city, nil
}

func (r *Registry) GetCityByID(cityID string) (*City, bool) {
	city, ok := r.cities[cityID]
	return city, ok
}

// Cities returns every registered city in registration order.
func (r *Registry) Cities() []*City {
	return r.cityOrder
}

func (r *Registry) NumCities() int {
	return len(r.cityOrder)
}
