package spatialindex

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"

	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/util"
)

const kmPerDegreeLat = 111.0

// Rtree indexes city coordinates so coordinate-based queries can be snapped to
// a registered city. Points are stored as degenerate [lon lat] boxes.
type Rtree struct {
	tr *rtree.RTreeG[*location.City]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[*location.City]
	return &Rtree{tr: &tr}
}

// Build indexes every city currently in the registry.
func (rt *Rtree) Build(registry *location.Registry, log *zap.Logger) {
	for _, city := range registry.Cities() {
		p := [2]float64{city.Coordinate().GetLon(), city.Coordinate().GetLat()}
		rt.tr.Insert(p, p, city)
	}
	log.Info("spatial index built", zap.Int("cities", registry.NumCities()))
}

// NearestCity returns the closest indexed city within searchRadiusKM of the
// given coordinate. Candidates come from a bounding-box search; the winner is
// picked by exact spherical distance.
func (rt *Rtree) NearestCity(lat, lon, searchRadiusKM float64) (*location.City, bool) {
	dLat := searchRadiusKM / kmPerDegreeLat
	cosLat := math.Cos(util.DegreeToRadians(lat))
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	dLon := searchRadiusKM / (kmPerDegreeLat * cosLat)

	origin := s2.LatLngFromDegrees(lat, lon)
	var nearest *location.City
	best := math.Inf(1)
	rt.tr.Search(
		[2]float64{lon - dLon, lat - dLat},
		[2]float64{lon + dLon, lat + dLat},
		func(min, max [2]float64, city *location.City) bool {
			candidate := s2.LatLngFromDegrees(city.Coordinate().GetLat(), city.Coordinate().GetLon())
			if d := origin.Distance(candidate).Radians(); d < best {
				best = d
				nearest = city
			}
			return true
		},
	)
	if nearest == nil {
		return nil, false
	}
	return nearest, true
}

// CitiesWithin returns every indexed city inside the bounding box, unordered.
func (rt *Rtree) CitiesWithin(minLat, minLon, maxLat, maxLon float64) []*location.City {
	var cities []*location.City
	rt.tr.Search(
		[2]float64{minLon, minLat},
		[2]float64{maxLon, maxLat},
		func(min, max [2]float64, city *location.City) bool {
			cities = append(cities, city)
			return true
		},
	)
	return cities
}
