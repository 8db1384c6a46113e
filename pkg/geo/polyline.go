package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes a coordinate sequence into a google-encoded
// polyline string. This is the only shape the map-rendering consumer reads.
func PolylineFromCoords(coords []Coordinate) string {
	latLngs := make([][]float64, len(coords))
	for i, c := range coords {
		latLngs[i] = []float64{c.GetLat(), c.GetLon()}
	}
	return string(polyline.EncodeCoords(latLngs))
}
