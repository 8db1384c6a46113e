package pkg

import "math"

// INF_WEIGHT marks an impossible leg. A vehicle that cannot travel between two
// cities reports this as its travel time, and it propagates through trip sums
// and shortest-path searches.
var INF_WEIGHT = math.Inf(1)

// IsInf reports whether a travel time means "impossible".
func IsInf(weight float64) bool {
	return math.IsInf(weight, 1)
}
