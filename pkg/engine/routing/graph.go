package routing

import (
	"sort"

	"github.com/c2001-33332835/onboard-navigation/pkg"
	"github.com/c2001-33332835/onboard-navigation/pkg/concurrent"
	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/vehicle"
)

type arc struct {
	to     int
	weight float64
}

// vehicleGraph is the transient weighted undirected graph induced by one
// vehicle's cost function over the whole registry. Vertices follow registry
// registration order; an edge exists iff the leg is possible for the vehicle.
// It is rebuilt per query and never shared between vehicles.
type vehicleGraph struct {
	cities []*location.City
	index  map[string]int
	adj    [][]arc
}

type rowArcs struct {
	row  int
	arcs []arc
}

// buildGraph evaluates the vehicle's travel time for every unordered city pair
// (i, j), i < j. The O(n^2) pairwise evaluation fans out one row per job; the
// merge is ordered by row so the adjacency lists stay deterministic.
func buildGraph(registry *location.Registry, v vehicle.Vehicle, numWorkers int) *vehicleGraph {
	cities := registry.Cities()
	n := len(cities)

	g := &vehicleGraph{
		cities: cities,
		index:  make(map[string]int, n),
		adj:    make([][]arc, n),
	}
	for i, city := range cities {
		g.index[city.ID()] = i
	}
	if n < 2 {
		return g
	}

	if numWorkers < 1 {
		numWorkers = 1
	}
	pool := concurrent.NewWorkerPool[int, rowArcs](numWorkers, n)
	pool.Start(func(i int) rowArcs {
		row := rowArcs{row: i}
		for j := i + 1; j < n; j++ {
			weight := v.ComputeTravelTime(cities[i], cities[j])
			if pkg.IsInf(weight) {
				continue
			}
			row.arcs = append(row.arcs, arc{to: j, weight: weight})
		}
		return row
	})
	for i := 0; i < n-1; i++ {
		pool.AddJob(i)
	}
	pool.Close()
	pool.Wait()

	rows := make([]rowArcs, 0, n-1)
	for row := range pool.CollectResults() {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(a, b int) bool { return rows[a].row < rows[b].row })

	for _, row := range rows {
		for _, a := range row.arcs {
			g.adj[row.row] = append(g.adj[row.row], a)
			g.adj[a.to] = append(g.adj[a.to], arc{to: row.row, weight: a.weight})
		}
	}
	return g
}

func (g *vehicleGraph) numVertices() int {
	return len(g.cities)
}
