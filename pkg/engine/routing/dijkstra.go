package routing

import (
	"github.com/c2001-33332835/onboard-navigation/pkg"
	da "github.com/c2001-33332835/onboard-navigation/pkg/datastructure"
)

// shortestPath runs Dijkstra from source to target over the induced graph.
// All edge weights are travel times, hence non-negative. Returns the vertex
// path including both endpoints, its total weight, and whether the target is
// reachable at all.
func (g *vehicleGraph) shortestPath(source, target int) ([]int, float64, bool) {
	n := g.numVertices()

	dist := make([]float64, n)
	prev := make([]int, n)
	settled := make([]bool, n)
	nodes := make([]*da.PriorityQueueNode[int], n)
	for i := range dist {
		dist[i] = pkg.INF_WEIGHT
		prev[i] = -1
	}

	pq := da.NewFourAryHeap[int]()
	pq.Preallocate(n)

	dist[source] = 0
	nodes[source] = da.NewPriorityQueueNode(0, source)
	pq.Insert(nodes[source])

	for !pq.IsEmpty() {
		minNode, err := pq.ExtractMin()
		if err != nil {
			break
		}
		u := minNode.GetItem()
		if settled[u] {
			continue
		}
		settled[u] = true
		if u == target {
			break
		}

		for _, a := range g.adj[u] {
			if settled[a.to] {
				continue
			}
			newDist := dist[u] + a.weight
			if newDist >= dist[a.to] {
				continue
			}
			dist[a.to] = newDist
			prev[a.to] = u
			if nodes[a.to] == nil {
				nodes[a.to] = da.NewPriorityQueueNode(newDist, a.to)
				pq.Insert(nodes[a.to])
			} else {
				pq.DecreaseKey(nodes[a.to], newDist)
			}
		}
	}

	if pkg.IsInf(dist[target]) {
		return nil, pkg.INF_WEIGHT, false
	}

	path := make([]int, 0)
	for at := target; at != -1; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], true
}
