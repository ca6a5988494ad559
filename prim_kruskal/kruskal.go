// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It produces the slice of edges forming the MST without animation steps.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pathviz/core"
)

// Kruskal computes the Minimum Spanning Tree of an undirected graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph     : if graph is nil.
//   - ErrDisconnected : if |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate graph; |V| ≤ 1 → trivial MST (empty, weight=0).
//  2. Sort edges by (Weight, From, To), the same order Prim uses on ties.
//  3. Initialize DSU maps parent[] and rank[] for each node.
//  4. For each edge (u,v), if find(u) != find(v), union(u,v) and include the edge.
//  5. Once the MST has |V|-1 edges, stop. Fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrNilGraph
	}

	nodes := graph.NodeIDs()
	if len(nodes) <= 1 {
		return []core.Edge{}, 0, nil
	}

	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}

		return core.LessEdge(edges[i], edges[j])
	})

	parent := make(map[int]int, len(nodes))
	rank := make(map[int]int, len(nodes))
	for _, id := range nodes {
		parent[id] = id
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}

		return true
	}

	var (
		mst   = make([]core.Edge, 0, len(nodes)-1)
		total int64
	)
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == len(nodes)-1 {
			break
		}
	}

	if len(mst) < len(nodes)-1 {
		return nil, 0, fmt.Errorf("%w: %d of %d tree edges", ErrDisconnected, len(mst), len(nodes)-1)
	}

	return mst, total, nil
}
