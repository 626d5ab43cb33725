// Package tred implements the Transitive Reduction pre-scheduling
// transformation (spec §4.1): remove every edge (u, w) for which an
// alternative directed path u -> ... -> w already exists in the DDG.
//
// Run is a pure in-place pruning: it never fails intrinsically (only an
// underlying ddg mutator error is fatal), and it does not invalidate the
// recursive predecessor/successor reachability sets, since removing a
// redundant edge cannot change reachability.
package tred

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ddgtrans/ddg"
)

// Stats reports what a Run call did.
type Stats struct {
	EdgesRemoved int
	DFSVisits    int // total nodes visited across all per-edge DFS calls, for telemetry
}

// Run removes every redundant edge from g and returns the count removed.
// Nodes are processed in ascending id order for reproducibility (§4.1:
// "deterministic id order is required for reproducibility"); the final
// edge set does not depend on this order, since the transitive reduction
// of a DAG is unique.
func Run(g *ddg.Graph, logger zerolog.Logger) (Stats, error) {
	var stats Stats
	n := g.NodeCount()
	if n == 0 {
		return stats, nil
	}

	logger.Info().Msg("applying transitive reduction graph transformation")

	visited := make([]bool, n) // scratch DFS visited-set, cleared and reused across iterations
	var stack []int            // scratch DFS stack, reused across iterations

	for u := 0; u < n; u++ {
		un, err := g.NodeByID(u)
		if err != nil {
			return stats, err
		}
		// Snapshot u's successors before mutating anything: a node's edge
		// list is not mutated mid-DFS (§4.1).
		succEdges := append([]*ddg.Edge(nil), un.Successors()...)

		toRemove := make(map[int]struct{})
		for _, uv := range succEdges {
			v := uv.To

			// DFS from v over outgoing edges, reusing scratch storage.
			for i := range visited {
				visited[i] = false
			}
			stack = stack[:0]
			stack = append(stack, v)
			visited[v] = true

			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				stats.DFSVisits++

				curNode, err := g.NodeByID(cur)
				if err != nil {
					return stats, err
				}
				for _, e := range curNode.Successors() {
					if !visited[e.To] {
						visited[e.To] = true
						stack = append(stack, e.To)
					}
				}

				if cur != v {
					if _, err := g.FindSuccessorEdge(u, cur); err == nil {
						toRemove[cur] = struct{}{}
					}
				}
			}
		}

		for w := range toRemove {
			if err := g.RemoveEdge(u, w); err != nil {
				return stats, err
			}
			stats.EdgesRemoved++
		}
	}

	logger.Info().Int("edges_removed", stats.EdgesRemoved).Msg("transitive reduction complete")

	return stats, nil
}
