package ddg

import "errors"

// ErrCycleDetected indicates BuildTopologicalOrder found a cycle; a DDG
// must be acyclic (§3: "Topological order ... consistent with the edge
// relation").
var ErrCycleDetected = errors.New("ddg: cycle detected")

// visitState mirrors dfs.VertexState's White/Gray/Black discipline.
type visitState uint8

const (
	white visitState = iota
	gray
	black
)

// BuildTopologicalOrder computes a topological order over g's nodes via
// post-order DFS reversal (ported from dfs.TopologicalSort's algorithm)
// and installs it on g via SetTopologicalOrder. It also returns the order
// directly for callers that want it without a second NodeByTopologicalOrder
// round trip.
func BuildTopologicalOrder(g *Graph) ([]int, error) {
	n := g.NodeCount()
	state := make([]visitState, n)
	order := make([]int, 0, n)

	var visit func(id int) error
	visit = func(id int) error {
		switch state[id] {
		case gray:
			return ErrCycleDetected
		case black:
			return nil
		}
		state[id] = gray
		for _, e := range g.nodes[id].succ {
			if err := visit(e.To); err != nil {
				return err
			}
		}
		state[id] = black
		order = append(order, id)
		return nil
	}

	for id := 0; id < n; id++ {
		if state[id] == white {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	g.SetTopologicalOrder(order)

	return order, nil
}
