package nodesup

import "math"

// negInf represents "no path exists" in the distance table (spec §3: "If
// no path exists from i to j, D[i][j] = -infinity", pinned to the
// smallest representable int32 as the spec's Open Question Decision
// requires — not the original C++ source's "-1" transcription).
const negInf int32 = math.MinInt32

// initDistance builds the initial N x N distance table (spec §4.2.1).
// It must run after the graph's topological order has been computed.
func (p *Pass) initDistance() error {
	n := p.n
	p.D.Fill(negInf)
	for i := 0; i < n; i++ {
		p.D.Put(i, i, 0)
	}

	for startIdx := 0; startIdx < n; startIdx++ {
		startNode, err := p.g.NodeByTopologicalOrder(startIdx)
		if err != nil {
			return err
		}
		start := startNode.ID()

		for idx := startIdx + 1; idx < n; idx++ {
			toNode, err := p.g.NodeByTopologicalOrder(idx)
			if err != nil {
				return err
			}
			to := toNode.ID()

			currentMax := negInf
			for _, e := range toNode.Predecessors() {
				fromDist := p.D.Get(start, e.From)
				if fromDist == negInf {
					continue // start cannot reach this predecessor
				}
				cand := e.Label + fromDist
				if cand > currentMax {
					currentMax = cand
				}
				if currentMax >= p.maxLatency {
					currentMax = p.maxLatency
					break // saturated; no predecessor can push it higher
				}
			}
			p.D.Put(start, to, currentMax)
		}
	}

	return nil
}

// seedReachability populates every node's recursive successor/predecessor
// bitset from the distance table's pre-existing reachability (D[a][b] !=
// negInf iff a can already reach b via some directed path). It must run
// after initDistance: the transformations that follow (computeSuperiority,
// in particular) only consult the bitsets, not D, to decide whether a pair
// is independent, so any path already present in the DDG before Run was
// called has to be reflected there before initSuperiority seeds the
// worklist.
func (p *Pass) seedReachability() error {
	for a := 0; a < p.n; a++ {
		an, err := p.g.NodeByID(a)
		if err != nil {
			return err
		}
		for b := 0; b < p.n; b++ {
			if a == b || p.D.Get(a, b) == negInf {
				continue
			}
			bn, err := p.g.NodeByID(b)
			if err != nil {
				return err
			}
			an.AddRecursiveSuccessor(b)
			bn.AddRecursivePredecessor(a)
		}
	}
	return nil
}

// updateDistance applies the §4.2.5 two-hop propagation after inserting
// edge (i -> j), and returns every (x, y) pair whose D[x][y] strictly
// increased during the propagation, for the caller to re-evaluate
// superiority on. The direct entry D[i][j], set to 0 first, is not
// included in the returned pairs.
func (p *Pass) updateDistance(i, j int, ni, nj *node) []pair {
	p.D.Put(i, j, 0)

	var touched []pair
	nj.RecursiveSuccessors(func(k int) {
		newDist := min32(p.maxLatency, p.D.Get(j, k))
		old := p.D.Get(i, k)
		if newDist <= old {
			return
		}
		p.D.Put(i, k, newDist)
		touched = append(touched, pair{i, k})

		ni.RecursivePredecessors(func(pr int) {
			cand := min32(p.maxLatency, newDist+p.D.Get(pr, i))
			oldPK := p.D.Get(pr, k)
			if cand > oldPK {
				p.D.Put(pr, k, cand)
				touched = append(touched, pair{pr, k})
			}
		})
	})

	return touched
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
