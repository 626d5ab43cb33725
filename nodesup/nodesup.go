// Package nodesup implements the Static Node-Superiority ILP Transformation
// (spec §4.2): it detects independent, same-instruction-type node pairs
// (i, j) for which j can be shown never to be scheduled better than i, and
// commits that ordering by inserting a zero-latency edge i -> j.
//
// Run owns the distance table, superiority matrix, and worklist for the
// duration of a single call; nothing is retained across invocations (spec
// §5: "scratch buffers ... are owned by the transformation instance and
// released when it returns").
package nodesup

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ddgtrans/ddg"
	"github.com/katalvlaran/ddgtrans/matrix"
)

// node is a local alias kept for readability in this package's call sites.
type node = ddg.Node

// Stats reports what a Run call did, beyond the {edges_added,
// edges_removed, resource_edges_added} required by spec §4.2: pairs
// considered/discarded and distance-table touches are useful telemetry a
// scheduler harness can log (see SPEC_FULL.md "SUPPLEMENTED FEATURES").
type Stats struct {
	EdgesAdded         int
	EdgesRemoved       int
	ResourceEdgesAdded int
	PairsConsidered    int
	PairsStale         int
	DistanceUpdates    int
}

// Pass holds the state owned by one NSUP run: the DDG being transformed,
// its node count and max latency, the distance table, the superiority
// matrix, and the worklist. A Pass is constructed fresh by Run and
// discarded when Run returns.
type Pass struct {
	g          *ddg.Graph
	n          int
	maxLatency int32
	D          *matrix.IntMatrix
	S          *matrix.IntMatrix
	wl         *worklist
}

// Run applies the Node-Superiority ILP Transformation to g in place and
// returns statistics describing what changed.
//
// Per spec §5, N^2 int32 cells are allocated for each of D and S; callers
// should not invoke Run on graphs with more than a few hundred nodes (at
// N=10,000 this is already ~800MB). Run performs no size check itself —
// that decision belongs to the caller (spec §5: "Callers decide whether
// to skip NSUP on oversized regions").
func Run(g *ddg.Graph, logger zerolog.Logger) (Stats, error) {
	var stats Stats
	n := g.NodeCount()
	if n <= 1 {
		return stats, nil
	}

	if _, err := ddg.BuildTopologicalOrder(g); err != nil {
		return stats, err
	}

	D, err := matrix.NewIntMatrix(n, n, negInf)
	if err != nil {
		return stats, err
	}
	S, err := matrix.NewIntMatrix(n, n, undefined)
	if err != nil {
		return stats, err
	}

	p := &Pass{
		g:          g,
		n:          n,
		maxLatency: g.MaxLatency(),
		D:          D,
		S:          S,
		wl:         newWorklist(),
	}

	if err := p.initDistance(); err != nil {
		return stats, err
	}
	if err := p.seedReachability(); err != nil {
		return stats, err
	}
	p.initSuperiority()

	logger.Debug().Int("ready_pairs", len(p.wl.items)).Msg("node-superiority worklist seeded")

	for {
		pr, ok := p.wl.pop()
		if !ok {
			break
		}
		i, j := pr.i, pr.j
		stats.PairsConsidered++

		ni, err := g.NodeByID(i)
		if err != nil {
			return stats, err
		}
		nj, err := g.NodeByID(j)
		if err != nil {
			return stats, err
		}

		// Recheck independence: a prior iteration may have made i, j
		// dependent since this pair was queued (spec §4.2.3, §4.2.8's
		// ready -> stale transition).
		if i == j || nj.IsRecursiveSuccessorOf(ni) || ni.IsRecursiveSuccessorOf(nj) {
			stats.PairsStale++
			logger.Debug().Int("i", i).Int("j", j).Msg("discarding stale superiority pair")
			continue
		}

		if _, err := g.CreateEdge(i, j, 0, ddg.OTHER); err != nil {
			return stats, err
		}
		stats.EdgesAdded++

		stats.ResourceEdgesAdded += addNecessaryResourceEdges(g, i, j)

		p.updateReachability(i, j, ni, nj)

		touched := p.updateDistance(i, j, ni, nj)
		stats.DistanceUpdates += len(touched)

		p.recomputeAffected(touched)

		// S[i][j] itself is recomputed last; it will resolve to
		// undefined now that i, j are dependent (spec §4.2.5: "it
		// remains -1, which is expected").
		p.S.Put(i, j, p.computeSuperiority(i, j))

		// §4.2.7 redundant-edge removal: the spec permits skipping this
		// optional cleanup (statistics must then report edges_removed =
		// 0), and the original reference stubs it out entirely
		// (ILPTransformState::RemoveRedundantEdges is a no-op). See
		// DESIGN.md for why this repo does the same rather than
		// implement the ambiguously-specified removal condition.
	}

	logger.Info().
		Int("edges_added", stats.EdgesAdded).
		Int("pairs_considered", stats.PairsConsidered).
		Int("pairs_stale", stats.PairsStale).
		Msg("node-superiority transformation complete")

	return stats, nil
}

// updateReachability performs the §4.2.4 local two-hop closure after
// inserting edge (i -> j): i gains j as a recursive successor (and
// symmetrically for j), and every predecessor of i is linked to every
// successor of j that it could not already reach.
func (p *Pass) updateReachability(i, j int, ni, nj *node) {
	ni.AddRecursiveSuccessor(j)
	nj.AddRecursivePredecessor(i)

	for _, pe := range ni.Predecessors() {
		pn, err := p.g.NodeByID(pe.From)
		if err != nil {
			continue
		}
		for _, se := range nj.Successors() {
			qn, err := p.g.NodeByID(se.To)
			if err != nil {
				continue
			}
			if !qn.IsRecursiveSuccessorOf(pn) {
				pn.AddRecursiveSuccessor(qn.ID())
				qn.AddRecursivePredecessor(pn.ID())
			}
		}
	}
}

// addNecessaryResourceEdges is the §4.2.6 resource-edge insertion stub.
// Resource-reservation semantics are out of scope for this subsystem
// (spec §1 Non-goals); the original ILPTransformState::AddNecessaryResourceEdges
// is likewise an empty function. It always reports 0 edges added.
func addNecessaryResourceEdges(_ *ddg.Graph, _, _ int) int {
	return 0
}
