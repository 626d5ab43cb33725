package nodesup

// undefined is the sentinel S[i][j] value for pairs that are not
// candidates for superiority: different instruction types, or
// dependent (i == j, or one is a recursive ancestor of the other).
const undefined int32 = -1

// computeSuperiority evaluates S[i][j] from scratch against the current
// distance table (spec §3, §4.2.2). It returns undefined (-1) for
// same-node, mismatched-type, or dependent pairs; otherwise it returns
// the violating-neighbor count.
func (p *Pass) computeSuperiority(i, j int) int32 {
	if i == j {
		return undefined
	}
	ni, _ := p.g.NodeByID(i)
	nj, _ := p.g.NodeByID(j)
	if ni.InstType() != nj.InstType() {
		return undefined
	}
	// Independent means neither is a recursive ancestor of the other:
	// j must not be reachable from i, and i must not be reachable from j.
	if nj.IsRecursiveSuccessorOf(ni) || ni.IsRecursiveSuccessorOf(nj) {
		return undefined
	}

	var count int32
	for _, e := range ni.Predecessors() {
		if e.Label > p.D.Get(e.From, j) {
			count++
		}
	}
	for _, e := range nj.Successors() {
		if e.Label > p.D.Get(i, e.To) {
			count++
		}
	}

	return count
}

// initSuperiority computes S for every ordered pair and seeds the
// worklist with every pair found to already be superior (spec §4.2.2).
// Pairs are visited in ascending (i, j) order so that, combined with the
// worklist's LIFO pop, the lexicographically largest zero-valued pair is
// processed first (see SPEC_FULL.md "OPEN QUESTION DECISIONS").
func (p *Pass) initSuperiority() {
	for i := 0; i < p.n; i++ {
		for j := 0; j < p.n; j++ {
			s := p.computeSuperiority(i, j)
			p.S.Put(i, j, s)
			if s == 0 {
				p.wl.push(pair{i, j})
			}
		}
	}
}

// recomputeAffected re-evaluates S for every pair whose predecessor- or
// successor-violation count could have changed because some D[x][y]
// strictly increased (spec §4.2.5's tail). Newly-zero pairs are pushed
// onto the worklist.
func (p *Pass) recomputeAffected(touched []pair) {
	for _, t := range touched {
		x, y := t.i, t.j
		xn, _ := p.g.NodeByID(x)
		for _, e := range xn.Predecessors() {
			p.maybeRecompute(e.From, y)
		}
		yn, _ := p.g.NodeByID(y)
		for _, e := range yn.Successors() {
			p.maybeRecompute(x, e.To)
		}
	}
}

// maybeRecompute recomputes S[a][b] if it is currently defined, pushing
// it onto the worklist if it has dropped to zero. S is guaranteed
// non-increasing (spec P6); pairs already undefined stay undefined and
// are skipped.
func (p *Pass) maybeRecompute(a, b int) {
	if a == b {
		return
	}
	if p.S.Get(a, b) == undefined {
		return
	}
	newVal := p.computeSuperiority(a, b)
	p.S.Put(a, b, newVal)
	if newVal == 0 {
		p.wl.push(pair{a, b})
	}
}
