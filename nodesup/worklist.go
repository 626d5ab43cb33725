package nodesup

// pair is an ordered candidate (i, j) for the superiority worklist.
type pair struct {
	i, j int
}

// worklist is the ordered collection of (i, j) pairs with S[i][j] == 0
// pending processing (spec §3). It is a LIFO stack: push appends, pop
// removes from the back. This matches the original ILPTransformState's
// SuperiorNodesList_, a std::vector used via back()/pop_back(), and is
// required for test reproducibility (§9: "LIFO worklist ... is required
// for test reproducibility against the reference behavior").
type worklist struct {
	items  []pair
	active map[pair]bool // tracks membership so a pair is never queued twice
}

func newWorklist() *worklist {
	return &worklist{active: make(map[pair]bool)}
}

// push enqueues p if it is not already pending. Idempotent.
func (w *worklist) push(p pair) {
	if w.active[p] {
		return
	}
	w.active[p] = true
	w.items = append(w.items, p)
}

// pop removes and returns the most recently pushed pair. ok is false if
// the worklist is empty.
func (w *worklist) pop() (p pair, ok bool) {
	if len(w.items) == 0 {
		return pair{}, false
	}
	last := len(w.items) - 1
	p = w.items[last]
	w.items = w.items[:last]
	delete(w.active, p)
	return p, true
}

func (w *worklist) empty() bool { return len(w.items) == 0 }
