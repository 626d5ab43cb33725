package ddg

// Node is a dense-id instruction node in a Graph. Node values are never
// copied out of the Graph's arena by callers; they are accessed through
// NodeByID/NodeByTopologicalOrder and mutated only through Graph methods.
type Node struct {
	id       int
	instType InstType
	succ     []*Edge
	pred     []*Edge
	recSucc  bitset // recursive (reflexive-transitive) successor set
	recPred  bitset // recursive (reflexive-transitive) predecessor set
}

// ID returns the node's dense id in [0, N).
func (n *Node) ID() int { return n.id }

// InstType returns the node's instruction/issue type.
func (n *Node) InstType() InstType { return n.instType }

// Successors returns the node's outgoing edges. The returned slice must
// not be mutated by the caller; it is safe to iterate as long as the
// graph is not concurrently mutated (§5: the DDG is not thread-safe).
func (n *Node) Successors() []*Edge { return n.succ }

// Predecessors returns the node's incoming edges, under the same aliasing
// contract as Successors.
func (n *Node) Predecessors() []*Edge { return n.pred }

// IsRecursiveSuccessorOf reports whether n is in other's recursive
// successor set, i.e. other can reach n by zero or more successor edges.
func (n *Node) IsRecursiveSuccessorOf(other *Node) bool {
	return other.recSucc.has(n.id)
}

// IsRecursivePredecessorOf reports whether n is in other's recursive
// predecessor set, i.e. other can be reached from n by zero or more
// successor edges.
func (n *Node) IsRecursivePredecessorOf(other *Node) bool {
	return other.recPred.has(n.id)
}

// RecursiveSuccessors invokes fn for every node in n's recursive
// (reflexive-transitive) successor set, in ascending id order.
func (n *Node) RecursiveSuccessors(fn func(id int)) { n.recSucc.forEach(fn) }

// RecursivePredecessors invokes fn for every node in n's recursive
// (reflexive-transitive) predecessor set, in ascending id order.
func (n *Node) RecursivePredecessors(fn func(id int)) { n.recPred.forEach(fn) }

// AddRecursiveSuccessor idempotently adds id to n's recursive successor set.
func (n *Node) AddRecursiveSuccessor(id int) { n.recSucc.set(id) }

// AddRecursivePredecessor idempotently adds id to n's recursive predecessor set.
func (n *Node) AddRecursivePredecessor(id int) { n.recPred.set(id) }

// Graph is the arena-backed Data Dependence Graph: a flat slice of nodes
// referenced by integer id, with edges owned by their endpoints' adjacency
// slices. Per §5 the Graph is single-threaded and must not be shared
// across goroutines; unlike the teacher's thread-safe core.Graph, no
// mutex guards these fields (see DESIGN.md).
type Graph struct {
	nodes      []Node
	maxLatency int32
	topoOrder  []int // node ids in topological order; empty until computed
}

// NewGraph allocates a Graph with n nodes, ids 0..n-1, all of the given
// instruction types. types must have length n.
func NewGraph(types []InstType) *Graph {
	nodes := make([]Node, len(types))
	for i := range nodes {
		nodes[i] = Node{
			id:       i,
			instType: types[i],
			recSucc:  newBitset(len(types)),
			recPred:  newBitset(len(types)),
		}
		nodes[i].recSucc.set(i) // reflexive: every node is its own 0-hop successor
		nodes[i].recPred.set(i)
	}
	return &Graph{nodes: nodes}
}

// NodeCount returns the number of nodes in the graph. Stable during a
// transformation.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// MaxLatency returns the global saturation cap used by distance
// computations. It is the largest label() passed to CreateEdge so far,
// or 0 if no edges have been created.
func (g *Graph) MaxLatency() int32 { return g.maxLatency }

// NodeByID returns the node with the given dense id.
func (g *Graph) NodeByID(id int) (*Node, error) {
	if id < 0 || id >= len(g.nodes) {
		return nil, ErrNodeNotFound
	}
	return &g.nodes[id], nil
}

// SetTopologicalOrder installs a precomputed topological order (see
// BuildTopologicalOrder). order must be a permutation of [0, N).
func (g *Graph) SetTopologicalOrder(order []int) {
	g.topoOrder = order
}

// NodeByTopologicalOrder returns the k-th node in the graph's topological
// order. SetTopologicalOrder (or BuildTopologicalOrder) must have been
// called first.
func (g *Graph) NodeByTopologicalOrder(k int) (*Node, error) {
	if k < 0 || k >= len(g.topoOrder) {
		return nil, ErrTopoOutOfRange
	}
	return &g.nodes[g.topoOrder[k]], nil
}

// CreateEdge inserts a new edge from -> to with the given latency label
// and kind, and returns it. The caller guarantees (from, to) is not
// already connected; CreateEdge returns ErrEdgeExists otherwise.
func (g *Graph) CreateEdge(from, to int, label int32, kind EdgeKind) (*Edge, error) {
	if from < 0 || from >= len(g.nodes) || to < 0 || to >= len(g.nodes) {
		return nil, ErrNodeNotFound
	}
	if from == to {
		return nil, ErrSelfLoop
	}
	if label < 0 {
		return nil, ErrNegativeLabel
	}
	if _, err := g.FindSuccessorEdge(from, to); err == nil {
		return nil, ErrEdgeExists
	}

	e := &Edge{From: from, To: to, Label: label, Kind: kind}
	g.nodes[from].succ = append(g.nodes[from].succ, e)
	g.nodes[to].pred = append(g.nodes[to].pred, e)
	if label > g.maxLatency {
		g.maxLatency = label
	}

	return e, nil
}

// FindSuccessorEdge returns the edge from -> to, if any. Complexity
// O(deg(from)), matching the contract in spec §6.
func (g *Graph) FindSuccessorEdge(from, to int) (*Edge, error) {
	if from < 0 || from >= len(g.nodes) {
		return nil, ErrNodeNotFound
	}
	for _, e := range g.nodes[from].succ {
		if e.To == to {
			return e, nil
		}
	}
	return nil, ErrEdgeNotFound
}

// RemoveEdge deletes the edge from -> to, if present, from both
// endpoints' adjacency slices. It does not touch reachability sets (§4.1:
// "reachability is unchanged by removing a redundant edge").
func (g *Graph) RemoveEdge(from, to int) error {
	if from < 0 || from >= len(g.nodes) || to < 0 || to >= len(g.nodes) {
		return ErrNodeNotFound
	}
	fn := &g.nodes[from]
	idx := -1
	for i, e := range fn.succ {
		if e.To == to {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrEdgeNotFound
	}
	fn.succ = append(fn.succ[:idx], fn.succ[idx+1:]...)

	tn := &g.nodes[to]
	for i, e := range tn.pred {
		if e.From == from {
			tn.pred = append(tn.pred[:i], tn.pred[i+1:]...)
			break
		}
	}

	return nil
}
