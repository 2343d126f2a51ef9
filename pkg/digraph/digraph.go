package digraph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a vertex with the
	// same ID already exists in the graph. Vertex IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] and [Graph.AddCycle]
	// when the source vertex does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] and [Graph.AddCycle]
	// when the target vertex does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrEmptyCycle is returned by [Graph.AddCycle] when no vertices are given.
	ErrEmptyCycle = errors.New("cycle must contain at least one node")
)

// Attrs stores arbitrary key-value attributes attached to vertices or edges.
// Exporters write every attribute they recognize (color on vertices, weight
// on edges). Attrs maps are never nil once stored in a Graph.
type Attrs map[string]any

// Node is a graph vertex identified by an integer ID.
type Node struct {
	ID    int
	Attrs Attrs
}

// Edge is a directed connection From -> To.
//
// Key distinguishes parallel edges between the same ordered pair. Plain edges
// added with [Graph.AddEdge] always use key 0, so at most one of them survives
// per ordered pair. [Graph.AddCycle] assigns increasing keys when its walk
// repeats a pair, which is how a two-step cycle through a single vertex keeps
// both of its edges.
type Edge struct {
	From  int
	To    int
	Key   int
	Attrs Attrs
}

type edgeKey struct {
	from, to, key int
}

// Graph is a directed graph with attributed vertices and edges.
//
// Vertices are reported in insertion order. Edges are reported grouped by
// source vertex (in vertex insertion order) and, within a source, in the
// order each edge was first added. Overwriting an edge keeps its position.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes    map[int]*Node
	order    []int
	edges    map[edgeKey]*Edge
	outgoing map[int][]edgeKey // source -> edge keys in first-insertion order
	incoming map[int][]int     // target -> distinct source IDs
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[int]*Node),
		edges:    make(map[edgeKey]*Edge),
		outgoing: make(map[int][]edgeKey),
		incoming: make(map[int][]int),
	}
}

// AddNode adds a vertex to the graph. Returns ErrDuplicateNodeID if a vertex
// with the same ID already exists. The node's Attrs are copied, and
// initialized to an empty map if nil.
func (g *Graph) AddNode(n Node) error {
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	n.Attrs = cloneAttrs(n.Attrs)
	g.nodes[n.ID] = &n
	g.order = append(g.order, n.ID)
	return nil
}

// AddEdge adds the directed edge from -> to with the given attributes.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if either endpoint is
// missing.
//
// If an edge from -> to already exists its attributes are replaced: the
// graph holds at most one plain edge per ordered pair, carrying whichever
// attributes were written last.
func (g *Graph) AddEdge(from, to int, attrs Attrs) error {
	if err := g.checkEndpoints(from, to); err != nil {
		return err
	}
	g.putEdge(edgeKey{from: from, to: to}, attrs)
	return nil
}

// AddCycle adds the closed walk ids[0] -> ids[1] -> ... -> ids[n-1] -> ids[0],
// tagging every edge with attrs. All vertices must exist; the graph is left
// unchanged if any is missing.
//
// A pair repeated inside one walk becomes a parallel edge with the next free
// key, so AddCycle([]int{k, k}, attrs) stores two k -> k edges (keys 0 and 1)
// rather than collapsing them into a single reflexive edge.
func (g *Graph) AddCycle(ids []int, attrs Attrs) error {
	if len(ids) == 0 {
		return ErrEmptyCycle
	}
	for i, from := range ids {
		if err := g.checkEndpoints(from, ids[(i+1)%len(ids)]); err != nil {
			return err
		}
	}

	seen := make(map[edgeKey]int, len(ids))
	for i, from := range ids {
		to := ids[(i+1)%len(ids)]
		pair := edgeKey{from: from, to: to}
		key := seen[pair]
		seen[pair] = key + 1
		g.putEdge(edgeKey{from: from, to: to, key: key}, attrs)
	}
	return nil
}

func (g *Graph) checkEndpoints(from, to int) error {
	if _, ok := g.nodes[from]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrUnknownTargetNode
	}
	return nil
}

func (g *Graph) putEdge(k edgeKey, attrs Attrs) {
	if e, ok := g.edges[k]; ok {
		e.Attrs = cloneAttrs(attrs)
		return
	}
	g.edges[k] = &Edge{From: k.from, To: k.to, Key: k.key, Attrs: cloneAttrs(attrs)}
	g.outgoing[k.from] = append(g.outgoing[k.from], k)
	if !slices.Contains(g.incoming[k.to], k.from) {
		g.incoming[k.to] = append(g.incoming[k.to], k.from)
	}
}

func cloneAttrs(a Attrs) Attrs {
	if a == nil {
		return Attrs{}
	}
	return maps.Clone(a)
}

// Node returns the vertex with the given ID, if present.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether a vertex with the given ID exists.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all vertices in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, id := range g.order {
		out[i] = g.nodes[id]
	}
	return out
}

// Edges returns all edges, grouped by source vertex in vertex insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, id := range g.order {
		for _, k := range g.outgoing[id] {
			out = append(out, *g.edges[k])
		}
	}
	return out
}

// Edge returns the plain (key 0) edge from -> to, if present.
func (g *Graph) Edge(from, to int) (Edge, bool) {
	e, ok := g.edges[edgeKey{from: from, to: to}]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// EdgesBetween returns every edge from -> to, ordered by key.
func (g *Graph) EdgesBetween(from, to int) []Edge {
	var out []Edge
	for _, k := range g.outgoing[from] {
		if k.to == to {
			out = append(out, *g.edges[k])
		}
	}
	slices.SortFunc(out, func(a, b Edge) int { return a.Key - b.Key })
	return out
}

// NodeCount returns the number of vertices.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, counting parallel edges separately.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Successors returns the distinct targets of edges leaving id, in the order
// they were first connected.
func (g *Graph) Successors(id int) []int {
	var out []int
	for _, k := range g.outgoing[id] {
		if !slices.Contains(out, k.to) {
			out = append(out, k.to)
		}
	}
	return out
}

// Predecessors returns the distinct sources of edges entering id.
func (g *Graph) Predecessors(id int) []int { return slices.Clone(g.incoming[id]) }

// OutDegree returns the number of edges leaving id, parallel edges included.
func (g *Graph) OutDegree(id int) int { return len(g.outgoing[id]) }
