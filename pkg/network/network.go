package network

import (
	"fmt"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Node is a single neuron of the network.
type Node struct {
	ID   int
	Type NeuronType
}

// Color returns the display color derived from the node's type.
func (n Node) Color() string { return n.Type.Color() }

// Link is a directed, weighted connection between two nodes. Endpoints are
// node IDs and need not be declared when the link is added; they are checked
// when the graph is built.
type Link struct {
	In     int
	Out    int
	Weight float64
}

// String formats the link as "in -> out (weight)".
func (l Link) String() string {
	return fmt.Sprintf("%d -> %d (%g)", l.In, l.Out, l.Weight)
}

// IsSelfLink reports whether the link starts and ends at the same node.
func (l Link) IsSelfLink() bool { return l.In == l.Out }

// Network is the parsed genome: a set of nodes keyed by ID and an ordered
// list of links.
//
// Nodes are kept in declaration order. Declaring an ID twice replaces the
// earlier node but keeps its original position. Links are never
// deduplicated.
//
// The zero value is not usable - use New to create a valid Network.
type Network struct {
	nodes      *linkedhashmap.Map // int -> Node
	links      []Link
	normalized bool
}

// New creates an empty Network.
func New() *Network {
	return &Network{nodes: linkedhashmap.New()}
}

// AddNode declares a node with the given ID and type.
func (n *Network) AddNode(id int, t NeuronType) {
	n.nodes.Put(id, Node{ID: id, Type: t})
}

// AddLink appends a link from in to out.
func (n *Network) AddLink(in, out int, weight float64) {
	n.links = append(n.links, Link{In: in, Out: out, Weight: weight})
}

// Node returns the node with the given ID, if declared.
func (n *Network) Node(id int) (Node, bool) {
	v, ok := n.nodes.Get(id)
	if !ok {
		return Node{}, false
	}
	return v.(Node), true
}

// HasNode reports whether a node with the given ID is declared.
func (n *Network) HasNode(id int) bool {
	_, ok := n.nodes.Get(id)
	return ok
}

// Nodes returns all nodes in declaration order.
func (n *Network) Nodes() []Node {
	out := make([]Node, 0, n.nodes.Size())
	it := n.nodes.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Node))
	}
	return out
}

// Links returns a copy of all links in insertion order.
func (n *Network) Links() []Link { return slices.Clone(n.links) }

// NodeCount returns the number of declared nodes.
func (n *Network) NodeCount() int { return n.nodes.Size() }

// LinkCount returns the number of links, duplicates included.
func (n *Network) LinkCount() int { return len(n.links) }

// Normalized reports whether link weights have already been rescaled.
func (n *Network) Normalized() bool { return n.normalized }
