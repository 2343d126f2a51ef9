package network

import (
	"github.com/matzehuels/genomeviz/pkg/digraph"
	errs "github.com/matzehuels/genomeviz/pkg/errors"
)

// Attribute keys set on the built graph.
const (
	AttrColor  = "color"
	AttrWeight = "weight"
)

// BuildGraph normalizes the network with [DefaultOffset] and converts it to
// a directed graph. See [Network.BuildGraphWithOffset].
func (n *Network) BuildGraph() (*digraph.Graph, error) {
	return n.BuildGraphWithOffset(DefaultOffset)
}

// BuildGraphWithOffset normalizes link weights and converts the network to a
// directed graph.
//
// Every node becomes a vertex tagged with its color. Every link becomes an
// edge tagged with its normalized weight: a self-link k -> k becomes a
// two-edge cycle through k, any other link a single edge. Links sharing both
// endpoints collapse into one edge carrying the last link's weight.
//
// Weights are normalized only on the first call (or not at all if
// [Network.Normalize] already ran); later calls rebuild the same graph and
// ignore offset.
//
// A link whose endpoint is not a declared node fails the whole build with an
// INCORRECT_LINK error and no graph is returned.
func (n *Network) BuildGraphWithOffset(offset float64) (*digraph.Graph, error) {
	if !n.normalized {
		if err := n.Normalize(offset); err != nil {
			return nil, err
		}
	}

	g := digraph.New()
	for _, node := range n.Nodes() {
		if err := g.AddNode(digraph.Node{
			ID:    node.ID,
			Attrs: digraph.Attrs{AttrColor: node.Color()},
		}); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "node %d", node.ID)
		}
	}

	for i, l := range n.links {
		if !n.HasNode(l.In) || !n.HasNode(l.Out) {
			return nil, errs.New(errs.ErrCodeIncorrectLink,
				"incorrect link #%d detected: %d -> %d references an undeclared node", i, l.In, l.Out)
		}
		attrs := digraph.Attrs{AttrWeight: l.Weight}
		var err error
		if l.IsSelfLink() {
			err = g.AddCycle([]int{l.In, l.In}, attrs)
		} else {
			err = g.AddEdge(l.In, l.Out, attrs)
		}
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "link %s", l)
		}
	}

	return g, nil
}
