// Package network models a NEAT genome as typed nodes and weighted links,
// and turns it into a colored, weighted directed graph.
//
// # Lifecycle
//
// A [Network] is filled incrementally while a genome file is scanned, then
// consumed by [Network.BuildGraph]:
//
//	net := network.New()
//	net.AddNode(1, network.Input)
//	net.AddNode(2, network.Output)
//	net.AddLink(1, 2, 3.0)
//	g, err := net.BuildGraph()
//
// # Weight Normalization
//
// Building a graph first rescales all link weights with [Network.Normalize],
// in two passes: one scan for the global minimum and maximum, then one
// rewrite. The result lies in [offset, +Inf), which makes weights usable as
// edge thickness. The divisor is |min| + max, not max - min.
//
// # Colors
//
// Vertices carry a "color" attribute derived from the node's [NeuronType]:
// hidden is white, input blue, output red and bias yellow.
//
// # Errors
//
// All failures are data errors from package errors: INCORRECT_LINK when a
// link points at an undeclared node and DEGENERATE_WEIGHTS when weights
// cannot be rescaled. Neither produces a partial graph.
package network
