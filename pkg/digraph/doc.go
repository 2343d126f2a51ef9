// Package digraph provides the attributed directed graph that genomeviz
// exports.
//
// # Overview
//
// A [Graph] holds integer-keyed vertices and directed edges, each carrying a
// free-form [Attrs] map. The network model tags vertices with a "color" and
// edges with a "weight"; exporters in package io serialize both.
//
// # Edge Semantics
//
// The edge set behaves like a simple directed graph: [Graph.AddEdge] keeps at
// most one edge per ordered pair and a later write replaces the attributes of
// an earlier one. The only exception is [Graph.AddCycle], which numbers
// repeated pairs inside its walk so that a two-step cycle through a single
// vertex is stored as two parallel self-edges:
//
//	g := digraph.New()
//	g.AddNode(digraph.Node{ID: 7})
//	g.AddCycle([]int{7, 7}, digraph.Attrs{"weight": 1.0})
//	len(g.EdgesBetween(7, 7)) // 2
//
// # Ordering
//
// Iteration order is deterministic: vertices come back in insertion order,
// edges grouped by source vertex and then by first insertion. Exported
// documents are therefore byte-for-byte reproducible.
package digraph
