package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/genomeviz/pkg/digraph"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID    int           `json:"id"`
	Attrs digraph.Attrs `json:"attrs,omitempty"`
}

type edge struct {
	From  int           `json:"from"`
	To    int           `json:"to"`
	Key   int           `json:"key,omitempty"`
	Attrs digraph.Attrs `json:"attrs,omitempty"`
}

// WriteJSON encodes g as JSON and writes it to w.
// The output includes all vertices and edges with their attributes. The
// parallel-edge key is only written for the second edge of a self-link
// cycle and later.
func WriteJSON(g *digraph.Graph, w io.Writer) error {
	nodes := g.Nodes()
	edges := g.Edges()
	out := graph{
		Nodes: make([]node, len(nodes)),
		Edges: make([]edge, len(edges)),
	}

	for i, n := range nodes {
		out.Nodes[i] = node{ID: n.ID, Attrs: n.Attrs}
	}
	for i, e := range edges {
		out.Edges[i] = edge{From: e.From, To: e.To, Key: e.Key, Attrs: e.Attrs}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *digraph.Graph, path string) error {
	_, err := exportFile(g, path, WriteJSON)
	return err
}
