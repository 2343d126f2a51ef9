// Package io serializes genome graphs to graph-interchange documents.
//
// # Overview
//
// The input is the [digraph.Graph] produced by network.BuildGraph: vertices
// tagged with a "color" string and edges tagged with a normalized "weight".
// Two formats are supported, each registered as a named [Operation]:
//
//   - GraphML (default): the XML interchange format read by Gephi, yEd,
//     Cytoscape and networkx
//   - JSON: a compact {"nodes": [...], "edges": [...]} document
//
// # Operations
//
// Callers select a format by name with [Lookup]. Names are case-sensitive.
// An unknown name returns an UNSUPPORTED error, which the CLI treats as a
// user error (reported, clean exit) rather than a data error:
//
//	op, err := io.Lookup("GraphML")
//	if err != nil {
//	    return err
//	}
//	_, err = op.Export(g, "winner.graphml")
//
// # GraphML Format
//
// Attribute keys are declared once per attribute name and domain, vertex
// keys first, then edge keys, each sorted by name:
//
//	<graphml xmlns="http://graphml.graphdrawing.org/xmlns" ...>
//	  <key id="d0" for="node" attr.name="color" attr.type="string"/>
//	  <key id="d1" for="edge" attr.name="weight" attr.type="double"/>
//	  <graph edgedefault="directed">
//	    <node id="1"><data key="d0">blue</data></node>
//	    <node id="2"><data key="d0">red</data></node>
//	    <edge source="1" target="2"><data key="d1">1.5</data></edge>
//	  </graph>
//	</graphml>
//
// # Output Files
//
// [Operation.Export] renders the whole document in memory before creating
// the output file, so a failed export never leaves a truncated file behind.
package io
