package io

import (
	"encoding/xml"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/matzehuels/genomeviz/pkg/digraph"
)

const (
	graphmlNS     = "http://graphml.graphdrawing.org/xmlns"
	graphmlXSI    = "http://www.w3.org/2001/XMLSchema-instance"
	graphmlSchema = "http://graphml.graphdrawing.org/xmlns http://graphml.graphdrawing.org/xmlns/1.0/graphml.xsd"
)

type graphmlDoc struct {
	XMLName        xml.Name     `xml:"graphml"`
	Xmlns          string       `xml:"xmlns,attr"`
	XmlnsXSI       string       `xml:"xmlns:xsi,attr"`
	SchemaLocation string       `xml:"xsi:schemaLocation,attr"`
	Keys           []graphmlKey `xml:"key"`
	Graph          graphmlGraph `xml:"graph"`
}

type graphmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphmlGraph struct {
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphmlNode `xml:"node"`
	Edges       []graphmlEdge `xml:"edge"`
}

type graphmlNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphmlData `xml:"data"`
}

type graphmlEdge struct {
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphmlData `xml:"data"`
}

type graphmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// keyTable assigns GraphML key ids ("d0", "d1", ...) to attribute names.
type keyTable struct {
	keys []graphmlKey
	ids  map[string]string // domain + "/" + name -> id
}

func (kt *keyTable) declare(domain string, attrs map[string]string) {
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		id := fmt.Sprintf("d%d", len(kt.keys))
		kt.keys = append(kt.keys, graphmlKey{ID: id, For: domain, AttrName: name, AttrType: attrs[name]})
		kt.ids[domain+"/"+name] = id
	}
}

func (kt *keyTable) data(domain string, attrs digraph.Attrs) []graphmlData {
	var out []graphmlData
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		id, ok := kt.ids[domain+"/"+name]
		if !ok {
			continue
		}
		out = append(out, graphmlData{Key: id, Value: formatValue(attrs[name])})
	}
	return out
}

// WriteGraphML encodes g as a GraphML document and writes it to w.
// Vertices are written in insertion order and edges grouped by source
// vertex, so identical graphs always produce identical documents.
//
// Attribute values of type string, bool, int and float64 are declared with
// their GraphML type. Values of any other type are skipped.
func WriteGraphML(g *digraph.Graph, w io.Writer) error {
	nodes := g.Nodes()
	edges := g.Edges()

	nodeTypes := make(map[string]string)
	for _, n := range nodes {
		collectTypes(nodeTypes, n.Attrs)
	}
	edgeTypes := make(map[string]string)
	for _, e := range edges {
		collectTypes(edgeTypes, e.Attrs)
	}

	kt := &keyTable{ids: make(map[string]string)}
	kt.declare("node", nodeTypes)
	kt.declare("edge", edgeTypes)

	doc := graphmlDoc{
		Xmlns:          graphmlNS,
		XmlnsXSI:       graphmlXSI,
		SchemaLocation: graphmlSchema,
		Keys:           kt.keys,
		Graph: graphmlGraph{
			EdgeDefault: "directed",
			Nodes:       make([]graphmlNode, len(nodes)),
			Edges:       make([]graphmlEdge, len(edges)),
		},
	}
	for i, n := range nodes {
		doc.Graph.Nodes[i] = graphmlNode{ID: strconv.Itoa(n.ID), Data: kt.data("node", n.Attrs)}
	}
	for i, e := range edges {
		doc.Graph.Edges[i] = graphmlEdge{
			Source: strconv.Itoa(e.From),
			Target: strconv.Itoa(e.To),
			Data:   kt.data("edge", e.Attrs),
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write trailer: %w", err)
	}
	return nil
}

// ExportGraphML writes g to a GraphML file at path.
// This is a convenience wrapper around [WriteGraphML] for file-based output.
func ExportGraphML(g *digraph.Graph, path string) error {
	_, err := exportFile(g, path, WriteGraphML)
	return err
}

// collectTypes records the GraphML type of every supported attribute. The
// first type seen for a name wins.
func collectTypes(types map[string]string, attrs digraph.Attrs) {
	for name, v := range attrs {
		if _, ok := types[name]; ok {
			continue
		}
		if t := graphmlType(v); t != "" {
			types[name] = t
		}
	}
}

func graphmlType(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case int:
		return "long"
	case float64:
		return "double"
	default:
		return ""
	}
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
