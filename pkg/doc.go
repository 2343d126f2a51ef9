// Package pkg provides the libraries behind genomeviz, a converter from
// neuroevolution genome files to graph documents.
//
// # Overview
//
// A genome file describes one evolved network: "node" lines declare neurons
// and "gene" lines declare weighted connections. genomeviz reads those lines,
// builds the network, rescales the weights into a positive range and exports
// the resulting directed graph for tools such as Gephi, yEd or networkx.
//
// # Architecture
//
// The typical data flow through genomeviz:
//
//	genome file
//	     ↓
//	[genome] package (line classification, numeric tokens)
//	     ↓
//	[network] package (nodes, links, weight normalization)
//	     ↓
//	[digraph] package (attributed directed graph)
//	     ↓
//	[io] package (GraphML or JSON)
//
// [genome] turns lines into records, [network] holds and normalizes them,
// [digraph] is the exported graph and [io] writes it.
// [pipeline] runs the three stages with logging and timing, and
// [observability] lets callers subscribe to stage events. [errors] defines
// the coded errors shared by every stage.
//
// # Quick Start
//
//	net, err := genome.LoadFile("winner.genome")
//	if err != nil {
//	    return err
//	}
//	g, err := net.BuildGraph()
//	if err != nil {
//	    return err
//	}
//	return io.ExportGraphML(g, "winner.graphml")
//
// # Testing
//
//	go test ./pkg/...         # All tests
//	go test -run Example ./... # Examples only
//
// [genome]: https://pkg.go.dev/github.com/matzehuels/genomeviz/pkg/genome
// [network]: https://pkg.go.dev/github.com/matzehuels/genomeviz/pkg/network
// [digraph]: https://pkg.go.dev/github.com/matzehuels/genomeviz/pkg/digraph
// [io]: https://pkg.go.dev/github.com/matzehuels/genomeviz/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/genomeviz/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/genomeviz/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/genomeviz/pkg/errors
package pkg
