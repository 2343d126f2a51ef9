// Package genome reads NEAT plain-text genome files into a [network.Network].
//
// # Format
//
// The reader is line oriented and only looks at two kinds of lines:
//
//	node 1 0 1 1            -> node id=1, neuron type=1 (4th number)
//	gene 1 1 4 -0.73 false  -> link 1 -> 4, weight -0.73 (2nd..4th numbers)
//
// A line containing the word "node" is a node record; otherwise a line
// containing "gene" is a link record. Everything else (genomestart,
// genomeend, trait lines, comments, blank lines) is ignored. Numbers are
// extracted left to right with the pattern [-+]?[0-9]*\.?[0-9]+, so words
// around them do not matter.
//
// # Errors
//
// A node or gene line with fewer than four numbers, or with a decimal where
// an integer is required, is a structural error (code INVALID_GENOME). The
// first such line aborts the read; no partial network is returned.
package genome
