package genome

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	errs "github.com/matzehuels/genomeviz/pkg/errors"
	"github.com/matzehuels/genomeviz/pkg/network"
)

// Line markers.
const (
	nodeMarker = "node"
	geneMarker = "gene"
)

// minTokens is the number of numeric tokens both record kinds need.
const minTokens = 4

var tokenRe = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+`)

// Kind identifies the type of a parsed record.
type Kind int

const (
	// KindNode is a node declaration.
	KindNode Kind = iota + 1
	// KindLink is a gene, i.e. a weighted link between two nodes.
	KindLink
)

// String returns the line marker for k.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return nodeMarker
	case KindLink:
		return geneMarker
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Record is one parsed node or gene line. Only the fields matching Kind are
// set.
type Record struct {
	Kind Kind

	// KindNode
	NodeID     int
	NeuronType network.NeuronType

	// KindLink
	In     int
	Out    int
	Weight float64
}

// Apply adds the record to net.
func (r Record) Apply(net *network.Network) {
	switch r.Kind {
	case KindNode:
		net.AddNode(r.NodeID, r.NeuronType)
	case KindLink:
		net.AddLink(r.In, r.Out, r.Weight)
	}
}

// Tokens returns the numeric substrings of line in order of appearance.
func Tokens(line string) []string {
	return tokenRe.FindAllString(line, -1)
}

// ParseLine classifies a single line. It returns ok == false for lines that
// are neither node nor gene lines. The node check runs first, so a line
// containing both markers is a node record.
func ParseLine(line string) (rec Record, ok bool, err error) {
	switch {
	case strings.Contains(line, nodeMarker):
		rec, err = parseNode(line)
	case strings.Contains(line, geneMarker):
		rec, err = parseGene(line)
	default:
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

// parseNode reads [id, _, _, type, ...]. Every number on a node line must
// be an integer, not just the two that are kept.
func parseNode(line string) (Record, error) {
	toks, err := requireTokens(line, nodeMarker)
	if err != nil {
		return Record{}, err
	}
	ints := make([]int, len(toks))
	for i := range ints {
		v, err := strconv.Atoi(toks[i])
		if err != nil {
			return Record{}, errs.Wrap(errs.ErrCodeInvalidGenome, err,
				"node token %d %q is not an integer", i, toks[i])
		}
		ints[i] = v
	}
	return Record{
		Kind:       KindNode,
		NodeID:     ints[0],
		NeuronType: network.NeuronType(ints[3]),
	}, nil
}

// parseGene reads [_, in, out, weight, ...].
func parseGene(line string) (Record, error) {
	toks, err := requireTokens(line, geneMarker)
	if err != nil {
		return Record{}, err
	}
	in, err := strconv.Atoi(toks[1])
	if err != nil {
		return Record{}, errs.Wrap(errs.ErrCodeInvalidGenome, err, "gene input node %q is not an integer", toks[1])
	}
	out, err := strconv.Atoi(toks[2])
	if err != nil {
		return Record{}, errs.Wrap(errs.ErrCodeInvalidGenome, err, "gene output node %q is not an integer", toks[2])
	}
	w, err := strconv.ParseFloat(toks[3], 64)
	if stderrors.Is(err, strconv.ErrRange) {
		return Record{}, errs.Wrap(errs.ErrCodeInvalidGenome, err, "gene weight %.20q... overflows float64", toks[3])
	}
	if err != nil {
		return Record{}, errs.Wrap(errs.ErrCodeInvalidGenome, err, "gene weight %q is not a number", toks[3])
	}
	return Record{Kind: KindLink, In: in, Out: out, Weight: w}, nil
}

func requireTokens(line, marker string) ([]string, error) {
	toks := Tokens(line)
	if len(toks) < minTokens {
		return nil, errs.New(errs.ErrCodeInvalidGenome,
			"%s line has %d numeric fields, need at least %d", marker, len(toks), minTokens)
	}
	return toks, nil
}
