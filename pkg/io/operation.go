package io

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/genomeviz/pkg/digraph"
	errs "github.com/matzehuels/genomeviz/pkg/errors"
)

// Operation names accepted by [Lookup].
const (
	OpGraphML = "GraphML"
	OpJSON    = "JSON"

	// DefaultOperation is used when no operation is requested.
	DefaultOperation = OpGraphML
)

// WriteFunc encodes a graph to w.
type WriteFunc func(g *digraph.Graph, w io.Writer) error

// Operation is a named export format.
type Operation struct {
	Name      string
	Extension string // default file extension, without the dot
	Write     WriteFunc
}

var operations = []Operation{
	{Name: OpGraphML, Extension: "graphml", Write: WriteGraphML},
	{Name: OpJSON, Extension: "json", Write: WriteJSON},
}

// Lookup returns the operation with the given name. Names are
// case-sensitive. An unknown name returns an UNSUPPORTED error.
func Lookup(name string) (Operation, error) {
	for _, op := range operations {
		if op.Name == name {
			return op, nil
		}
	}
	return Operation{}, errs.New(errs.ErrCodeUnsupported, "Unsupported operation requested: %s", name)
}

// Operations returns the supported operation names, default first.
func Operations() []string {
	names := make([]string, len(operations))
	for i, op := range operations {
		names[i] = op.Name
	}
	return names
}

// Export writes g to the file at path and returns the written document.
func (o Operation) Export(g *digraph.Graph, path string) ([]byte, error) {
	return exportFile(g, path, o.Write)
}

// exportFile renders g in memory and only then writes path, so an encoding
// failure leaves no file behind.
func exportFile(g *digraph.Graph, path string, write WriteFunc) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(g, &buf); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
