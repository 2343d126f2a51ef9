package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/genomeviz/pkg/digraph"
	gio "github.com/matzehuels/genomeviz/pkg/io"
	"github.com/matzehuels/genomeviz/pkg/observability"
)

// Export encodes g with the named operation and returns the document.
// An unknown operation returns an UNSUPPORTED error.
func Export(ctx context.Context, g *digraph.Graph, operation string) ([]byte, error) {
	return export(ctx, g, operation, "")
}

// ExportFile encodes g with the named operation and writes it to path.
// Nothing is written if encoding fails.
func ExportFile(ctx context.Context, g *digraph.Graph, operation, path string) ([]byte, error) {
	return export(ctx, g, operation, path)
}

func export(ctx context.Context, g *digraph.Graph, operation, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	op, err := gio.Lookup(operation)
	if err != nil {
		return nil, err
	}

	dest := path
	if dest == "" {
		dest = "-"
	}
	hooks := observability.Pipeline()
	hooks.OnExportStart(ctx, op.Name, dest)
	start := time.Now()

	var doc []byte
	if path == "" {
		var buf bytes.Buffer
		err = op.Write(g, &buf)
		doc = buf.Bytes()
	} else {
		doc, err = op.Export(g, path)
	}
	if err != nil {
		err = fmt.Errorf("%s export: %w", op.Name, err)
		hooks.OnExportComplete(ctx, op.Name, dest, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnExportComplete(ctx, op.Name, dest, len(doc), time.Since(start), nil)
	return doc, nil
}
