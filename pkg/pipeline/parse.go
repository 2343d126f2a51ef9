package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/genomeviz/pkg/genome"
	"github.com/matzehuels/genomeviz/pkg/network"
	"github.com/matzehuels/genomeviz/pkg/observability"
)

// Parse reads the genome file at path into a network.
func Parse(ctx context.Context, path string) (*network.Network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, path)
	start := time.Now()

	net, err := genome.LoadFile(path)
	if err != nil {
		hooks.OnParseComplete(ctx, path, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnParseComplete(ctx, path, net.NodeCount(), net.LinkCount(), time.Since(start), nil)
	return net, nil
}
