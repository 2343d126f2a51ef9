package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/genomeviz/pkg/digraph"
	"github.com/matzehuels/genomeviz/pkg/network"
	"github.com/matzehuels/genomeviz/pkg/observability"
)

// Build normalizes the link weights of net with offset and returns the
// directed graph. A network that was already normalized keeps its weights.
func Build(ctx context.Context, net *network.Network, offset float64) (*digraph.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, net.NodeCount(), net.LinkCount())
	start := time.Now()

	g, err := net.BuildGraphWithOffset(offset)
	if err != nil {
		hooks.OnBuildComplete(ctx, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnBuildComplete(ctx, g.EdgeCount(), time.Since(start), nil)
	return g, nil
}
