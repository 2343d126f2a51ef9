package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Runner executes the genome pipeline and reports progress to its logger.
//
// The Runner is stateless except for the logger: it doesn't store pipeline
// results, so multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → build → export pipeline.
//
// Options are validated before the genome file is opened, so a request for an
// unsupported operation fails without reading input or writing output. Errors
// from the stages keep their codes from package errors.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	net, err := Parse(ctx, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Network = net
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.NodeCount = net.NodeCount()
	result.Stats.LinkCount = net.LinkCount()

	opts.Logger.Info("parsed genome",
		"nodes", net.NodeCount(),
		"links", net.LinkCount(),
		"duration", result.Stats.ParseTime)

	// Stage 2: Build
	buildStart := time.Now()
	g, err := Build(ctx, net, opts.OffsetValue())
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.EdgeCount = g.EdgeCount()

	opts.Logger.Info("built graph",
		"vertices", g.NodeCount(),
		"edges", g.EdgeCount(),
		"offset", opts.OffsetValue(),
		"duration", result.Stats.BuildTime)

	// Stage 3: Export
	exportStart := time.Now()
	doc, err := ExportFile(ctx, g, opts.Operation, opts.Output)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	result.Document = doc
	result.Stats.Bytes = len(doc)
	result.Stats.ExportTime = time.Since(exportStart)

	opts.Logger.Info("exported graph",
		"operation", opts.Operation,
		"bytes", len(doc),
		"duration", result.Stats.ExportTime)

	return result, nil
}

// applyLogger sets the runner's logger on opts if opts.Logger is nil.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
