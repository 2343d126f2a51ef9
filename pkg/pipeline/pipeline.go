// Package pipeline provides the core genome export pipeline for genomeviz.
//
// This package implements the complete parse → build → export pipeline that
// the CLI commands share. Centralizing it keeps the export and inspect
// commands consistent about validation, logging and error codes.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read the genome file into a network of nodes and links
//  2. Build: Normalize link weights and build the directed graph
//  3. Export: Encode the graph with the requested operation (GraphML, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:     "winner.genome",
//	    Output:    "winner.graphml",
//	    Operation: "GraphML",
//	    Offset:    pipeline.Float(0.5),
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.EdgeCount)
//
// Run individual stages:
//
//	net, err := pipeline.Parse(ctx, path)
//	g, err := pipeline.Build(ctx, net, offset)
//	doc, err := pipeline.Export(ctx, g, op)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/genomeviz/pkg/digraph"
	errs "github.com/matzehuels/genomeviz/pkg/errors"
	gio "github.com/matzehuels/genomeviz/pkg/io"
	"github.com/matzehuels/genomeviz/pkg/network"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultOperation is the export operation used when none is requested.
	DefaultOperation = gio.DefaultOperation

	// DefaultOffset is the floor added to every normalized link weight.
	DefaultOffset = network.DefaultOffset
)

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run.
//
// Zero values are replaced by defaults: an empty Operation becomes
// [DefaultOperation] and a nil Offset becomes [DefaultOffset]. Offset is a
// pointer so that an explicit offset of 0 is kept.
type Options struct {
	// Input is the genome file to read.
	Input string `json:"input"`

	// Output is the destination file. When empty the document is only
	// returned in [Result.Document].
	Output string `json:"output,omitempty"`

	// Operation names the export format, e.g. "GraphML".
	Operation string `json:"operation,omitempty"`

	// Offset is the normalization floor, see [network.Network.Normalize].
	Offset *float64 `json:"offset,omitempty"`

	// Logger receives stage progress. Defaults to a discarding logger.
	Logger *log.Logger `json:"-"`

	validated bool
}

// DefaultOptions returns options with every default applied.
func DefaultOptions() Options {
	return Options{
		Operation: DefaultOperation,
		Offset:    Float(DefaultOffset),
	}
}

// Float returns a pointer to v, for setting [Options.Offset].
func Float(v float64) *float64 { return &v }

// OffsetValue returns the configured offset, or [DefaultOffset] if unset.
func (o *Options) OffsetValue() float64 {
	if o.Offset == nil {
		return DefaultOffset
	}
	return *o.Offset
}

// ValidateAndSetDefaults checks every field and fills in defaults.
//
// The operation is resolved first, so an unsupported operation is reported
// before any file is opened. All validation failures are user errors
// (see [errs.IsUserError]).
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Operation == "" {
		o.Operation = DefaultOperation
	}
	if _, err := gio.Lookup(o.Operation); err != nil {
		return err
	}
	if err := errs.ValidatePath(o.Input); err != nil {
		return errs.New(errs.ErrCodeInvalidInput, "input: %s", errs.UserMessage(err))
	}
	if o.Output != "" {
		if err := errs.ValidatePath(o.Output); err != nil {
			return errs.New(errs.ErrCodeInvalidInput, "output: %s", errs.UserMessage(err))
		}
	}
	if o.Offset == nil {
		o.Offset = Float(DefaultOffset)
	}
	if err := errs.ValidateOffset(*o.Offset); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Result Types
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Network is the parsed genome with normalized weights.
	Network *network.Network

	// Graph is the directed graph built from Network.
	Graph *digraph.Graph

	// Document is the encoded export, also written to Options.Output when set.
	Document []byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	LinkCount  int
	EdgeCount  int
	Bytes      int
	ParseTime  time.Duration
	BuildTime  time.Duration
	ExportTime time.Duration
}

// Total returns the summed duration of all stages.
func (s Stats) Total() time.Duration {
	return s.ParseTime + s.BuildTime + s.ExportTime
}
