package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/genomeviz/pkg/errors"
	gio "github.com/matzehuels/genomeviz/pkg/io"
	"github.com/matzehuels/genomeviz/pkg/pipeline"
)

// exportOpts holds the command-line flags for the export (root) command.
type exportOpts struct {
	out       string  // output file path (stdout if empty)
	operation string  // export operation name
	offset    float64 // normalization floor
	config    string  // config file path
}

// exportCommand creates the root export command:
//
//	genomeviz winner.genome --out winner.graphml
//
// Flags override the config file, which overrides the built-in defaults.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{
		operation: pipeline.DefaultOperation,
		offset:    pipeline.DefaultOffset,
	}

	cmd := &cobra.Command{
		Use:   appName + " [genome-file]",
		Short: "genomeviz converts NEAT genome files into graph documents",
		Long: `genomeviz reads a genome file produced by a neuroevolution run, builds the
directed graph of its nodes and connection genes, normalizes the connection
weights, and exports the graph as GraphML (default) or JSON.

Examples:
  genomeviz winner.genome                          # GraphML on stdout
  genomeviz winner.genome -o winner.graphml        # GraphML file
  genomeviz winner.genome --operation JSON         # JSON on stdout
  genomeviz winner.genome --offset 1 -o out.xml    # custom weight floor`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.runExport(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.operation, "operation", opts.operation, fmt.Sprintf("export operation %v", gio.Operations()))
	cmd.Flags().Float64Var(&opts.offset, "offset", opts.offset, "minimum normalized link weight")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default $XDG_CONFIG_HOME/genomeviz/config.toml)")

	return cmd
}

// runExport runs the pipeline for one genome file. User errors, such as an
// unsupported operation, are reported as a warning and do not fail the
// command.
func (c *CLI) runExport(cmd *cobra.Command, input string, opts *exportOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	popts := pipeline.Options{
		Input:     input,
		Output:    opts.out,
		Operation: opts.operation,
		Offset:    pipeline.Float(opts.offset),
		Logger:    logger,
	}

	path, explicit := resolveConfigPath(opts.config)
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return reportUserError(err)
	}
	cfg.apply(cmd, &popts)
	if explicit {
		logger.Debug("loaded config", "path", path)
	}

	prog := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, popts)
	if err != nil {
		return reportUserError(err)
	}

	if popts.Output == "" {
		if _, err := cmd.OutOrStdout().Write(result.Document); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		prog.done(fmt.Sprintf("Exported %s", popts.Operation))
		return nil
	}

	prog.done(fmt.Sprintf("Exported %s", popts.Operation))
	printSuccess("Exported %s", popts.Operation)
	printFile(popts.Output)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.Bytes)
	return nil
}

// reportUserError prints user errors as a warning and swallows them. Every
// other error is returned unchanged.
func reportUserError(err error) error {
	if !errs.IsUserError(err) {
		return err
	}
	printWarning("%s", errs.UserMessage(err))
	return nil
}
