package cli

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/genomeviz/pkg/errors"
	"github.com/matzehuels/genomeviz/pkg/pipeline"
)

// config is the optional TOML config file:
//
//	operation = "GraphML"
//	offset = 0.5
//	out = "winner.graphml"
type config struct {
	Operation string   `toml:"operation"`
	Offset    *float64 `toml:"offset"`
	Out       string   `toml:"out"`
}

// loadConfig decodes the config file at path. An explicitly requested file
// must exist; the default file is optional.
func loadConfig(path string, explicit bool) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return config{}, nil
		}
		if stderrors.Is(err, fs.ErrNotExist) {
			return config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "config file %s not found", path)
		}
		return config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return config{}, errs.New(errs.ErrCodeInvalidInput, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	if cfg.Offset != nil {
		if err := errs.ValidateOffset(*cfg.Offset); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// apply copies config values into opts for every flag the user did not set.
func (cfg config) apply(cmd *cobra.Command, opts *pipeline.Options) {
	flags := cmd.Flags()
	if cfg.Operation != "" && !flags.Changed("operation") {
		opts.Operation = cfg.Operation
	}
	if cfg.Offset != nil && !flags.Changed("offset") {
		opts.Offset = pipeline.Float(*cfg.Offset)
	}
	if cfg.Out != "" && !flags.Changed("out") {
		opts.Output = cfg.Out
	}
}

// resolveConfigPath returns the config file to read and whether the user
// asked for it explicitly.
func resolveConfigPath(flagValue string) (string, bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if env := os.Getenv("GENOMEVIZ_CONFIG"); env != "" {
		return env, true
	}
	return defaultConfigPath(), false
}
