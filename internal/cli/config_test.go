package cli

import (
	"os"
	"path/filepath"
	"testing"

	errs "github.com/matzehuels/genomeviz/pkg/errors"
	"github.com/matzehuels/genomeviz/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "operation = \"JSON\"\noffset = 1.0\nout = \"net.json\"\n")

	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Operation != "JSON" || cfg.Out != "net.json" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Offset == nil || *cfg.Offset != 1.0 {
		t.Errorf("Offset = %v, want 1.0", cfg.Offset)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "operation = \n"},
		{"unknown key", "format = \"svg\"\n"},
		{"negative offset", "offset = -0.5\n"},
		{"wrong type", "offset = \"high\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content), true)
			if !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Errorf("loadConfig error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.toml")

	if _, err := loadConfig(missing, false); err != nil {
		t.Errorf("missing default config should be ignored, got %v", err)
	}
	if _, err := loadConfig(missing, true); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("missing explicit config error = %v, want INVALID_INPUT", err)
	}
	if _, err := loadConfig("", true); err != nil {
		t.Errorf("empty path error = %v", err)
	}
}

func TestConfigFlagsWin(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cmd := c.exportCommand()
	if err := cmd.ParseFlags([]string{"--operation", "GraphML"}); err != nil {
		t.Fatal(err)
	}

	offset := 2.0
	cfg := config{Operation: "JSON", Offset: &offset, Out: "cfg.json"}
	opts := pipeline.DefaultOptions()
	cfg.apply(cmd, &opts)

	if opts.Operation != "GraphML" {
		t.Errorf("Operation = %q, want flag value GraphML", opts.Operation)
	}
	if opts.OffsetValue() != 2.0 {
		t.Errorf("Offset = %v, want config value 2.0", opts.OffsetValue())
	}
	if opts.Output != "cfg.json" {
		t.Errorf("Output = %q, want config value cfg.json", opts.Output)
	}
}

func TestExportUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeTestGenome(t, dir, testGenome)
	outPath := filepath.Join(dir, "from-config.json")
	cfgPath := writeConfig(t, "operation = \"JSON\"\nout = \""+filepath.ToSlash(outPath)+"\"\n")

	if _, _, err := runCLI(t, in, "--config", cfgPath); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("config out path not used: %v", err)
	}
	if len(data) == 0 || data[0] != '{' {
		t.Errorf("output is not JSON: %q", data)
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("GENOMEVIZ_CONFIG", "")

	if p, explicit := resolveConfigPath("my.toml"); p != "my.toml" || !explicit {
		t.Errorf("flag path = %q, %v", p, explicit)
	}
	if p, explicit := resolveConfigPath(""); p != filepath.Join("/cfg", "genomeviz", "config.toml") || explicit {
		t.Errorf("default path = %q, %v", p, explicit)
	}

	t.Setenv("GENOMEVIZ_CONFIG", "env.toml")
	if p, explicit := resolveConfigPath(""); p != "env.toml" || !explicit {
		t.Errorf("env path = %q, %v", p, explicit)
	}
}
