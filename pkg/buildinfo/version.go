// Package buildinfo provides build-time version information for genomeviz.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/genomeviz/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/genomeviz/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/genomeviz/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/genomeviz
package buildinfo

import "fmt"

// Set via ldflags; see the package documentation.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template returns the cobra version template printed by --version.
func Template() string {
	return "{{.Name}} version {{.Version}}\n" + fmt.Sprintf("commit: %s\nbuilt: %s\n", Commit, Date)
}
