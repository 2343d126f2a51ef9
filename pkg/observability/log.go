package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes pipeline events to a logger at debug level. Failed stages
// are logged at error level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to l, or to log.Default() if l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{Logger: l}
}

func (h *LogHooks) OnParseStart(_ context.Context, source string) {
	h.Logger.Debug("parse started", "source", source)
}

func (h *LogHooks) OnParseComplete(_ context.Context, source string, nodes, links int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Error("parse failed", "source", source, "err", err)
		return
	}
	h.Logger.Debug("parse finished", "source", source, "nodes", nodes, "links", links, "duration", d)
}

func (h *LogHooks) OnBuildStart(_ context.Context, nodes, links int) {
	h.Logger.Debug("build started", "nodes", nodes, "links", links)
}

func (h *LogHooks) OnBuildComplete(_ context.Context, edges int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Error("build failed", "err", err)
		return
	}
	h.Logger.Debug("build finished", "edges", edges, "duration", d)
}

func (h *LogHooks) OnExportStart(_ context.Context, operation, dest string) {
	h.Logger.Debug("export started", "operation", operation, "dest", dest)
}

func (h *LogHooks) OnExportComplete(_ context.Context, operation, dest string, size int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Error("export failed", "operation", operation, "dest", dest, "err", err)
		return
	}
	h.Logger.Debug("export finished", "operation", operation, "dest", dest, "bytes", size, "duration", d)
}
