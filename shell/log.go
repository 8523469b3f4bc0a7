package shell

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger routes the diagnostics of this package and of
// the viewer to l.
//
// Build and BuildImage write one Debug record per stage:
// "filtered samples", "built layers" and "stitched seams".
// The viewer writes Info records when it loads or detaches
// a mesh and when an auto save starts or ends.
//
// Nothing is logged until SetLogger is called, and a nil l
// discards records again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
