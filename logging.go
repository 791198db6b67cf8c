package tween

import (
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the structured logger type used for the engine's own
// diagnostics (a build-time accessor miss, or an accessor reporting zero
// components at build time). It is a thin alias over logiface.Logger, backed by
// stumpy by default - the same pairing the rest of the ecosystem uses for
// zero-dependency-on-a-specific-backend structured logging.
type Logger = logiface.Logger[*stumpy.Event]

var (
	loggerMu  sync.RWMutex
	pkgLogger = stumpy.L.New(
		stumpy.L.WithStumpy(),
		logiface.WithLevel[*stumpy.Event](logiface.LevelWarning),
	)
)

// SetLogger replaces the package-wide logger used for engine diagnostics.
// Passing nil disables logging entirely. This is a global, process-wide
// setting, consistent with the engine's single-threaded-per-loop but
// shared-configuration model; call it during setup, not from a callback.
func SetLogger(l *Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		pkgLogger = logiface.New[*stumpy.Event]()
		return
	}
	pkgLogger = l
}

func logger() *Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return pkgLogger
}
