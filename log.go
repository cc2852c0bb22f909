package jellyschema

import "log/slog"

// debugLogger is the package-wide logging sink. Compiling and validating are
// synchronous, in-process operations with no I/O of their own, so a single
// shared *slog.Logger (rather than a per-call context-threaded logger) is
// enough; callers that want structured output wire their own handler with
// SetLogger.
var debugLogger = slog.Default()

// SetLogger replaces the logger used for Scope.Compile's debug trace.
func SetLogger(l *slog.Logger) {
	if l != nil {
		debugLogger = l
	}
}
