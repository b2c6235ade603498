package util

import (
	"log/slog"
	"os"
	"strings"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// InitSlog configures the default slog logger based on the LOG_LEVEL
// environment variable. This is an operator/ambient concern (log
// verbosity), distinct from the engine's thresholds and other
// dedup-affecting knobs, which are all explicit call parameters with
// no environment fallback.
func InitSlog() {
	raw, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return
	}

	level, known := logLevels[strings.ToLower(raw)]
	if !known {
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
