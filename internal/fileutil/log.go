package fileutil

import (
	"fmt"
	"log/slog"
)

// LogError logs a formatted message at error level on the default logger.
func LogError(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...))
}

