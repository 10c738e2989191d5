// Package logging provides structured logging utilities for osinfo.
//
// # Overview
//
// This package wraps the standard library slog package with osinfo defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("osinfo", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("osinfo", "v2.0.0", "debug")
//	logger.Info("run starting", "host", host)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug osinfo
//	LOG_LEVEL=error osinfo config
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// Logs are written to stderr in JSON format by default. FormatText selects
// slog's key=value text handler and FormatJournal sends every record to the
// systemd journal with the level mapped to a journal priority and attributes
// as upper-cased journal fields (MODULE, VERSION, RUN_ID, ...). When the
// journal socket is not available the JSON handler is used instead.
//
// JSON example:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "run complete",
//	    "module": "osinfo",
//	    "version": "v1.0.0",
//	    "points": 42
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "runner.(*Runner).Run",
//	        "file": "runner.go",
//	        "line": 45
//	    },
//	    "msg": "collector finished",
//	    "module": "osinfo",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("myapp", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("collector finished",
//	    "collector", "cpu",
//	    "points", 5,
//	    "duration_ms", 1003,
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("cpu sample", "cores", n) // Development/troubleshooting
//	slog.Info("run complete")            // Normal operations
//	slog.Warn("config file malformed")  // Potential issues
//	slog.Error("submit failed")          // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to submit batch",
//	    "error", err,
//	    "collector", name,
//	    "points", len(batch),
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/collector - Data collection logging
//   - pkg/runner - Run progress and summary logging
//   - pkg/sink - Backend connection logging
//
// All components share consistent logging format and configuration.
package logging
