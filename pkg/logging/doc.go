// Package logging provides structured logging utilities for the exporter.
//
// # Overview
//
// This package wraps the standard library slog package with exporter-specific defaults
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
//   - Flexible log level parsing (ParseLogLevel)
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
//	    logging.SetDefaultStructuredLogger("juju-exporter", "v1.0.0")
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
//	logger := logging.NewStructuredLogger("juju-exporter", "v2.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("juju-exporter", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug juju-exporter serve
//	LOG_LEVEL=error juju-exporter collect
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "cycle complete",
//	    "module": "juju-exporter",
//	    "version": "v1.0.0",
//	    "updates": 12
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "collector.(*Collector).walkModel",
//	        "file": "cycle.go",
//	        "line": 45
//	    },
//	    "msg": "walking model",
//	    "module": "juju-exporter",
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
//	slog.Info("cycle complete",
//	    "cycle", cycleID,
//	    "updates", len(result.Updates),
//	    "removals", len(result.Removals),
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("skipping unidentified host")  // Development/troubleshooting
//	slog.Info("cycle complete")              // Normal operations
//	slog.Warn("model skipped")               // Potential issues
//	slog.Error("no endpoint reachable")      // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to fetch model status",
//	    "error", err,
//	    "model", modelName,
//	    "endpoint", endpoint,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/collector - collection cycle logging
//   - pkg/juju - controller session logging
//   - pkg/server - scrape server logging
//
// All components share consistent logging format and configuration.
package logging
