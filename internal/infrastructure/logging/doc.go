// Package logging provides structured logging for Gray Logic Panel.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the panel runtime.
//
// # Features
//
//   - JSON output for fleet deployments (machine-parsable)
//   - Text output for bench development (human-readable)
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Configuration
//
// Logging is configured via the LoggingConfig in config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("screen activated", "screen", "home")
//	logger.Error("broker unreachable", "error", err)
package logging
