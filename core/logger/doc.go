// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) for the mod manager CLI.
//
// # Operation Correlation
//
// Adding mods processes a whole batch of identifiers in one operation. The
// WithOperationID helper attaches a generated operation_id field to the
// logger, ensuring that all log entries belonging to one batch can be
// correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithOperationID(log)
//	log.Info("adding mods", zap.Int("count", len(identifiers)))
package logger
