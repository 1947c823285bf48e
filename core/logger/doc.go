// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and is injected into the datastore service at
// construction time.
//
// # Operation Scoping
//
// Storage operations log entry and error events under a scoped logger. The
// WithOperation helper attaches the operation name to the log entry, ensuring
// that all logs related to a single storage call can be correlated.
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
//	log.Info("Storage client ready")
//
//	// In an operation:
//	l := logger.WithOperation(log, "upload_file")
//	l.Error("Upload failed", zap.Error(err))
package logger
