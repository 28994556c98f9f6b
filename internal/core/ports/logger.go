// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// SetVerbose toggles debug-level output.
	SetVerbose(enable bool)

	// Debug logs a diagnostic message, visible only in verbose mode.
	Debug(msg string)

	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, rendering wrapped causes and metadata.
	Error(err error)
}
