// Package logging provides a minimal logging interface and adapters.
//
// The Logger interface defines the structured logging methods (Debug, Info,
// Warn, Error) used across the assistant for observability. The package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - ZapAdapter wrapping go.uber.org/zap
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
