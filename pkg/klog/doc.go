// Package klog provides structured event logging for the keyboard remap
// engine: every processed input event, the output events it produced, and
// its latency, captured in a form suitable for debugging and analysis.
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	var logger klog.Logger = klog.NewSlogAdapter(slog.Default())
//
//	// For production: write to a binary file
//	fileLogger, err := klog.NewFileLogger("/var/log/keyrx/events.klog")
//
//	// Both: use MultiLogger
//	logger = klog.NewMultiLogger(klog.NewSlogAdapter(slog.Default()), fileLogger)
//
//	orch := orchestrator.New(input, output, orchestrator.WithLogger(logger))
//
// Log files use CBOR encoding with a .klog extension.
package klog
