// Package logging assembles the structured slog loggers used across draftd.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and standardizes the component attribute so every subsystem emits
// log lines with the same shape. A no-op logger is provided for tests and
// wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
