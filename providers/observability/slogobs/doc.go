// Package slogobs provides an observability.Logger implementation backed by
// Go's standard library log/slog package. The main entry point is [New];
// output destination, level, and format can be tuned with [WithOutput],
// [WithLevel], [WithJSON], and [WithLogger], or via the RELAY_LOG_LEVEL and
// RELAY_LOG_FORMAT environment variables.
package slogobs
