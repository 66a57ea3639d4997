// Package observability defines the structured logging abstraction used
// throughout the relay SDK.
//
// The central entry point is [Logger], an injectable structured logger that
// the client uses as its diagnostic sink for retry attempts, stream events,
// and HTTP round-trips. Callers propagate an active Logger through a
// [context.Context] using [ContextWithObserver]; it can be retrieved with
// [ObserverFromContext]. Attribute constructors ([String], [Int], [Bool],
// [Duration], [Error]) build the key-value metadata attached to each record.
//
// The slogobs subpackage provides the default implementation backed by the
// standard library's log/slog.
package observability
