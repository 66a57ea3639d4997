// Package client implements the configurable ModelRelay client: mutable
// configuration with live updates, retry-orchestrated request execution for
// buffered JSON responses, single-attempt SSE streaming, model catalog
// lookups, and connection diagnostics.
//
// Construct a client with [New], then call [Client.Chat], [Client.Complete],
// or [Client.ChatStream]. Non-streaming calls never return a Go error for
// transport failures: after retries are exhausted the failure is normalized
// into the Error slot of the returned envelope, exactly as a server-side
// error would appear. Only caller input problems (a *api.ValidationError)
// surface as errors. Streaming calls differ: pre-stream failures and
// mid-stream transport failures do propagate, per-event parse noise does not.
//
// For the zero-configuration surface, see the pkg/client wrapper.
package client
