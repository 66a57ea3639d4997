// Package utils provides shared low-level helpers used throughout the relay
// internals. It covers HTTP request helpers for both synchronous JSON
// round-trips and streaming (SSE) communication with the ModelRelay API,
// generic pointer and string utilities, and a simple elapsed-time timer.
//
// Key entry points: [DoJSON] for synchronous JSON exchanges, [DoPostStream]
// together with [SSEScanner] for Server-Sent Events streaming, [Ptr] for
// converting values to pointers, and [Timer] for measuring latency.
package utils
