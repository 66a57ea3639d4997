// Package api defines the shared wire types exchanged with the ModelRelay
// completion service: request envelopes, response envelopes, streaming
// chunks, and input validation.
//
// A [ResponseEnvelope] carries either a successful result or an [APIError]
// in its Error field, never both. Callers branch on Error presence rather
// than catching an error, so transport-level and server-level failures look
// identical downstream. For streaming, [ChunkStream] yields [StreamChunk]
// deltas that a consumer accumulates in arrival order.
package api
