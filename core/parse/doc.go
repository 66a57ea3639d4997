// Package parse extracts typed values from model output. Models frequently
// emit JSON that is almost valid (single quotes, trailing commas, missing
// braces); [StringAs] repairs such payloads with jsonrepair before giving
// up, and [ResponseAs] applies the same extraction to the first choice of a
// response envelope.
package parse
