// Package x12 provides an in-memory document model for X12 EDI text.
//
// An X12 document is an ordered sequence of segments; a segment is an
// ordered sequence of string elements. The element separator and segment
// terminator are arbitrary single characters discovered positionally from
// the input rather than configured, via one of two DelimiterDetector
// strategies: GenericDetector reads two fixed byte offsets, and
// EnvelopeDetector derives both characters from the fixed-width layout of
// the ISA interchange header.
//
// Callers locate segments with regex filters (anchored full-string
// matching per element index), remove segments, and re-serialize. SE
// transaction-set trailer counts are recomputed on every serialization so
// they always reflect the actual segment spans.
package x12
