// Package dataflow builds the producer/consumer graph over a workflow's
// steps: one node per step with an out key or non-empty reads, one edge
// per (writer, reader, key) triple in document order, per SPEC_FULL.md
// §4.5. It never mutates the IR; Analyze returns a fresh graph that
// merely references step ids.
package dataflow
