// Package errorflow aggregates the declared error tags of every step in
// a workflow and validates them against the workflow's own declared
// error set, per SPEC_FULL.md §4.6.
package errorflow
