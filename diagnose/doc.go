// Package diagnose implements the strict-diagnostics rule engine of
// SPEC_FULL.md §4.7: missing-step-id, missing-errors,
// parallel-missing-errors, and loop-missing-collect, each rule's
// metadata sourced from package rulecatalog rather than inlined here.
package diagnose
