// Package discover implements workflow discovery: the two-pass scan over
// a parsed file that locates createWorkflow(...) bindings and the
// invocations of those bindings, per SPEC_FULL.md §4.2. It is grounded on
// the teacher's call-site scanning idiom (gains/workflow package, which
// scans a fixed set of call shapes rather than a general AST visitor) and
// produces the inputs the walk package needs: a callback body plus the
// Dep list and workflow-level options extracted from createWorkflow's
// arguments.
package discover
