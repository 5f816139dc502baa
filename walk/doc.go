// Package walk implements the callback walker: the traversal of a
// discovered workflow's callback body that recognizes every DSL
// construct named in SPEC_FULL.md §4.3 and emits IR nodes. It owns all
// of the pattern-matching logic — the parser adapter and discovery
// package only get the analyzer as far as "here is a callback body";
// everything downstream of that is walk's job.
//
// Grounded on the teacher's workflow package: each construct here mirrors
// one of the teacher's step-composition helpers, generalized from
// "build a runnable step" to "recognize a step shape and emit its IR
// node" (see DESIGN.md for the per-file mapping).
package walk
