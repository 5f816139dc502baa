// Package syntax is the parser adapter: a single pluggable frontend that
// turns TypeScript-flavored source text into a uniform syntax tree with
// named-child access, source spans, and raw-text slicing, per
// SPEC_FULL.md §4.1.
//
// No repository in the retrieval pack this module was built from vendors
// a TypeScript/JavaScript grammar for Go (no tree-sitter binding, no JS
// engine). Parse is therefore a small hand-rolled recursive-descent
// parser over the DSL surface named in spec.md §6 — call expressions,
// member expressions, object/array/arrow literals, string/template/number
// literals, control flow, and destructuring patterns — not a general TS
// parser. See DESIGN.md for the corpus-grounding note on this choice.
package syntax
