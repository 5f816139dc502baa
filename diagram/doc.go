// Package diagram lowers the Static Workflow IR into the Diagram DSL: a
// state machine of {states, transitions, initialStateId,
// terminalStateIds} per SPEC_FULL.md §4.8. Lowering is a fixed,
// per-node-kind recursive schema: parallel becomes a fork+join, race a
// fork+winner-join, loop an entry/body/exit with a back-edge, decision a
// decision state with labeled edges. It never mutates the IR.
package diagram
