package ir

// NodeID identifies a flow node within one analysis. Ids are minted in
// order starting at 1 by an Arena; they are never reused within the same
// Arena and are stable across two runs on identical input only if the
// caller starts a fresh Arena per run (see Arena.Reset).
type NodeID int

// Arena mints NodeIDs for one analysis. The spec this package ports
// describes a process-wide monotonic counter with an externally
// resettable reset hook for deterministic test output; this Go port
// instead scopes the counter per analysis (see SPEC_FULL.md §3 ADDED),
// which gives the same determinism guarantee without shared mutable
// state across concurrent analyses. Reset is kept as a thin compatibility
// shim equivalent to starting a fresh Arena.
type Arena struct {
	next NodeID
}

// NewArena creates an Arena whose first minted id is 1.
func NewArena() *Arena {
	return &Arena{next: 1}
}

// Next mints and returns the next NodeID.
func (a *Arena) Next() NodeID {
	id := a.next
	a.next++
	return id
}

// Reset rewinds the arena so the next minted id is 1 again. Equivalent to
// discarding the Arena and calling NewArena, provided over Arena itself so
// callers that held a *Arena reference across runs keep working.
func (a *Arena) Reset() {
	a.next = 1
}

// Count returns how many ids have been minted so far.
func (a *Arena) Count() int {
	return int(a.next - 1)
}
