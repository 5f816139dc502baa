package diagram

import (
	"fmt"

	"github.com/awaitly-go/analyzer/ir"
)

// counters mints the mermaidId-style ids named in SPEC_FULL.md §6
// (step_N, parallel_fork_N, decision_N, ...), one independent sequence
// per kind so renumbering one kind never shifts another's ids.
type counters struct {
	n map[string]int
}

func newCounters() *counters { return &counters{n: map[string]int{}} }

func (c *counters) next(prefix string) string {
	c.n[prefix]++
	return fmt.Sprintf("%s_%d", prefix, c.n[prefix])
}

// lowerer accumulates states/transitions while recursively lowering IR
// nodes.
type lowerer struct {
	c           *counters
	states      []State
	transitions []Transition
}

func (l *lowerer) addState(s State) string {
	l.states = append(l.states, s)
	return s.ID
}

func (l *lowerer) addTransition(t Transition) {
	l.transitions = append(l.transitions, t)
}

// Lower produces the full Diagram DSL document for one workflow's
// children, per SPEC_FULL.md §4.8.
func Lower(workflowName string, roots []ir.Node) Diagram {
	l := &lowerer{c: newCounters()}

	initialID := "initial"
	l.addState(State{ID: initialID, Label: "start", Type: StateInitial})

	entry, exits := l.lowerChain(roots)
	if entry == "" {
		// An empty workflow body: the initial state is its own terminal.
		return Diagram{
			WorkflowName:     workflowName,
			States:           l.states,
			Transitions:      l.transitions,
			InitialStateID:   initialID,
			TerminalStateIDs: []string{initialID},
		}
	}
	l.addTransition(Transition{FromStateID: initialID, ToStateID: entry, Event: "start"})

	var terminalIDs []string
	for _, exit := range exits {
		term := l.c.next("terminal")
		l.addState(State{ID: term, Label: "end", Type: StateTerminal})
		l.addTransition(Transition{FromStateID: exit, ToStateID: term, Event: "end"})
		terminalIDs = append(terminalIDs, term)
	}

	return Diagram{
		WorkflowName:     workflowName,
		States:           l.states,
		Transitions:      l.transitions,
		InitialStateID:   initialID,
		TerminalStateIDs: terminalIDs,
	}
}

// lowerChain wires a flat statement list in sequence, each node's exits
// feeding the next node's entry via a "next" transition. It returns the
// first node's entry id and the final node's exit ids.
func (l *lowerer) lowerChain(nodes []ir.Node) (entry string, exits []string) {
	if len(nodes) == 0 {
		return "", nil
	}
	var prevExits []string
	for i, n := range nodes {
		nEntry, nExits := l.lowerOne(n)
		if i == 0 {
			entry = nEntry
		} else {
			for _, pe := range prevExits {
				l.addTransition(Transition{FromStateID: pe, ToStateID: nEntry, Event: "next"})
			}
		}
		prevExits = nExits
	}
	return entry, prevExits
}

// lowerOne lowers a single IR node and returns its entry id and exit
// ids. A node with no natural single exit (parallel/race/loop) produces
// exactly one synthetic join/exit id; a decision/conditional/switch
// produces one exit id per distinct branch path.
func (l *lowerer) lowerOne(n ir.Node) (entry string, exits []string) {
	switch t := n.(type) {
	case *ir.Step:
		id := l.stepStateID(t)
		l.addState(State{ID: id, Label: stepLabel(t), Type: StateStep})
		return id, []string{id}

	case *ir.SagaStep:
		id := l.c.next("saga_step")
		label := t.Name
		if label == "" {
			label = t.Callee
		}
		l.addState(State{ID: id, Label: label, Type: StateStep})
		return id, []string{id}

	case *ir.Stream:
		id := l.c.next("stream")
		l.addState(State{ID: id, Label: t.StreamType, Type: StateStep})
		return id, []string{id}

	case *ir.Unknown:
		id := l.c.next("unknown")
		l.addState(State{ID: id, Label: t.Reason, Type: StateStep})
		return id, []string{id}

	case *ir.WorkflowRef:
		id := l.c.next("workflow_ref")
		l.addState(State{ID: id, Label: t.WorkflowName, Type: StateStep})
		return id, []string{id}

	case *ir.Sequence:
		return l.lowerChain(t.Children)

	case *ir.Parallel:
		return l.lowerFork(t.Children, "parallel_fork", "parallel_join", "fork", "join")

	case *ir.Race:
		return l.lowerFork(t.Children, "race_fork", "race_join", "race", "winner")

	case *ir.Conditional:
		return l.lowerDecision(conditionLabelOf(t.Condition), t.Consequent, t.Alternate)

	case *ir.Decision:
		return l.lowerDecision(t.ConditionLabel, t.Consequent, t.Alternate)

	case *ir.Switch:
		return l.lowerSwitch(t)

	case *ir.Loop:
		return l.lowerLoop(t)
	}
	return "", nil
}

func (l *lowerer) stepStateID(st *ir.Step) string {
	if st.Key != "" && st.Key != ir.Dynamic {
		return st.Key
	}
	if st.StepID != "" && st.StepID != ir.Dynamic {
		return st.StepID
	}
	return l.c.next("step")
}

func stepLabel(st *ir.Step) string {
	if st.Name != "" {
		return st.Name
	}
	return st.StepID
}

func conditionLabelOf(condition string) string {
	return condition
}

// lowerFork handles parallel/race: a fork state, one chain per branch,
// and a join state every branch exit feeds.
func (l *lowerer) lowerFork(branches []ir.Node, forkPrefix, joinPrefix, forkEvent, joinEvent string) (string, []string) {
	forkID := l.c.next(forkPrefix)
	l.addState(State{ID: forkID, Label: forkPrefix, Type: StateJoin})
	joinID := l.c.next(joinPrefix)

	for _, b := range branches {
		bEntry, bExits := l.lowerOne(b)
		if bEntry == "" {
			continue
		}
		l.addTransition(Transition{FromStateID: forkID, ToStateID: bEntry, Event: forkEvent})
		for _, e := range bExits {
			l.addTransition(Transition{FromStateID: e, ToStateID: joinID, Event: joinEvent})
		}
	}
	l.addState(State{ID: joinID, Label: joinPrefix, Type: StateJoin})
	return forkID, []string{joinID}
}

// lowerDecision handles conditional/decision: a decision state with a
// labeled edge into each branch. A branch with no body contributes the
// decision state itself as an exit (the flow continues directly).
func (l *lowerer) lowerDecision(label string, consequent, alternate []ir.Node) (string, []string) {
	id := l.c.next("decision")
	l.addState(State{ID: id, Label: label, Type: StateDecision})

	var exits []string
	exits = append(exits, l.wireBranch(id, "true", consequent)...)
	exits = append(exits, l.wireBranch(id, "false", alternate)...)
	return id, exits
}

func (l *lowerer) wireBranch(from, label string, body []ir.Node) []string {
	entry, exits := l.lowerChain(body)
	if entry == "" {
		return []string{from}
	}
	l.addTransition(Transition{FromStateID: from, ToStateID: entry, Event: "branch", ConditionLabel: label})
	return exits
}

func (l *lowerer) lowerSwitch(sw *ir.Switch) (string, []string) {
	id := l.c.next("switch")
	l.addState(State{ID: id, Label: sw.Expression, Type: StateDecision})

	var exits []string
	for _, c := range sw.Cases {
		label := c.Value
		if c.IsDefault {
			label = "default"
		}
		exits = append(exits, l.wireBranch(id, label, c.Body)...)
	}
	return id, exits
}

// lowerLoop handles the five loop shapes with one fixed schema: a start
// state, a body chain, and an end state. The body's exit feeds back into
// start (the loop's continuation edge); start also exits directly to end
// (the loop's termination edge).
func (l *lowerer) lowerLoop(lp *ir.Loop) (string, []string) {
	startID := l.c.next("loop_start")
	l.addState(State{ID: startID, Label: string(lp.LoopType), Type: StateDecision})
	endID := l.c.next("loop_end")

	bodyEntry, bodyExits := l.lowerChain(lp.Body)
	if bodyEntry != "" {
		l.addTransition(Transition{FromStateID: startID, ToStateID: bodyEntry, Event: "iterate"})
		for _, e := range bodyExits {
			l.addTransition(Transition{FromStateID: e, ToStateID: startID, Event: "next"})
		}
	}
	l.addState(State{ID: endID, Label: "done", Type: StateJoin})
	l.addTransition(Transition{FromStateID: startID, ToStateID: endID, Event: "done"})
	return startID, []string{endID}
}
