package render

import (
	"fmt"
	"strings"

	"github.com/awaitly-go/analyzer/diagram"
)

// Direction is a flowchart layout direction.
type Direction string

const (
	DirectionTB Direction = "TB"
	DirectionLR Direction = "LR"
	DirectionBT Direction = "BT"
	DirectionRL Direction = "RL"
)

// MermaidOptions configures the Mermaid text renderer.
type MermaidOptions struct {
	Direction Direction

	// ShowKeys renders each state's id instead of its human label
	// (matching --keys): ids already prefer a step's key/stepId over its
	// display name, per diagram.lowerer.stepStateID.
	ShowKeys bool
}

var labelEscapes = strings.NewReplacer(
	"<", "&lt;", ">", "&gt;",
	"|", "&#124;", "#", "&#35;",
	`"`, "&quot;", "'", "&#39;",
	"[", "&#91;", "]", "&#93;",
	"{", "&#123;", "}", "&#125;",
	"\n", "\\n",
)

func escapeLabel(s string) string {
	return labelEscapes.Replace(s)
}

var classDefs = []struct {
	typ   diagram.StateType
	class string
	def   string
}{
	{diagram.StateInitial, "initial", "fill:#d4f4dd,stroke:#2d7a3e"},
	{diagram.StateStep, "step", "fill:#e3edff,stroke:#2d5bbf"},
	{diagram.StateDecision, "decision", "fill:#fff3cd,stroke:#9a7d0a"},
	{diagram.StateJoin, "join", "fill:#ececec,stroke:#555555"},
	{diagram.StateTerminal, "terminal", "fill:#f4d4d4,stroke:#a02d2d"},
}

// Mermaid renders d as Mermaid flowchart text: a two-pass emission (all
// node declarations, then all edges), class-def styles per state type,
// and subgraph grouping around fork/join pairs.
func Mermaid(d diagram.Diagram, opts MermaidOptions) string {
	dir := opts.Direction
	if dir == "" {
		dir = DirectionTB
	}

	var b strings.Builder
	fmt.Fprintf(&b, "flowchart %s\n", dir)

	for _, cd := range classDefs {
		fmt.Fprintf(&b, "  classDef %s %s\n", cd.class, cd.def)
	}

	byID := make(map[string]diagram.State, len(d.States))
	for _, s := range d.States {
		byID[s.ID] = s
	}
	grouped := subgraphMembers(d)

	for _, s := range d.States {
		if grouped[s.ID] != "" {
			continue
		}
		b.WriteString("  " + nodeDecl(s, opts))
	}
	for _, g := range subgraphOrder(d) {
		fmt.Fprintf(&b, "  subgraph %s [%s]\n", g.id, g.label)
		for _, id := range g.members {
			b.WriteString("    " + nodeDecl(byID[id], opts))
		}
		b.WriteString("  end\n")
	}

	for _, t := range d.Transitions {
		label := t.Event
		if t.ConditionLabel != "" {
			label = t.ConditionLabel
		}
		fmt.Fprintf(&b, "  %s -->|%s| %s\n", t.FromStateID, escapeLabel(label), t.ToStateID)
	}

	for _, s := range d.States {
		for _, cd := range classDefs {
			if cd.typ == s.Type {
				fmt.Fprintf(&b, "  class %s %s\n", s.ID, cd.class)
			}
		}
	}

	return b.String()
}

func nodeDecl(s diagram.State, opts MermaidOptions) string {
	label := s.Label
	if opts.ShowKeys {
		label = s.ID
	}
	label = escapeLabel(label)
	switch s.Type {
	case diagram.StateInitial, diagram.StateTerminal:
		return fmt.Sprintf("%s((%s))\n", s.ID, label)
	case diagram.StateDecision:
		return fmt.Sprintf("%s{%s}\n", s.ID, label)
	case diagram.StateJoin:
		return fmt.Sprintf("%s[[%s]]\n", s.ID, label)
	default:
		return fmt.Sprintf("%s[%s]\n", s.ID, label)
	}
}

type subgraph struct {
	id      string
	label   string
	members []string
}

// subgraphOrder returns one subgraph per fork/join pair found in d,
// containing every state transitively reachable from the fork up to and
// including its join.
func subgraphOrder(d diagram.Diagram) []subgraph {
	out := byFromID(d)
	var groups []subgraph
	for _, s := range d.States {
		if !isForkID(s.ID) {
			continue
		}
		joinID := matchingJoin(s.ID, d)
		if joinID == "" {
			continue
		}
		members := closure(s.ID, joinID, out)
		groups = append(groups, subgraph{id: "sg_" + s.ID, label: forkLabel(s.ID), members: members})
	}
	return groups
}

// subgraphMembers maps a state id to the subgraph id containing it, so
// the flat node-declaration pass can skip members already emitted inside
// a subgraph block.
func subgraphMembers(d diagram.Diagram) map[string]string {
	result := map[string]string{}
	for _, g := range subgraphOrder(d) {
		for _, m := range g.members {
			result[m] = g.id
		}
	}
	return result
}

func isForkID(id string) bool {
	return strings.HasPrefix(id, "parallel_fork_") || strings.HasPrefix(id, "race_fork_")
}

func forkLabel(id string) string {
	if strings.HasPrefix(id, "race_fork_") {
		return "race"
	}
	return "parallel"
}

func matchingJoin(forkID string, d diagram.Diagram) string {
	n := strings.TrimPrefix(strings.TrimPrefix(forkID, "parallel_fork_"), "race_fork_")
	want := "parallel_join_" + n
	if strings.HasPrefix(forkID, "race_fork_") {
		want = "race_join_" + n
	}
	for _, s := range d.States {
		if s.ID == want {
			return want
		}
	}
	return ""
}

func byFromID(d diagram.Diagram) map[string][]string {
	out := map[string][]string{}
	for _, t := range d.Transitions {
		out[t.FromStateID] = append(out[t.FromStateID], t.ToStateID)
	}
	return out
}

func closure(fromID, stopID string, out map[string][]string) []string {
	seen := map[string]bool{fromID: true}
	queue := []string{fromID}
	var order []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		if cur == stopID {
			continue
		}
		for _, next := range out[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return order
}
