package ir

import "fmt"

// Validate checks the structural invariants listed in spec.md §3 that are
// not already enforced by construction (invariant #1, one parent path, is
// structural by the tree shape itself and is not separately checked
// here). It returns every violation found; a nil/empty result means the
// tree is well-formed.
func Validate(wf *Workflow) []error {
	var errs []error
	seen := map[string]bool{}
	if wf.WorkflowName == "" {
		errs = append(errs, fmt.Errorf("workflow: empty workflowName"))
	}
	for _, d := range wf.Dependencies {
		if seen[d.Name] {
			errs = append(errs, fmt.Errorf("workflow %q: duplicate dependency name %q", wf.WorkflowName, d.Name))
		}
		seen[d.Name] = true
	}

	Visit(wf.Children, func(n Node) {
		switch t := n.(type) {
		case *Sequence:
			if len(t.Children) < 2 {
				errs = append(errs, fmt.Errorf("sequence node %d: children length %d, want >= 2", t.ID(), len(t.Children)))
			}
		case *Decision:
			if len(t.Consequent) < 1 {
				errs = append(errs, fmt.Errorf("decision node %d: consequent is empty", t.ID()))
			}
		case *Parallel:
			if t.NamedBranches {
				for _, c := range t.Children {
					if s, ok := c.(*Step); ok && s.Name == "" {
						errs = append(errs, fmt.Errorf("parallel node %d: named-branch child %d missing Name", t.ID(), s.ID()))
					}
				}
			}
		case *Race:
			if t.NamedBranches {
				for _, c := range t.Children {
					if s, ok := c.(*Step); ok && s.Name == "" {
						errs = append(errs, fmt.Errorf("race node %d: named-branch child %d missing Name", t.ID(), s.ID()))
					}
				}
			}
		}
	})
	return errs
}
