package analyzer

import "fmt"

// ParseError wraps a per-file syntax failure (spec.md §7's one fatal,
// per-file error kind). Analyze and AnalyzeFile return it as their error
// when the source does not parse; it is not recorded as a warning, and no
// workflow of that file is analyzed. Callers that
// want the path and parser message can use errors.As against it.
type ParseError struct {
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse error: %s", e.Path, e.Message)
}

// NoWorkflowsError is returned when a file contains no recognizable
// createWorkflow(...) definitions or invocations (exit code 1 per
// SPEC_FULL.md §6).
type NoWorkflowsError struct {
	Path string
}

func (e *NoWorkflowsError) Error() string {
	return fmt.Sprintf("%s: no workflows found", e.Path)
}
