// Package events streams ordered progress notifications during analysis:
// WorkflowDiscovered, StepVisited, Warning, AnalysisComplete. A caller
// passes a channel in through analyzer options; Analyze emits to it as it
// works and the caller drains it (typically --verbose CLI output, or an
// embedding host updating a progress UI).
package events
