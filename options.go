package analyzer

import (
	"github.com/awaitly-go/analyzer/diagnose"
	"github.com/awaitly-go/analyzer/events"
	"github.com/awaitly-go/analyzer/store"
	"github.com/awaitly-go/analyzer/typeinfer"
)

// Options configures one Analyze call.
type Options struct {
	// Checker optionally enriches dependency types (typeinfer.Enrich).
	// Nil disables type enrichment entirely.
	Checker typeinfer.Checker

	// Diagnose controls the strict-diagnostics rule engine.
	Diagnose diagnose.Options

	// Events, when non-nil, receives progress notifications as Analyze
	// runs (see the events package).
	Events chan<- events.Event

	// Cache, when non-nil, is populated with each workflow's rendered
	// Diagram DSL after analysis (keyed by "<path>::<workflowName>").
	// Write-through only: a cache hit never skips re-analysis, since
	// ir.Workflow.Children cannot round-trip through encoding/json (see
	// DESIGN.md).
	Cache store.Adapter
}

// Option is a functional option for Analyze.
type Option func(*Options)

// WithChecker sets the optional type-enrichment checker.
func WithChecker(c typeinfer.Checker) Option {
	return func(o *Options) { o.Checker = c }
}

// WithDiagnose sets the strict-diagnostics options.
func WithDiagnose(d diagnose.Options) Option {
	return func(o *Options) { o.Diagnose = d }
}

// WithEvents sets the progress-event channel.
func WithEvents(ch chan<- events.Event) Option {
	return func(o *Options) { o.Events = ch }
}

// WithCache sets the analysis result cache adapter.
func WithCache(c store.Adapter) Option {
	return func(o *Options) { o.Cache = c }
}

// ApplyOptions applies functional options over the defaults.
func ApplyOptions(opts ...Option) Options {
	o := Options{Diagnose: diagnose.DefaultOptions()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
