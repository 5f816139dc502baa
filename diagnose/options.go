package diagnose

// Options is the strict-diagnostics configuration: a global
// warnings-as-errors escalation plus a per-rule enable toggle for each
// rule in the catalog.
type Options struct {
	WarningsAsErrors bool

	RequireStepID         bool
	RequireErrors         bool
	RequireParallelErrors bool
	RequireLoopCollect    bool
}

// Option mutates an Options value; apply with Apply.
type Option func(*Options)

// DefaultOptions enables every rule, matching the strict-diagnostics
// defaults implied by SPEC_FULL.md §4.7's rule list.
func DefaultOptions() Options {
	return Options{
		RequireStepID:         true,
		RequireErrors:         true,
		RequireParallelErrors: true,
		RequireLoopCollect:    true,
	}
}

func WithWarningsAsErrors(v bool) Option { return func(o *Options) { o.WarningsAsErrors = v } }
func WithRequireStepID(v bool) Option    { return func(o *Options) { o.RequireStepID = v } }
func WithRequireErrors(v bool) Option    { return func(o *Options) { o.RequireErrors = v } }
func WithRequireParallelErrors(v bool) Option {
	return func(o *Options) { o.RequireParallelErrors = v }
}
func WithRequireLoopCollect(v bool) Option { return func(o *Options) { o.RequireLoopCollect = v } }

// Apply builds an Options starting from DefaultOptions and applying opts
// in order.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
