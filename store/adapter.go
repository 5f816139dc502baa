package store

import (
	"context"
	"encoding/json"
)

// Adapter is a persistence backend for analysis artifacts, keyed by a
// logical key (a workflow name for the DSL sidecar, or
// `<path>::<workflowName>` for the analysis cache). Implementations must
// be thread-safe.
type Adapter interface {
	// Get retrieves a value by key. Returns nil, false, nil if absent.
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)

	// Set stores a value by key.
	Set(ctx context.Context, key string, value json.RawMessage) error

	// Has returns true if the key exists.
	Has(ctx context.Context, key string) (bool, error)

	// Keys returns all stored keys.
	Keys(ctx context.Context) ([]string, error)
}
