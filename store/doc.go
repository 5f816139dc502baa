// Package store persists analysis artifacts: the `.awaitly/dsl/*.dsl.json`
// sidecar file written per workflow, and the analysis cache that stores
// each workflow's lowered diagram under `<path>::<workflowName>`. The
// cache is only written: analysis never reads it back, so every run
// re-discovers and re-walks the file.
package store
