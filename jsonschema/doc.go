// Package jsonschema provides a fluent API for building JSON Schema
// documents, used here to describe the shape of the Diagram DSL emitted
// by the diagram and render packages.
//
// Unlike reflection over a struct, this package builds schemas by
// explicit construction with build-time validation.
//
//	doc := jsonschema.Object().
//		Field("workflowName", jsonschema.String().Required()).
//		Field("states", jsonschema.Array(stateSchema).Required()).
//		MustBuild()
package jsonschema
