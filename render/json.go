package render

import (
	"encoding/json"

	"github.com/awaitly-go/analyzer/diagram"
	"github.com/awaitly-go/analyzer/jsonschema"
)

// JSON renders d as indented JSON with struct-declaration field order
// (diagram.State/Transition/Diagram already declare fields in the
// workflowName/states/transitions/initialStateId/terminalStateIds order
// the output uses).
func JSON(d diagram.Diagram) (string, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DiagramJSONSchema returns the JSON Schema describing the Diagram DSL
// shape, for --format=json --json-schema.
func DiagramJSONSchema() string {
	return string(jsonschema.Diagram())
}
