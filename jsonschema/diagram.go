package jsonschema

import "encoding/json"

// Diagram returns the JSON Schema describing the Diagram DSL document
// shape produced by the diagram package: {states, transitions,
// initialStateId, terminalStateIds}.
func Diagram() json.RawMessage {
	state := Object().
		Field("id", String().Required()).
		Field("label", String().Required()).
		Field("type", String().Enum("initial", "step", "decision", "join", "terminal").Required()).
		AdditionalProperties(false)

	transition := Object().
		Field("fromStateId", String().Required()).
		Field("toStateId", String().Required()).
		Field("event", String().Required()).
		Field("conditionLabel", String()).
		AdditionalProperties(false)

	doc := Object().
		Desc("A lowered workflow state machine.").
		Field("workflowName", String().Required()).
		Field("states", Array(state).MinItems(1).Required()).
		Field("transitions", Array(transition).Required()).
		Field("initialStateId", String().Required()).
		Field("terminalStateIds", Array(String()).MinItems(1).Required()).
		AdditionalProperties(false)

	return doc.MustBuild()
}
