package walk

import (
	"github.com/awaitly-go/analyzer/discover"
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

// options is the decoded form of a DSL call's trailing options object
// literal. Every field records "absent" (zero value, present=false) as
// distinct from "present but non-literal" (Dynamic sentinel), per
// SPEC_FULL.md §4.3 "Option extraction".
type options struct {
	obj *syntax.Node

	key        string
	hasKey     bool
	name       string
	hasName    bool
	errors     []string
	hasErrors  bool
	out        string
	hasOut     bool
	reads      []string
	hasReads   bool
	retry      ir.RetryOptions
	hasRetry   bool
	timeout    ir.TimeoutOptions
	hasTimeout bool
	dep        string
	hasDep     bool
	collect    string
	hasCollect bool

	maxIterations    ir.OptionValue
	hasMaxIterations bool
	stepIDPattern    string
	hasStepIDPattern bool

	runOrItem *syntax.Node // step.forEach's `run` or `item` callback
}

// parseOptions extracts every literal field SPEC_FULL.md §4.3 names from
// an options object literal, demanding literal form for each; any
// non-literal value present in the source still records presence with a
// Dynamic sentinel rather than being silently dropped.
func (s *state) parseOptions(obj *syntax.Node) options {
	o := options{obj: obj}
	if obj == nil || obj.Kind != syntax.KindObject {
		return o
	}
	for _, prop := range obj.Properties() {
		if prop.Kind != syntax.KindPair {
			continue
		}
		key := discover.KeyName(prop.Key())
		val := prop.Value()
		switch key {
		case "key":
			o.hasKey = true
			if v, ok := val.StringValue(); ok {
				o.key = v
			} else {
				o.key = ir.Dynamic
			}
		case "name":
			o.hasName = true
			if v, ok := val.StringValue(); ok {
				o.name = v
			} else {
				o.name = ir.Dynamic
			}
		case "errors":
			o.hasErrors = true
			o.errors = discover.ResolveStringListOrTagsRef(val, s.tagsConsts)
		case "out":
			o.hasOut = true
			if v, ok := val.StringValue(); ok {
				o.out = v
			} else {
				o.out = ir.Dynamic
			}
		case "reads":
			o.hasReads = true
			o.reads = literalStringList(val)
		case "retry":
			o.hasRetry = true
			o.retry = ir.RetryOptions(literalOptionMap(val))
		case "timeout":
			o.hasTimeout = true
			o.timeout = ir.TimeoutOptions(literalOptionMap(val))
		case "dep":
			o.hasDep = true
			if v, ok := val.StringValue(); ok {
				o.dep = v
			} else {
				o.dep = ir.Dynamic
			}
		case "collect":
			o.hasCollect = true
			if v, ok := val.StringValue(); ok {
				o.collect = v
			} else {
				o.collect = ir.Dynamic
			}
		case "maxIterations":
			o.hasMaxIterations = true
			o.maxIterations = literalOptionValue(val)
		case "stepIdPattern":
			o.hasStepIDPattern = true
			if v, ok := val.StringValue(); ok {
				o.stepIDPattern = v
			} else {
				o.stepIDPattern = ir.Dynamic
			}
		case "run", "item":
			o.runOrItem = val
		}
	}
	return o
}

func literalStringList(n *syntax.Node) []string {
	if n == nil || n.Kind != syntax.KindArray {
		return nil
	}
	var out []string
	for _, el := range n.Elements() {
		if v, ok := el.StringValue(); ok {
			out = append(out, v)
		}
	}
	return out
}

// literalOptionMap decodes an options sub-object (retry/timeout) into a
// map of OptionValue, demanding literal values. Numeric options accept
// number literals only; anything else becomes the Dynamic sentinel.
func literalOptionMap(n *syntax.Node) map[string]ir.OptionValue {
	if n == nil || n.Kind != syntax.KindObject {
		return nil
	}
	m := map[string]ir.OptionValue{}
	for _, prop := range n.Properties() {
		if prop.Kind != syntax.KindPair {
			continue
		}
		key := discover.KeyName(prop.Key())
		m[key] = literalOptionValue(prop.Value())
	}
	return m
}

func literalOptionValue(n *syntax.Node) ir.OptionValue {
	if n == nil {
		return ir.OptionValue{Kind: ir.OptionDynamic}
	}
	if v, ok := n.NumberValue(); ok {
		return ir.OptionValue{Kind: ir.OptionNumber, Num: v}
	}
	if v, ok := n.StringValue(); ok {
		return ir.OptionValue{Kind: ir.OptionString, Str: v}
	}
	if v, ok := n.BoolValue(); ok {
		return ir.OptionValue{Kind: ir.OptionBool, Bool: v}
	}
	return ir.OptionValue{Kind: ir.OptionDynamic}
}
