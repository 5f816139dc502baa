package render

// Format identifies a renderer the CLI can select with --format.
type Format string

const (
	FormatMermaid  Format = "mermaid"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Feature is one capability a format may or may not support.
type Feature string

const (
	// FeatureClickable marks formats whose output lets a viewer click a
	// node and inspect the underlying IR metadata (only the interactive
	// HTML renderer).
	FeatureClickable Feature = "clickable"

	// FeatureMachineReadable marks formats a program can parse back
	// (json only — mermaid/html/markdown are for humans).
	FeatureMachineReadable Feature = "machine_readable"

	// FeatureJSONSchema marks formats that can be validated against the
	// jsonschema.Diagram() document.
	FeatureJSONSchema Feature = "json_schema"
)

var formatCapabilities = map[Format]map[Feature]bool{
	FormatMermaid: {
		FeatureClickable:       false,
		FeatureMachineReadable: false,
		FeatureJSONSchema:      false,
	},
	FormatJSON: {
		FeatureClickable:       false,
		FeatureMachineReadable: true,
		FeatureJSONSchema:      true,
	},
	FormatHTML: {
		FeatureClickable:       true,
		FeatureMachineReadable: false,
		FeatureJSONSchema:      false,
	},
	FormatMarkdown: {
		FeatureClickable:       false,
		FeatureMachineReadable: false,
		FeatureJSONSchema:      false,
	},
}

// Supports reports whether format has the given feature.
func Supports(format Format, feature Feature) bool {
	return formatCapabilities[format][feature]
}
