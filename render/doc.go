// Package render turns a diagram.Diagram (and the rest of a
// WorkflowAnalysis) into the four output formats the CLI exposes:
// mermaid, json, html, and markdown.
package render
