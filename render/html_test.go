package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLEmbedsWorkflowDataAndMermaidScript(t *testing.T) {
	out, err := HTML(sampleDiagram(), MermaidOptions{})
	require.NoError(t, err)

	assert.Contains(t, out, "mermaid.min.js")
	assert.Contains(t, out, `id="workflow-data"`)
	assert.Contains(t, out, `"workflowName":"orderWorkflow"`)
	assert.True(t, strings.Contains(out, "flowchart TB"))
}
