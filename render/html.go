package render

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/awaitly-go/analyzer/diagram"
)

var htmlTemplate = template.Must(template.New("workflow").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"></script>
</head>
<body>
<pre class="mermaid">
{{.MermaidText}}
</pre>
<script id="workflow-data" type="application/json">{{.WorkflowDataJSON}}</script>
<script>
mermaid.initialize({ startOnLoad: true });
const WORKFLOW_DATA = JSON.parse(document.getElementById('workflow-data').textContent);
document.addEventListener('click', function (ev) {
  const target = ev.target.closest('[id]');
  if (!target || !WORKFLOW_DATA.states[target.id]) return;
  console.log('workflow node', WORKFLOW_DATA.states[target.id]);
});
</script>
</body>
</html>
`))

type htmlData struct {
	Title            string
	MermaidText      string
	WorkflowDataJSON template.JS
}

// HTML renders a self-contained interactive HTML document: Mermaid text
// plus a WORKFLOW_DATA JSON blob keyed by mermaidId, so click handlers
// can map a rendered node back to its IR metadata.
func HTML(d diagram.Diagram, opts MermaidOptions) (string, error) {
	states := make(map[string]diagram.State, len(d.States))
	for _, s := range d.States {
		states[s.ID] = s
	}
	blob := map[string]any{
		"workflowName": d.WorkflowName,
		"states":       states,
		"transitions":  d.Transitions,
	}
	raw, err := json.Marshal(blob)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = htmlTemplate.Execute(&buf, htmlData{
		Title:            d.WorkflowName,
		MermaidText:      Mermaid(d, opts),
		WorkflowDataJSON: template.JS(raw),
	})
	return buf.String(), err
}
