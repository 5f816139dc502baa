// Command awaitly-analyze statically analyzes a workflow DSL source file
// and renders its discovered workflows as Mermaid, JSON, or Markdown.
//
// Usage:
//
//	awaitly-analyze [flags] <file.ts>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/awaitly-go/analyzer"
	"github.com/awaitly-go/analyzer/events"
	"github.com/awaitly-go/analyzer/render"
	"github.com/awaitly-go/analyzer/store"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("awaitly-analyze", flag.ContinueOnError)
	fs.Usage = func() { usage(fs) }

	var (
		format         = fs.String("format", "mermaid", "output format: mermaid, json, or markdown")
		keys           = fs.Bool("keys", false, "render node ids instead of human labels")
		direction      = fs.String("direction", "TB", "Mermaid flowchart direction: TB, LR, BT, RL")
		html           = fs.Bool("html", false, "also render an interactive HTML document")
		htmlOutput     = fs.String("html-output", "", "path for the HTML document (default: derived from the input path)")
		outputAdjacent = fs.Bool("output-adjacent", false, "write rendered output to a file next to the input")
		outputShort    = fs.Bool("o", false, "shorthand for --output-adjacent")
		suffix         = fs.String("suffix", "", "suffix inserted before the output file extension")
		noStdout       = fs.Bool("no-stdout", false, "suppress printing rendered output to stdout")
		dslOutput      = fs.String("dsl-output", ".awaitly", "DSL sidecar directory: off, .awaitly, or a path")
		writeDSL       = fs.Bool("write-dsl", false, "write each workflow's Diagram DSL sidecar file")
		jsonSchema     = fs.Bool("json-schema", false, "print the Diagram DSL JSON Schema instead of analyzing")
		verbose        = fs.Bool("verbose", false, "print analysis progress to stderr")
		help           = fs.Bool("h", false, "show usage")
	)

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *help {
		fs.Usage()
		return 0
	}

	if *jsonSchema {
		fmt.Println(render.DiagramJSONSchema())
		return 0
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}
	path := fs.Arg(0)

	logger := loadLogger()

	opts := []analyzer.Option{}
	var eventCh chan events.Event
	if *verbose {
		eventCh = events.NewChannel()
		opts = append(opts, analyzer.WithEvents(eventCh))
		done := make(chan struct{})
		go func() {
			defer close(done)
			for e := range eventCh {
				logProgress(logger, e)
			}
		}()
		defer func() { close(eventCh); <-done }()
	}

	fa, err := analyzer.AnalyzeFile(context.Background(), path, opts...)
	if err != nil {
		logger.Error("analysis failed", "path", path, "error", err)
		return 1
	}

	mermaidOpts := render.MermaidOptions{Direction: render.Direction(strings.ToUpper(*direction)), ShowKeys: *keys}

	var adapter store.Adapter
	if *writeDSL && *dslOutput != "off" {
		adapter = store.NewFileAdapter(dslDir(path, *dslOutput))
	}

	for _, wa := range fa.Workflows {
		rendered, ext, err := renderWorkflow(wa, *format, mermaidOpts)
		if err != nil {
			logger.Error("render failed", "workflow", wa.WorkflowName, "error", err)
			return 1
		}

		if !*noStdout {
			fmt.Println(rendered)
		}
		if *outputAdjacent || *outputShort {
			outPath := adjacentPath(path, wa.WorkflowName, *suffix, ext)
			if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
				logger.Error("write output failed", "path", outPath, "error", err)
				return 1
			}
		}

		if *html {
			var htmlText string
			if *format == "markdown" {
				htmlText, err = render.MarkdownHTML(wa)
			} else {
				htmlText, err = render.HTML(wa.Diagram, mermaidOpts)
			}
			if err != nil {
				logger.Error("render html failed", "workflow", wa.WorkflowName, "error", err)
				return 1
			}
			hp := *htmlOutput
			if hp == "" {
				hp = adjacentPath(path, wa.WorkflowName, *suffix, "html")
			}
			if err := os.WriteFile(hp, []byte(htmlText), 0o644); err != nil {
				logger.Error("write html failed", "path", hp, "error", err)
				return 1
			}
		}

		if adapter != nil {
			data, err := json.Marshal(wa.Diagram)
			if err != nil {
				logger.Error("marshal dsl sidecar failed", "workflow", wa.WorkflowName, "error", err)
				return 1
			}
			if err := adapter.Set(context.Background(), wa.WorkflowName, data); err != nil {
				logger.Error("write dsl sidecar failed", "workflow", wa.WorkflowName, "error", err)
				return 1
			}
		}
	}

	return 0
}

func renderWorkflow(wa analyzer.WorkflowAnalysis, format string, opts render.MermaidOptions) (string, string, error) {
	switch format {
	case "json":
		out, err := render.JSON(wa.Diagram)
		return out, "json", err
	case "markdown":
		out, err := render.Markdown(wa)
		return out, "md", err
	default:
		return render.Mermaid(wa.Diagram, opts), "mmd", nil
	}
}

func adjacentPath(inputPath, workflowName, suffix, ext string) string {
	dir := filepath.Dir(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	name := base + "." + store.SanitizeWorkflowName(workflowName)
	if suffix != "" {
		name += "." + suffix
	}
	return filepath.Join(dir, name+"."+ext)
}

func dslDir(inputPath, dslOutput string) string {
	if dslOutput == ".awaitly" {
		return filepath.Join(filepath.Dir(inputPath), ".awaitly", "dsl")
	}
	return dslOutput
}

func logProgress(logger *slog.Logger, e events.Event) {
	switch e.Type {
	case events.WorkflowDiscovered:
		logger.Info("workflow discovered", "workflow", e.WorkflowName)
	case events.StepVisited:
		logger.Info("step visited", "workflow", e.WorkflowName, "step", e.StepID)
	case events.Warning:
		logger.Info("warning", "workflow", e.WorkflowName, "message", e.Message)
	case events.AnalysisComplete:
		logger.Info("analysis complete", "workflows", e.WorkflowCount)
	}
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "usage: awaitly-analyze [flags] <file.ts>")
	fs.PrintDefaults()
}
