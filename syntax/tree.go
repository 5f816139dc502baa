package syntax

import (
	"fmt"

	"github.com/awaitly-go/analyzer/ir"
)

// Tree is the parsed syntax tree of one source file, plus the raw bytes
// needed for Node.Text() slicing.
type Tree struct {
	Source []byte
	Path   string
	Root   *Node
}

// ParseError is returned when the source cannot be tokenized/parsed far
// enough to produce a usable tree. Per spec.md §7 this is the one fatal,
// per-file error kind. Parse recovers the parser's internal panic and
// returns it as an error; analyzer.Analyze passes it on to its caller as
// an analyzer.ParseError.
type ParseError struct {
	Path    string
	Line    int
	Col     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Col, e.Message)
}

// Parse tokenizes and parses source text. path is a virtual path used
// only for diagnostics; it need not exist on disk.
func Parse(source []byte, path string) (tree *Tree, err error) {
	tree = &Tree{Source: source, Path: path}
	toks := lexAll(source)
	p := &parser{toks: toks, tree: tree}

	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*ParseError); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()

	tree.Root = p.parseProgram()
	return tree, nil
}

func spanLoc(start, end token) ir.Location {
	return ir.Location{
		StartByte: start.start, EndByte: end.end,
		StartLine: start.line, StartCol: start.col,
		EndLine: end.eline, EndCol: end.ecol,
	}
}
