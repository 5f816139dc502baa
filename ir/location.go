package ir

// Location is a source span: byte offsets plus line/column positions.
// Lines are 1-indexed; columns are 0-indexed, matching the parser
// adapter contract (syntax.Node spans).
type Location struct {
	StartByte int
	EndByte   int
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}
