package syntax

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokKeyword
	tokNumber
	tokString
	tokTemplate // backtick string; noSub is true when it had no ${...}
	tokPunct
)

type token struct {
	kind   tokenKind
	text   string // raw text as written, including quotes for strings
	value  string // unquoted value for strings and templates; backslash escapes are kept as written
	noSub  bool   // true if a template string had no ${...} substitutions
	start  int
	end    int
	line   int // 1-indexed, start line
	col    int // 0-indexed, start column
	eline  int
	ecol   int
}

var keywords = map[string]bool{
	"function": true, "return": true, "if": true, "else": true,
	"for": true, "while": true, "in": true, "of": true,
	"const": true, "let": true, "var": true, "new": true,
	"async": true, "await": true, "typeof": true, "switch": true,
	"case": true, "default": true, "true": true, "false": true,
	"null": true, "undefined": true, "this": true, "break": true,
	"continue": true, "throw": true, "try": true, "catch": true,
	"finally": true, "do": true, "instanceof": true, "void": true,
	"delete": true, "yield": true, "export": true, "import": true,
	"from": true, "as": true, "type": true, "interface": true,
}

type lexer struct {
	src  []byte
	pos  int
	line int
	col  int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src, pos: 0, line: 1, col: 0}
}

func (l *lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekByteAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *lexer) advance() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return b
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// skipTrivia consumes whitespace and comments.
func (l *lexer) skipTrivia() {
	for l.pos < len(l.src) {
		b := l.peekByte()
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			l.advance()
		case b == '/' && l.peekByteAt(1) == '/':
			for l.pos < len(l.src) && l.peekByte() != '\n' {
				l.advance()
			}
		case b == '/' && l.peekByteAt(1) == '*':
			l.advance()
			l.advance()
			for l.pos < len(l.src) && !(l.peekByte() == '*' && l.peekByteAt(1) == '/') {
				l.advance()
			}
			if l.pos < len(l.src) {
				l.advance()
				l.advance()
			}
		default:
			return
		}
	}
}

// next scans and returns the next token.
func (l *lexer) next() token {
	l.skipTrivia()
	startPos, startLine, startCol := l.pos, l.line, l.col
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, start: startPos, end: startPos, line: startLine, col: startCol, eline: startLine, ecol: startCol}
	}

	b := l.peekByte()

	switch {
	case isIdentStart(b):
		for l.pos < len(l.src) && isIdentPart(l.peekByte()) {
			l.advance()
		}
		text := string(l.src[startPos:l.pos])
		kind := tokIdent
		if keywords[text] {
			kind = tokKeyword
		}
		return l.finish(kind, startPos, startLine, startCol, text, text, false)

	case isDigit(b) || (b == '.' && isDigit(l.peekByteAt(1))):
		for l.pos < len(l.src) && (isDigit(l.peekByte()) || l.peekByte() == '.' || l.peekByte() == '_' ||
			l.peekByte() == 'x' || l.peekByte() == 'X' || l.peekByte() == 'e' || l.peekByte() == 'E' ||
			(l.peekByte() >= 'a' && l.peekByte() <= 'f') || (l.peekByte() >= 'A' && l.peekByte() <= 'F')) {
			l.advance()
		}
		text := string(l.src[startPos:l.pos])
		return l.finish(tokNumber, startPos, startLine, startCol, text, text, false)

	case b == '"' || b == '\'':
		quote := b
		l.advance()
		var val []byte
		for l.pos < len(l.src) && l.peekByte() != quote {
			c := l.advance()
			if c == '\\' && l.pos < len(l.src) {
				val = append(val, c)
				c2 := l.advance()
				val = append(val, c2)
				continue
			}
			val = append(val, c)
		}
		if l.pos < len(l.src) {
			l.advance()
		}
		text := string(l.src[startPos:l.pos])
		return l.finish(tokString, startPos, startLine, startCol, text, string(val), false)

	case b == '`':
		l.advance()
		var val []byte
		noSub := true
		for l.pos < len(l.src) && l.peekByte() != '`' {
			if l.peekByte() == '$' && l.peekByteAt(1) == '{' {
				noSub = false
				depth := 1
				l.advance()
				l.advance()
				for l.pos < len(l.src) && depth > 0 {
					if l.peekByte() == '{' {
						depth++
					} else if l.peekByte() == '}' {
						depth--
						if depth == 0 {
							l.advance()
							break
						}
					}
					l.advance()
				}
				continue
			}
			c := l.advance()
			if c == '\\' && l.pos < len(l.src) {
				val = append(val, c)
				val = append(val, l.advance())
				continue
			}
			val = append(val, c)
		}
		if l.pos < len(l.src) {
			l.advance()
		}
		text := string(l.src[startPos:l.pos])
		return l.finish(tokTemplate, startPos, startLine, startCol, text, string(val), noSub)

	default:
		// Multi-char punctuation, longest match first.
		for _, op := range multiCharOps {
			if matchAt(l.src, l.pos, op) {
				for range op {
					l.advance()
				}
				return l.finish(tokPunct, startPos, startLine, startCol, op, op, false)
			}
		}
		l.advance()
		text := string(b)
		return l.finish(tokPunct, startPos, startLine, startCol, text, text, false)
	}
}

func matchAt(src []byte, pos int, s string) bool {
	if pos+len(s) > len(src) {
		return false
	}
	return string(src[pos:pos+len(s)]) == s
}

var multiCharOps = []string{
	"?.(", "?.[", "=>", "===", "!==", "**=", "...", "&&=", "||=", "??=",
	"<<=", ">>=", "==", "!=", "<=", ">=", "&&", "||", "??", "?.",
	"+=", "-=", "*=", "/=", "%=", "++", "--", "**",
}

// lexAll tokenizes the entire source, including a trailing EOF token.
func lexAll(src []byte) []token {
	l := newLexer(src)
	var toks []token
	for {
		t := l.next()
		toks = append(toks, t)
		if t.kind == tokEOF {
			break
		}
	}
	return toks
}

func (l *lexer) finish(kind tokenKind, start, line, col int, text, value string, noSub bool) token {
	return token{
		kind: kind, text: text, value: value, noSub: noSub,
		start: start, end: l.pos,
		line: line, col: col, eline: l.line, ecol: l.col,
	}
}
