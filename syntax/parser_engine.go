package syntax

// ParserEngine is the generic parser framework of spec.md's C6: a cursor
// over a materialized token buffer plus an embedded Builder, giving both
// C7 (LaTeX) and C8 (math) the same lookahead/consume/expect/error
// primitives. Grounded on the teacher's Parser (syntax/parser.go), minus
// its packrat MemoArena — this toolkit's two grammars are unambiguous
// recursive-descent/Pratt grammars with no need for backtracking memoization
// (see DESIGN.md).
type ParserEngine struct {
	tokens  []Token
	idx     int
	loc     *Locator
	Builder *Builder
}

// NewParserEngine returns an engine positioned at the start of tokens.
// loc is used to compute (row, col) for error messages.
func NewParserEngine(tokens []Token, loc *Locator) *ParserEngine {
	return &ParserEngine{tokens: tokens, loc: loc, Builder: NewBuilder()}
}

// Peek returns the current token and true, or the zero Token and false if
// the cursor has run past the end of the buffer.
func (p *ParserEngine) Peek() (Token, bool) {
	if p.idx >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.idx], true
}

// At reports whether the current token has the given kind.
func (p *ParserEngine) At(kind SyntaxKind) bool {
	tok, ok := p.Peek()
	return ok && tok.Kind == kind
}

// AtAny reports whether the current token's kind is one of kinds.
func (p *ParserEngine) AtAny(kinds ...SyntaxKind) bool {
	tok, ok := p.Peek()
	if !ok {
		return false
	}
	for _, k := range kinds {
		if tok.Kind == k {
			return true
		}
	}
	return false
}

// AtEnd reports whether the cursor has consumed every token.
func (p *ParserEngine) AtEnd() bool { return p.idx >= len(p.tokens) }

// Consume appends the current token to the builder as a leaf and advances
// the cursor. Calling it with no current token is an implementation bug:
// every call site must first confirm a token is present via Peek/At.
func (p *ParserEngine) Consume() {
	tok, ok := p.Peek()
	if !ok {
		panic(&AssertionError{Message: "consume called with no current token"})
	}
	p.Builder.Push(tok.Node())
	p.idx++
}

// Ignore advances the cursor past the current token without appending it
// to the builder. Like Consume, it requires a current token to exist.
func (p *ParserEngine) Ignore() {
	if _, ok := p.Peek(); !ok {
		panic(&AssertionError{Message: "ignore called with no current token"})
	}
	p.idx++
}

// Expect consumes the current token if it has kind; otherwise it returns
// a ParseError naming what was expected and what was found instead, at
// the failing token's (row, col).
func (p *ParserEngine) Expect(kind SyntaxKind) error {
	tok, ok := p.Peek()
	if !ok {
		return p.expectedError(kind.Name(), "end of input", p.endOffset())
	}
	if tok.Kind != kind {
		return p.expectedError(kind.Name(), tok.Kind.Name(), tok.Offset)
	}
	p.Consume()
	return nil
}

// Expect2 accepts either k1 or k2, consuming whichever matched; otherwise
// it reports a ParseError naming both acceptable kinds.
func (p *ParserEngine) Expect2(k1, k2 SyntaxKind) error {
	tok, ok := p.Peek()
	if !ok {
		return p.expectedError(k1.Name()+" or "+k2.Name(), "end of input", p.endOffset())
	}
	if tok.Kind != k1 && tok.Kind != k2 {
		return p.expectedError(k1.Name()+" or "+k2.Name(), tok.Kind.Name(), tok.Offset)
	}
	p.Consume()
	return nil
}

// ExpectIgnore validates that the current token has kind and advances
// past it without appending it to the tree — used to drop a delimiter a
// grouping node's kind already conveys structurally.
func (p *ParserEngine) ExpectIgnore(kind SyntaxKind) error {
	tok, ok := p.Peek()
	if !ok {
		return p.expectedError(kind.Name(), "end of input", p.endOffset())
	}
	if tok.Kind != kind {
		return p.expectedError(kind.Name(), tok.Kind.Name(), tok.Offset)
	}
	p.Ignore()
	return nil
}

func (p *ParserEngine) expectedError(want, got string, offset int) error {
	return newParseError(p.loc, offset, "Expected %s, found %s instead", want, got)
}

// unexpectedError builds a ParseError for a token that cannot start or
// continue whatever production is in progress.
func (p *ParserEngine) unexpectedError(message string) error {
	tok, ok := p.Peek()
	offset := p.endOffset()
	if ok {
		offset = tok.Offset
	}
	return newParseError(p.loc, offset, "%s", message)
}

func (p *ParserEngine) endOffset() int {
	if len(p.tokens) == 0 {
		return 0
	}
	last := p.tokens[len(p.tokens)-1]
	return last.Offset + len(last.Source)
}
