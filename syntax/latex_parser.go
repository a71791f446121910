package syntax

// ParseLatex tokenizes source with the LaTeX token grammar (C3) and parses
// it with the LaTeX structural parser (C7), returning the root of a
// lossless tree. Grounded on the teacher's markup parser
// (syntax/parser_markup.go), adapted from Typst markup to spec.md §4.7's
// LaTeX grammar.
func ParseLatex(source string) (*SyntaxNode, error) {
	tokens, _, err := Tokenize(source, LatexTokens)
	if err != nil {
		return nil, err
	}
	p := NewParserEngine(tokens, NewLocator(source))
	if err := parseLatexRoot(p); err != nil {
		return nil, err
	}
	if !p.AtEnd() {
		return nil, p.unexpectedError("Unexpected trailing input")
	}
	return p.Builder.Finish(), nil
}

func parseLatexRoot(p *ParserEngine) error {
	p.Builder.StartNode(Root)
	for !p.AtEnd() {
		if err := parseContent(p); err != nil {
			return err
		}
	}
	p.Builder.EndNode()
	return nil
}

func consumeTriviaVerbatim(p *ParserEngine) {
	for {
		tok, ok := p.Peek()
		if !ok || !tok.Kind.IsTrivia() {
			return
		}
		p.Consume()
	}
}

func isCommandNamed(p *ParserEngine, name string) bool {
	tok, ok := p.Peek()
	return ok && tok.Kind == Command && tok.Data == name
}

// parseContent implements the Content dispatch of spec.md §4.7.
func parseContent(p *ParserEngine) error {
	tok, ok := p.Peek()
	if !ok {
		return nil
	}
	switch tok.Kind {
	case Whitespace, LineBreak, LineComment:
		p.Consume()
		return nil
	case RightCurly, RightParen, RightBracket:
		return p.unexpectedError("Unmatched punctuation")
	case LeftCurly:
		return parseCurlyGroup(p)
	case LeftParen, LeftBracket:
		return parseMixedGroup(p)
	case Dollar:
		return parseFormula(p)
	case Word:
		return parseText(p)
	case Eq, Pipe, Comma:
		p.Consume()
		return nil
	case Command:
		switch tok.Data {
		case "begin":
			return parseEnvironment(p)
		case "[":
			return parseEquation(p)
		default:
			return parseGenericCommand(p)
		}
	default:
		return p.unexpectedError("Unexpected token")
	}
}

// parseCurlyGroup: `{` Content* `}`; both delimiters are children.
func parseCurlyGroup(p *ParserEngine) error {
	p.Builder.StartNode(CurlyGroup)
	p.Consume()
	for !p.AtEnd() && !p.At(RightCurly) {
		if err := parseContent(p); err != nil {
			return err
		}
	}
	if err := p.Expect(RightCurly); err != nil {
		return err
	}
	p.Builder.EndNode()
	return nil
}

// parseMixedGroup: (`(` | `[`) Content* (`)` | `]`); delimiters may be
// mismatched, per LaTeX notations like `\foo[...]` and `(a, b]`.
func parseMixedGroup(p *ParserEngine) error {
	p.Builder.StartNode(MixedGroup)
	p.Consume()
	for !p.AtEnd() && !p.AtAny(RightCurly, RightParen, RightBracket) && !isCommandNamed(p, "end") {
		if err := parseContent(p); err != nil {
			return err
		}
	}
	if err := p.Expect2(RightParen, RightBracket); err != nil {
		return err
	}
	p.Builder.EndNode()
	return nil
}

// parseBeginBracketGroup: strict `[` Content* `]`, used only for Begin's
// optional bracketed argument.
func parseBeginBracketGroup(p *ParserEngine) error {
	p.Builder.StartNode(BracketGroup)
	p.Consume()
	for !p.AtEnd() && !p.AtAny(RightCurly, RightBracket) && !isCommandNamed(p, "end") {
		if err := parseContent(p); err != nil {
			return err
		}
	}
	if err := p.Expect(RightBracket); err != nil {
		return err
	}
	p.Builder.EndNode()
	return nil
}

// parseFormula: `$` Content* `$` (a single Dollar token covers both `$`
// and `$$`, per spec.md §4.3; see DESIGN.md Open Question 4 for how the
// two are distinguished at the typed-AST layer).
func parseFormula(p *ParserEngine) error {
	p.Builder.StartNode(Formula)
	p.Consume()
	for !p.AtEnd() && !p.At(RightCurly) && !p.At(Dollar) && !isCommandNamed(p, "end") {
		if err := parseContent(p); err != nil {
			return err
		}
	}
	if err := p.Expect(Dollar); err != nil {
		return err
	}
	p.Builder.EndNode()
	return nil
}

// parseEquation: `\[` Content* `\]`; both delimiters are Command tokens
// whose Data is the bracket character, since they are control symbols.
func parseEquation(p *ParserEngine) error {
	p.Builder.StartNode(Equation)
	p.Consume()
	for !p.AtEnd() && !p.At(RightCurly) && !isCommandNamed(p, "]") && !isCommandNamed(p, "end") {
		if err := parseContent(p); err != nil {
			return err
		}
	}
	if err := expectCommandNamed(p, "]"); err != nil {
		return err
	}
	p.Builder.EndNode()
	return nil
}

func expectCommandNamed(p *ParserEngine, name string) error {
	if !isCommandNamed(p, name) {
		tok, ok := p.Peek()
		got := "end of input"
		if ok {
			got = tok.Kind.Name()
		}
		return p.expectedError(`\`+name, got, p.offsetOrEnd())
	}
	p.Consume()
	return nil
}

// offsetOrEnd returns the current token's offset, or the end-of-buffer
// offset if the cursor has run past the last token.
func (p *ParserEngine) offsetOrEnd() int {
	if tok, ok := p.Peek(); ok {
		return tok.Offset
	}
	return p.endOffset()
}

// parseBegin: `\begin` Trivia optional CurlyGroup optional BracketGroup.
func parseBegin(p *ParserEngine) error {
	p.Builder.StartNode(Begin)
	p.Consume()
	consumeTriviaVerbatim(p)
	if p.At(LeftCurly) {
		if err := parseCurlyGroup(p); err != nil {
			return err
		}
	}
	if p.At(LeftBracket) {
		if err := parseBeginBracketGroup(p); err != nil {
			return err
		}
	}
	p.Builder.EndNode()
	return nil
}

// parseEnd: `\end` Trivia optional CurlyGroup.
func parseEnd(p *ParserEngine) error {
	p.Builder.StartNode(End)
	p.Consume()
	consumeTriviaVerbatim(p)
	if p.At(LeftCurly) {
		if err := parseCurlyGroup(p); err != nil {
			return err
		}
	}
	p.Builder.EndNode()
	return nil
}

// parseEnvironment: Begin Content* End. Begin/end names are NOT required
// to match; the structural parser is permissive (DESIGN.md Open
// Question 2) and an opt-in checker lives at the typed-AST layer.
func parseEnvironment(p *ParserEngine) error {
	p.Builder.StartNode(Environment)
	if err := parseBegin(p); err != nil {
		return err
	}
	for !p.AtEnd() && !p.At(RightCurly) && !isCommandNamed(p, "end") {
		if err := parseContent(p); err != nil {
			return err
		}
	}
	if !isCommandNamed(p, "end") {
		tok, ok := p.Peek()
		got := "end of input"
		if ok {
			got = tok.Kind.Name()
		}
		return p.expectedError(`\end`, got, p.offsetOrEnd())
	}
	if err := parseEnd(p); err != nil {
		return err
	}
	p.Builder.EndNode()
	return nil
}

// parseGenericCommand: `\name` followed by zero or more argument groups.
func parseGenericCommand(p *ParserEngine) error {
	p.Builder.StartNode(Command)
	p.Consume()
	consumeTriviaVerbatim(p)
	for p.At(LeftCurly) || p.AtAny(LeftBracket, LeftParen) {
		if p.At(LeftCurly) {
			if err := parseCurlyGroup(p); err != nil {
				return err
			}
		} else {
			if err := parseMixedGroup(p); err != nil {
				return err
			}
		}
	}
	p.Builder.EndNode()
	return nil
}

// parseText: one leading Word then zero or more consecutive text-like
// tokens.
func parseText(p *ParserEngine) error {
	p.Builder.StartNode(Text)
	p.Consume()
	for p.AtAny(Word, LineBreak, LineComment, Whitespace, Comma, Pipe) {
		p.Consume()
	}
	p.Builder.EndNode()
	return nil
}
