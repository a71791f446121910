package syntax

import "regexp"

// isASCIILetter reports whether r is an ASCII letter, per spec.md's ban on
// Unicode-class classification for command names and math symbols.
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// latexWordExclusions is the character class a Word token's maximal run
// must avoid: whitespace, and every punctuation rune LaTeX surface syntax
// otherwise tokenizes on its own.
const latexWordExclusions = `\s\\%{},$\[\]()=|`

var latexWordPattern = regexp.MustCompile(`\A[^` + latexWordExclusions + `]+`)

// matchLatexCommand implements the Command procedural matcher of spec.md
// §4.3: control words are a backslash followed by a maximal run of ASCII
// letters, control symbols are a backslash followed by exactly one
// non-letter character. Both payload variants store Data without the
// leading backslash (Open Question 3 in DESIGN.md).
func matchLatexCommand(lx *Lexer) (Token, bool, error) {
	if lx.Peek() != '\\' {
		return Token{}, false, nil
	}
	start := lx.Offset()
	lx.Eat()
	if lx.Done() {
		return Token{}, false, lx.errorAt(start, "unexpected end of input after \\")
	}
	next := lx.Peek()
	if !isASCIILetter(next) {
		lx.Eat()
		text := lx.source[start:lx.Offset()]
		return Token{Kind: Command, Source: text, Offset: start, Data: string(next)}, true, nil
	}
	letters := lx.EatWhile(isASCIILetter)
	if letters == "" {
		return Token{}, false, lx.errorAt(start, "unexpected backslash")
	}
	text := lx.source[start:lx.Offset()]
	return Token{Kind: Command, Source: text, Offset: start, Data: letters}, true, nil
}

// LatexTokens is the ordered matcher table for LaTeX surface syntax
// (C3). Command is declared before Word so that the backslash-led
// construct wins; every other single-character delimiter is declared
// before Word for the same reason (spec.md's "ordering matters" rule).
var LatexTokens = MatcherTable{
	PatternMatcher(LineBreak, `[\r\n]+`),
	PatternMatcher(Whitespace, `[^\S\r\n]+`),
	PatternMatcher(LineComment, `%[^\n]*`),
	ProcMatcher(Command, matchLatexCommand),
	PatternMatcher(LeftCurly, `\{`),
	PatternMatcher(RightCurly, `\}`),
	PatternMatcher(LeftBracket, `\[`),
	PatternMatcher(RightBracket, `\]`),
	PatternMatcher(LeftParen, `\(`),
	PatternMatcher(RightParen, `\)`),
	PatternMatcher(Comma, `,`),
	PatternMatcher(Pipe, `\|`),
	PatternMatcher(Eq, `=`),
	PatternMatcher(Dollar, `\$\$?`),
	{Kind: Word, Pattern: latexWordPattern},
}
