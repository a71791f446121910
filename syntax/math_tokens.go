package syntax

import "regexp"

var mathNumberPattern = regexp.MustCompile(`\A[0-9]+`)

// matchMathSymbol implements the Symbol procedural matcher of spec.md
// §4.4: a single ASCII letter, one letter per token (never a run, unlike
// LaTeX's Word).
func matchMathSymbol(lx *Lexer) (Token, bool, error) {
	r := lx.Peek()
	if !isASCIILetter(r) {
		return Token{}, false, nil
	}
	start := lx.Offset()
	lx.Eat()
	text := lx.source[start:lx.Offset()]
	return Token{Kind: Symbol, Source: text, Offset: start, Data: text}, true, nil
}

// MathTokens is the ordered matcher table for LaTeX math mode (C4).
// Command is declared before Symbol/Number so the backslash-led
// construct always wins, though no conflict is actually possible since
// '\' is neither a letter nor a digit.
var MathTokens = MatcherTable{
	PatternMatcher(MathLineBreak, `//`),
	PatternMatcher(Whitespace, `\s+`),
	ProcMatcher(Command, matchLatexCommand),
	PatternMatcher(LeftCurly, `\{`),
	PatternMatcher(RightCurly, `\}`),
	PatternMatcher(LeftBracket, `\[`),
	PatternMatcher(RightBracket, `\]`),
	PatternMatcher(LeftParen, `\(`),
	PatternMatcher(RightParen, `\)`),
	PatternMatcher(Comma, `,`),
	PatternMatcher(Pipe, `\|`),
	PatternMatcher(Ampersand, `&`),
	PatternMatcher(Eq, `=`),
	PatternMatcher(Plus, `\+`),
	PatternMatcher(Minus, `-`),
	PatternMatcher(Asterisk, `\*`),
	PatternMatcher(LeftAngle, `<`),
	PatternMatcher(RightAngle, `>`),
	PatternMatcher(Underscore, `_`),
	PatternMatcher(Caret, `\^`),
	{Kind: Number, Pattern: mathNumberPattern},
	ProcMatcher(Symbol, matchMathSymbol),
}
