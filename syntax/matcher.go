package syntax

import (
	"regexp"
	"unicode/utf8"
)

// Token is a single lexical unit: the kind drawn from a grammar's closed
// set, the exact source substring consumed, the substring's absolute byte
// offset, and an optional kind-specific payload (e.g. a command's name,
// absent for tokens produced by a regular-language pattern).
type Token struct {
	Kind   SyntaxKind
	Data   string
	Source string
	Offset int
}

// Node promotes a Token into a leaf SyntaxNode.
func (t Token) Node() *SyntaxNode { return NewLeaf(t.Kind, t.Source, t.Offset) }

// ProceduralMatcher inspects lexer state starting at the current cursor
// and either returns a token, advancing the lexer's cursor by the
// consumed length, or reports no match and leaves state untouched. A
// non-nil err aborts the whole lex (used for command-name violations,
// which are lexical errors, not "no match").
type ProceduralMatcher func(lx *Lexer) (tok Token, matched bool, err error)

// Matcher is one entry of a lexer's matcher table: either a
// regular-language pattern anchored at the current cursor, or a
// procedural routine. Exactly one of Pattern/Proc is set.
type Matcher struct {
	Kind    SyntaxKind
	Pattern *regexp.Regexp
	Proc    ProceduralMatcher
}

// PatternMatcher builds a regex-backed matcher for kind. pattern must not
// itself anchor at the start; it is compiled with an implicit `\A` prefix
// so it only ever matches a prefix of the remaining input, never
// backtracking into already-consumed bytes, per spec.md's anchored-match
// requirement.
func PatternMatcher(kind SyntaxKind, pattern string) Matcher {
	return Matcher{Kind: kind, Pattern: regexp.MustCompile(`\A(?:` + pattern + `)`)}
}

// ProcMatcher builds a procedural matcher for kind.
func ProcMatcher(kind SyntaxKind, fn ProceduralMatcher) Matcher {
	return Matcher{Kind: kind, Proc: fn}
}

// MatcherTable is an ordered list of matchers. Declaration order is the
// ordinal priority next_token uses: the first matcher to succeed wins, so
// specific patterns (e.g. Command's leading backslash) must be declared
// before catch-alls (e.g. Word) that would otherwise also match.
type MatcherTable []Matcher

// Lexer drives a MatcherTable over an immutable source buffer, producing
// an ordered token sequence. It owns the byte cursor directly rather than
// delegating to a separate scanner type: C2's procedural matchers only
// ever need to peek, eat, or eat-while at the cursor, so that handful of
// operations lives here instead of behind its own abstraction.
type Lexer struct {
	source string
	cursor int
	table  MatcherTable
	loc    *Locator
}

// NewLexer returns a Lexer over source driven by table.
func NewLexer(source string, table MatcherTable) *Lexer {
	return &Lexer{source: source, table: table, loc: NewLocator(source)}
}

// Source returns the full, immutable source buffer.
func (lx *Lexer) Source() string { return lx.source }

// Offset returns the current absolute byte offset of the cursor. index
// and offset coincide in this implementation (spec.md's C2 keeps them as
// distinct fields only to allow a future preprocessing pass to diverge
// them without reshaping the engine); here the cursor serves as both at
// once.
func (lx *Lexer) Offset() int { return lx.cursor }

// Rest returns the unconsumed remainder of the source.
func (lx *Lexer) Rest() string { return lx.source[lx.cursor:] }

// Done reports whether the cursor has reached the end of the source.
func (lx *Lexer) Done() bool { return lx.cursor >= len(lx.source) }

// Peek returns the next rune without consuming it, or 0 at end of input.
func (lx *Lexer) Peek() rune {
	if lx.Done() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(lx.source[lx.cursor:])
	return r
}

// Eat consumes and returns the next rune, or 0 at end of input.
func (lx *Lexer) Eat() rune {
	if lx.Done() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(lx.source[lx.cursor:])
	lx.cursor += size
	return r
}

// EatWhile consumes runes while pred holds, returning the consumed text.
func (lx *Lexer) EatWhile(pred func(rune) bool) string {
	start := lx.cursor
	for !lx.Done() && pred(lx.Peek()) {
		lx.Eat()
	}
	return lx.source[start:lx.cursor]
}

// advance moves the cursor forward by n bytes, used for regex-pattern
// matches that already know their consumed length.
func (lx *Lexer) advance(n int) { lx.cursor += n }

// errorAt builds a LexError with a 1-indexed (row, col) for an offset in
// this lexer's source.
func (lx *Lexer) errorAt(offset int, format string, args ...any) *LexError {
	return newLexError(lx.loc, offset, format, args...)
}

// NextToken returns the next token, or the EOF sentinel if the cursor has
// reached the end of the source. If no matcher in the table matches at a
// non-end-of-input cursor, it also returns the EOF sentinel; the caller
// treats unconsumed leftover input as a lexical error at a higher layer
// if desired (spec.md §4.2).
func (lx *Lexer) NextToken() (Token, error) {
	if lx.Done() {
		return Token{Kind: EOF, Offset: lx.Offset()}, nil
	}
	for _, m := range lx.table {
		if m.Pattern != nil {
			loc := m.Pattern.FindStringIndex(lx.Rest())
			if loc == nil || loc[1] == 0 {
				continue
			}
			start := lx.Offset()
			text := lx.Rest()[:loc[1]]
			lx.advance(loc[1])
			return Token{Kind: m.Kind, Source: text, Offset: start}, nil
		}
		start := lx.Offset()
		tok, matched, err := m.Proc(lx)
		if err != nil {
			return Token{}, err
		}
		if matched {
			if tok.Source != "" {
				tok.Offset = start
			}
			return tok, nil
		}
	}
	return Token{Kind: EOF, Offset: lx.Offset()}, nil
}

// Tokenize repeatedly invokes NextToken until end-of-input, returning the
// accumulated ordered sequence. Empty input yields the empty sequence.
// leftover is the number of unconsumed trailing bytes, which is nonzero
// only if some byte in the middle of the source matched no matcher (a
// lexical dead end that the caller may treat as an error).
func Tokenize(source string, table MatcherTable) (tokens []Token, leftover int, err error) {
	lx := NewLexer(source, table)
	for {
		tok, tokErr := lx.NextToken()
		if tokErr != nil {
			return tokens, len(source) - lx.cursor, tokErr
		}
		if tok.Kind == EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, len(source) - lx.cursor, nil
}
