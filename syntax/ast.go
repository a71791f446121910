package syntax

import (
	"strconv"
	"strings"
)

// This file is C9: typed wrappers over the green tree. Each wrapper holds
// a *SyntaxNode known to have a particular kind and exposes accessors
// tailored to that kind's shape; constructing one from a node of the
// wrong kind fails rather than panicking (I3), per the teacher's
// XxxExprFromNode pattern (syntax/ast.go). Wrapper types carry an "Expr"
// suffix so they never collide with the SyntaxKind constants of the same
// name (Begin, End, Environment, Formula, BinOp, Equal, Symbol).

// BeginExpr wraps an Environment's opening `\begin` node.
type BeginExpr struct{ node *SyntaxNode }

// BeginExprFromNode wraps node as a BeginExpr, or returns ok=false if
// node is not kind Begin.
func BeginExprFromNode(node *SyntaxNode) (BeginExpr, bool) {
	if node == nil || node.Kind() != Begin {
		return BeginExpr{}, false
	}
	return BeginExpr{node: node}, true
}

// Node returns the wrapped green node.
func (b BeginExpr) Node() *SyntaxNode { return b.node }

// Name returns the environment name: the text of the first Word token
// found among Begin's children (directly, or inside a CurlyGroup child),
// or "" if none is present.
func (b BeginExpr) Name() string { return firstWordText(b.node) }

// EndExpr wraps an Environment's closing `\end` node.
type EndExpr struct{ node *SyntaxNode }

// EndExprFromNode wraps node as an EndExpr, or returns ok=false if node
// is not kind End.
func EndExprFromNode(node *SyntaxNode) (EndExpr, bool) {
	if node == nil || node.Kind() != End {
		return EndExpr{}, false
	}
	return EndExpr{node: node}, true
}

// Node returns the wrapped green node.
func (e EndExpr) Node() *SyntaxNode { return e.node }

// Name returns the environment name named by this `\end`, by the same
// rule as BeginExpr.Name.
func (e EndExpr) Name() string { return firstWordText(e.node) }

// firstWordText returns the text of the first Word token reachable from
// node, searching into any CurlyGroup child (where `\begin` and `\end`
// carry their argument) and the Text node the parser wraps that argument's
// words in, or "" if none exists.
func firstWordText(node *SyntaxNode) string {
	for _, c := range node.Children() {
		if c.Kind() == Word {
			return c.Text()
		}
		if c.Kind() == CurlyGroup {
			for _, gc := range c.Children() {
				if gc.Kind() == Word {
					return gc.Text()
				}
				if gc.Kind() == Text {
					for _, w := range gc.Children() {
						if w.Kind() == Word {
							return w.Text()
						}
					}
				}
			}
		}
	}
	return ""
}

// EnvironmentExpr wraps a parsed `\begin...\end` block.
type EnvironmentExpr struct{ node *SyntaxNode }

// EnvironmentExprFromNode wraps node as an EnvironmentExpr, or returns
// ok=false if node is not kind Environment.
func EnvironmentExprFromNode(node *SyntaxNode) (EnvironmentExpr, bool) {
	if node == nil || node.Kind() != Environment {
		return EnvironmentExpr{}, false
	}
	return EnvironmentExpr{node: node}, true
}

// Node returns the wrapped green node.
func (e EnvironmentExpr) Node() *SyntaxNode { return e.node }

// Begin returns the environment's BeginExpr child, or ok=false if somehow
// absent (never true for a tree produced by ParseLatex).
func (e EnvironmentExpr) Begin() (BeginExpr, bool) {
	for _, c := range e.node.Children() {
		if b, ok := BeginExprFromNode(c); ok {
			return b, true
		}
	}
	return BeginExpr{}, false
}

// End returns the environment's EndExpr child, or ok=false if somehow
// absent.
func (e EnvironmentExpr) End() (EndExpr, bool) {
	for _, c := range e.node.Children() {
		if end, ok := EndExprFromNode(c); ok {
			return end, true
		}
	}
	return EndExpr{}, false
}

// BodyText returns the lossless source text of every child strictly
// between Begin and End (C9a), via Concat.
func (e EnvironmentExpr) BodyText() string {
	children := e.node.Children()
	start, end := -1, -1
	for i, c := range children {
		switch c.Kind() {
		case Begin:
			start = i
		case End:
			end = i
		}
	}
	if start == -1 || end == -1 || end <= start+1 {
		return ""
	}
	var text string
	for _, c := range children[start+1 : end] {
		text += Concat(c)
	}
	return text
}

// NamesMatch is the C7a advisory checker: it reports whether Begin.Name()
// and End.Name() agree, returning false (never an error) when either
// name is absent or they differ. The structural parser never enforces
// this; callers that want it opt in by calling this method.
func (e EnvironmentExpr) NamesMatch() bool {
	b, ok := e.Begin()
	if !ok {
		return false
	}
	end, ok := e.End()
	if !ok {
		return false
	}
	name := b.Name()
	return name != "" && name == end.Name()
}

// FormulaExpr wraps a parsed `$...$` or `$$...$$` formula.
type FormulaExpr struct{ node *SyntaxNode }

// FormulaExprFromNode wraps node as a FormulaExpr, or returns ok=false if
// node is not kind Formula.
func FormulaExprFromNode(node *SyntaxNode) (FormulaExpr, bool) {
	if node == nil || node.Kind() != Formula {
		return FormulaExpr{}, false
	}
	return FormulaExpr{node: node}, true
}

// Node returns the wrapped green node.
func (f FormulaExpr) Node() *SyntaxNode { return f.node }

// Display reports whether this formula is display math (C7b): both
// delimiters are `$$` rather than `$`. Mismatched delimiter pairs (one
// `$`, one `$$`) are treated as non-display, consistent with C7's
// permissive delimiter handling.
func (f FormulaExpr) Display() bool {
	children := f.node.Children()
	if len(children) < 2 {
		return false
	}
	first, last := children[0], children[len(children)-1]
	return first.Kind() == Dollar && last.Kind() == Dollar &&
		first.Text() == "$$" && last.Text() == "$$"
}

// MathExpr is the common interface implemented by every typed math AST
// wrapper (LiteralExpr, SymbolExpr, BinOpExpr, EqualExpr), mirroring
// spec.md §4.9's typed view over math green nodes.
type MathExpr interface {
	Node() *SyntaxNode
}

// LiteralExpr wraps a bare Number token.
type LiteralExpr struct{ node *SyntaxNode }

// LiteralExprFromNode wraps node as a LiteralExpr, or returns ok=false if
// node is not kind Number.
func LiteralExprFromNode(node *SyntaxNode) (LiteralExpr, bool) {
	if node == nil || node.Kind() != Number {
		return LiteralExpr{}, false
	}
	return LiteralExpr{node: node}, true
}

// Node returns the wrapped green node.
func (l LiteralExpr) Node() *SyntaxNode { return l.node }

// Value parses the literal's decimal digits. An error here would indicate
// a bug in the Number matcher, which only ever consumes `[0-9]+`.
func (l LiteralExpr) Value() int {
	v, err := strconv.Atoi(l.node.Text())
	if err != nil {
		panic(&AssertionError{Message: "Number token holds non-decimal text: " + l.node.Text()})
	}
	return v
}

// SymbolExpr wraps a bare single-letter Symbol token.
type SymbolExpr struct{ node *SyntaxNode }

// SymbolExprFromNode wraps node as a SymbolExpr, or returns ok=false if
// node is not kind Symbol.
func SymbolExprFromNode(node *SyntaxNode) (SymbolExpr, bool) {
	if node == nil || node.Kind() != Symbol {
		return SymbolExpr{}, false
	}
	return SymbolExpr{node: node}, true
}

// Node returns the wrapped green node.
func (s SymbolExpr) Node() *SyntaxNode { return s.node }

// Name returns the symbol's single letter.
func (s SymbolExpr) Name() string { return s.node.Text() }

// BinOpExpr wraps a math binary operation other than equality: children
// are exactly [lhs, operator token, rhs].
type BinOpExpr struct{ node *SyntaxNode }

// BinOpExprFromNode wraps node as a BinOpExpr, or returns ok=false if
// node is not kind BinOp or does not have exactly three children.
func BinOpExprFromNode(node *SyntaxNode) (BinOpExpr, bool) {
	if node == nil || node.Kind() != BinOp || len(node.Children()) != 3 {
		return BinOpExpr{}, false
	}
	return BinOpExpr{node: node}, true
}

// Node returns the wrapped green node.
func (b BinOpExpr) Node() *SyntaxNode { return b.node }

// Op identifies which operator this node wraps, re-deriving it from the
// operator token's kind/data the same way mathOpFor assigned it during
// parsing.
func (b BinOpExpr) Op() InfixOp {
	opTok := b.node.Children()[1]
	data := opTok.Text()
	if opTok.Kind() == Command {
		// A Command token's Data is its source without the leading backslash.
		data = strings.TrimPrefix(data, `\`)
	}
	_, op, _, _, _ := mathOpFor(Token{Kind: opTok.Kind(), Data: data})
	return op
}

// Lhs returns the typed left operand, per spec.md §4.9's coercion order:
// Literal, then Symbol, then BinOp, then Equal.
func (b BinOpExpr) Lhs() MathExpr { return coerceMathExpr(b.node.Children()[0]) }

// Rhs returns the typed right operand, by the same coercion order.
func (b BinOpExpr) Rhs() MathExpr { return coerceMathExpr(b.node.Children()[2]) }

// EqualExpr wraps a math equality comparison: children are exactly
// [lhs, `=` token, rhs]. Kept as its own wrapper kind, distinct from
// BinOp, per DESIGN.md's resolution of the Eq/Equal Open Question.
type EqualExpr struct{ node *SyntaxNode }

// EqualExprFromNode wraps node as an EqualExpr, or returns ok=false if
// node is not kind Equal or does not have exactly three children.
func EqualExprFromNode(node *SyntaxNode) (EqualExpr, bool) {
	if node == nil || node.Kind() != Equal || len(node.Children()) != 3 {
		return EqualExpr{}, false
	}
	return EqualExpr{node: node}, true
}

// Node returns the wrapped green node.
func (e EqualExpr) Node() *SyntaxNode { return e.node }

// Lhs returns the typed left operand, by the same coercion order as
// BinOpExpr.Lhs.
func (e EqualExpr) Lhs() MathExpr { return coerceMathExpr(e.node.Children()[0]) }

// Rhs returns the typed right operand, by the same coercion order as
// BinOpExpr.Rhs.
func (e EqualExpr) Rhs() MathExpr { return coerceMathExpr(e.node.Children()[2]) }

// coerceMathExpr wraps node as whichever typed math expression its kind
// matches, trying Literal, Symbol, BinOp, then Equal in turn (spec.md
// §4.9), or returning the bare node wrapped in rawExpr if none match —
// e.g. a Grouping node or a generic Command token carried through
// unparsed (C8's labeled extension points never produce a recognized
// wrapper kind).
func coerceMathExpr(node *SyntaxNode) MathExpr {
	if l, ok := LiteralExprFromNode(node); ok {
		return l
	}
	if s, ok := SymbolExprFromNode(node); ok {
		return s
	}
	if b, ok := BinOpExprFromNode(node); ok {
		return b
	}
	if eq, ok := EqualExprFromNode(node); ok {
		return eq
	}
	return rawExpr{node: node}
}

// rawExpr is the fallback MathExpr for a node that does not match any
// named wrapper kind.
type rawExpr struct{ node *SyntaxNode }

func (r rawExpr) Node() *SyntaxNode { return r.node }
