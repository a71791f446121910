package syntax

import "testing"

func TestSyntaxKindIsGrouping(t *testing.T) {
	grouping := []SyntaxKind{LeftCurly, RightCurly, LeftBracket, RightBracket, LeftParen, RightParen}
	notGrouping := []SyntaxKind{Word, Command, Plus, Symbol, Number}

	for _, k := range grouping {
		if !k.IsGrouping() {
			t.Errorf("%s.IsGrouping() = false, want true", k.Name())
		}
	}
	for _, k := range notGrouping {
		if k.IsGrouping() {
			t.Errorf("%s.IsGrouping() = true, want false", k.Name())
		}
	}
}

func TestSyntaxKindIsTrivia(t *testing.T) {
	trivia := []SyntaxKind{Whitespace, LineComment, LineBreak, MathLineBreak}
	notTrivia := []SyntaxKind{Word, Command, Number, Symbol}

	for _, k := range trivia {
		if !k.IsTrivia() {
			t.Errorf("%s.IsTrivia() = false, want true", k.Name())
		}
	}
	for _, k := range notTrivia {
		if k.IsTrivia() {
			t.Errorf("%s.IsTrivia() = true, want false", k.Name())
		}
	}
}

func TestSyntaxKindIsMathTrivia(t *testing.T) {
	// LineBreak/LineComment are LaTeX-only trivia, not filtered from math
	// token buffers; MathLineBreak is, per DESIGN.md's Open Question 1.
	if !Whitespace.IsMathTrivia() {
		t.Error("Whitespace.IsMathTrivia() = false, want true")
	}
	if !MathLineBreak.IsMathTrivia() {
		t.Error("MathLineBreak.IsMathTrivia() = false, want true")
	}
	if LineBreak.IsMathTrivia() {
		t.Error("LineBreak.IsMathTrivia() = true, want false")
	}
}

func TestSyntaxKindIsError(t *testing.T) {
	if !Error.IsError() {
		t.Error("Error.IsError() = false, want true")
	}
	if Word.IsError() {
		t.Error("Word.IsError() = true, want false")
	}
}
