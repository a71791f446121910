package syntax

import "testing"

func TestLiteralExprFromNodeRejectsWrongKind(t *testing.T) {
	if _, ok := LiteralExprFromNode(NewLeaf(Symbol, "a", 0)); ok {
		t.Error("LiteralExprFromNode accepted a Symbol node")
	}
	lit, ok := LiteralExprFromNode(NewLeaf(Number, "42", 0))
	if !ok {
		t.Fatal("LiteralExprFromNode rejected a Number node")
	}
	if got := lit.Value(); got != 42 {
		t.Errorf("Value() = %d, want 42", got)
	}
}

func TestSymbolExprFromNodeRejectsWrongKind(t *testing.T) {
	if _, ok := SymbolExprFromNode(NewLeaf(Number, "1", 0)); ok {
		t.Error("SymbolExprFromNode accepted a Number node")
	}
	sym, ok := SymbolExprFromNode(NewLeaf(Symbol, "x", 0))
	if !ok {
		t.Fatal("SymbolExprFromNode rejected a Symbol node")
	}
	if got := sym.Name(); got != "x" {
		t.Errorf("Name() = %q, want %q", got, "x")
	}
}

func TestBinOpExprFromNodeRequiresThreeChildren(t *testing.T) {
	twoChildren := NewInner(BinOp, []*SyntaxNode{
		NewLeaf(Number, "1", 0),
		NewLeaf(Plus, "+", 1),
	})
	if _, ok := BinOpExprFromNode(twoChildren); ok {
		t.Error("BinOpExprFromNode accepted a node with 2 children")
	}

	threeChildren := NewInner(BinOp, []*SyntaxNode{
		NewLeaf(Number, "1", 0),
		NewLeaf(Plus, "+", 1),
		NewLeaf(Number, "2", 2),
	})
	if _, ok := BinOpExprFromNode(threeChildren); !ok {
		t.Error("BinOpExprFromNode rejected a well-formed 3-child node")
	}
}

func TestEnvironmentExprAbsentChildren(t *testing.T) {
	empty, ok := EnvironmentExprFromNode(NewInner(Environment, nil))
	if !ok {
		t.Fatal("EnvironmentExprFromNode rejected an Environment node")
	}
	if _, ok := empty.Begin(); ok {
		t.Error("Begin() found a child in an empty Environment")
	}
	if empty.NamesMatch() {
		t.Error("NamesMatch() = true for an Environment with no Begin/End")
	}
	if got := empty.BodyText(); got != "" {
		t.Errorf("BodyText() = %q, want empty", got)
	}
}
