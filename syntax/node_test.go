package syntax

import "testing"

func TestConcatLosslessness(t *testing.T) {
	root := NewInner(Root, []*SyntaxNode{
		NewLeaf(Word, "hello", 0),
		NewInner(CurlyGroup, []*SyntaxNode{
			NewLeaf(LeftCurly, "{", 5),
			NewLeaf(Word, "x", 6),
			NewLeaf(RightCurly, "}", 7),
		}),
	})
	if got, want := Concat(root), "hello{x}"; got != want {
		t.Errorf("Concat() = %q, want %q", got, want)
	}
}

func TestConcatNil(t *testing.T) {
	if got := Concat(nil); got != "" {
		t.Errorf("Concat(nil) = %q, want empty", got)
	}
}

func TestDescendantsVisitsEveryNode(t *testing.T) {
	root := NewInner(Root, []*SyntaxNode{
		NewLeaf(Word, "a", 0),
		NewInner(CurlyGroup, []*SyntaxNode{
			NewLeaf(LeftCurly, "{", 1),
			NewLeaf(RightCurly, "}", 2),
		}),
	})
	var kinds []SyntaxKind
	Descendants(root, func(n *SyntaxNode) { kinds = append(kinds, n.Kind()) })
	want := []SyntaxKind{Root, Word, CurlyGroup, LeftCurly, RightCurly}
	if len(kinds) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestErroneousPropagatesFromDescendant(t *testing.T) {
	root := NewInner(Root, []*SyntaxNode{
		NewLeaf(Word, "a", 0),
		NewError("}", 1, "Unmatched punctuation"),
	})
	if !root.Erroneous() {
		t.Error("Erroneous() = false, want true when a child is an Error node")
	}
}
