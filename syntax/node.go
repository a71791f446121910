package syntax

import (
	"fmt"
	"strings"
)

// SyntaxNode is a node of the lossless, homogeneous concrete syntax tree.
// It comes in three flavors, mirroring the teacher's leaf/inner/error sum
// type (syntax/node.go) but shedding the span/numbering machinery that
// exists there to support incremental reparsing, which this toolkit does
// not do.
//
// A leaf node is a token: it has no children and its Text is the exact
// source substring it spans. An inner node has children (tokens and/or
// other nodes) and no text of its own; its length and error status are
// aggregates of its children. An error node carries the malformed text
// together with the message describing why parsing stopped there.
type SyntaxNode struct {
	kind     SyntaxKind
	text     string
	offset   int
	children []*SyntaxNode
	length   int
	erroneous bool
	errMsg   string
}

// NewLeaf builds a token node: kind with no children, spanning text
// starting at offset.
func NewLeaf(kind SyntaxKind, text string, offset int) *SyntaxNode {
	return &SyntaxNode{kind: kind, text: text, offset: offset, length: len(text)}
}

// NewError builds an error node: kind Error, carrying the offending text
// and the message describing the failure.
func NewError(text string, offset int, message string) *SyntaxNode {
	return &SyntaxNode{kind: Error, text: text, offset: offset, length: len(text), erroneous: true, errMsg: message}
}

// NewInner builds a node of kind wrapping children in order. Its length,
// offset, and erroneous bit are derived from its children.
func NewInner(kind SyntaxKind, children []*SyntaxNode) *SyntaxNode {
	n := &SyntaxNode{kind: kind, children: children}
	if len(children) > 0 {
		n.offset = children[0].offset
	}
	for _, c := range children {
		n.length += c.length
		if c.erroneous {
			n.erroneous = true
		}
	}
	return n
}

// Kind returns the node's syntax kind.
func (n *SyntaxNode) Kind() SyntaxKind { return n.kind }

// Len returns the number of source bytes spanned by this node.
func (n *SyntaxNode) Len() int { return n.length }

// Offset returns the absolute byte offset of the first byte spanned by
// this node.
func (n *SyntaxNode) Offset() int { return n.offset }

// Text returns the leaf's exact source text, or "" for an inner node.
func (n *SyntaxNode) Text() string {
	if n.children == nil {
		return n.text
	}
	return ""
}

// Children returns the node's direct children in input order, or nil for
// a leaf.
func (n *SyntaxNode) Children() []*SyntaxNode { return n.children }

// IsLeaf reports whether this node has no children (a token or an error
// node over raw text).
func (n *SyntaxNode) IsLeaf() bool { return n.children == nil }

// Erroneous reports whether this node or any descendant is an Error node.
func (n *SyntaxNode) Erroneous() bool { return n.erroneous }

// ErrorMessage returns the message attached to an Error node, or "" for
// any other kind.
func (n *SyntaxNode) ErrorMessage() string {
	if n.kind == Error {
		return n.errMsg
	}
	return ""
}

// Concat returns the lossless reconstruction of the source text spanned
// by n: the concatenation, in order, of the text of every leaf reachable
// from n. This is the losslessness invariant (I1) made into a callable
// helper, grounded on the teacher's SyntaxNode.IntoText.
func Concat(n *SyntaxNode) string {
	if n == nil {
		return ""
	}
	if n.IsLeaf() {
		return n.text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(Concat(c))
	}
	return b.String()
}

// String implements fmt.Stringer for debugging: a leaf prints its kind
// and exact text, an inner node its kind and span length, an error node
// its text and message.
func (n *SyntaxNode) String() string {
	switch {
	case n.kind == Error:
		return fmt.Sprintf("Error: %q (%s)", n.text, n.errMsg)
	case n.IsLeaf():
		return fmt.Sprintf("%s: %q", n.kind, n.text)
	default:
		return fmt.Sprintf("%s: %d", n.kind, n.length)
	}
}

// Dump renders n and its descendants as an indented tree, one line per
// node, for use by diagnostic tooling (cmd/latexsyntax).
func Dump(n *SyntaxNode) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n *SyntaxNode, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.String())
	b.WriteByte('\n')
	for _, c := range n.children {
		dump(b, c, depth+1)
	}
}

// Descendants walks n and every node reachable from it, in order,
// invoking visit on each (n included).
func Descendants(n *SyntaxNode, visit func(*SyntaxNode)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.children {
		Descendants(c, visit)
	}
}
