package syntax

import "testing"

func TestNewParseErrorFormatsMessage(t *testing.T) {
	loc := NewLocator("ab\ncd")
	err := newParseError(loc, 3, "Expected %s, found %s instead", "}", "word")
	want := "Expected }, found word instead at 2:1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNewLexErrorDistinctType(t *testing.T) {
	loc := NewLocator("x")
	err := newLexError(loc, 0, "unexpected backslash")
	if _, ok := error(err).(*LexError); !ok {
		t.Fatalf("newLexError returned %T, want *LexError", err)
	}
}

func TestAssertionErrorIsNeverAParseOrLexError(t *testing.T) {
	var err error = &AssertionError{Message: "end_node called with an empty parent stack"}
	if _, ok := err.(*ParseError); ok {
		t.Error("AssertionError satisfies *ParseError, want disjoint types")
	}
	if _, ok := err.(*LexError); ok {
		t.Error("AssertionError satisfies *LexError, want disjoint types")
	}
}
