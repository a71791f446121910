package syntax

import (
	"reflect"
	"testing"
)

func TestTokenizeMath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []SyntaxKind
	}{
		{
			name:  "symbols and number",
			input: "a2",
			want:  []SyntaxKind{Symbol, Number},
		},
		{
			name:  "gamma equals expr",
			input: `\gamma = 2+2`,
			want:  []SyntaxKind{Command, Whitespace, Eq, Whitespace, Number, Plus, Number},
		},
		{
			name:  "union and intersection",
			input: `a \cup b \cap c`,
			want:  []SyntaxKind{Symbol, Whitespace, Command, Whitespace, Symbol, Whitespace, Command, Whitespace, Symbol},
		},
		{
			name:  "grouping and exponent",
			input: `2 + (2^e * 4)`,
			want: []SyntaxKind{
				Number, Whitespace, Plus, Whitespace, LeftParen, Number, Caret, Symbol,
				Whitespace, Asterisk, Whitespace, Number, RightParen,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, leftover, err := Tokenize(tt.input, MathTokens)
			if err != nil {
				t.Fatalf("Tokenize error: %v", err)
			}
			if leftover != 0 {
				t.Fatalf("leftover = %d, want 0", leftover)
			}
			var got []SyntaxKind
			for _, tok := range tokens {
				got = append(got, tok.Kind)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchMathSymbolOnePerToken(t *testing.T) {
	tokens, _, err := Tokenize("ab", MathTokens)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2 (one Symbol per letter)", len(tokens))
	}
	if tokens[0].Data != "a" || tokens[1].Data != "b" {
		t.Errorf("Data = %q, %q, want %q, %q", tokens[0].Data, tokens[1].Data, "a", "b")
	}
}
