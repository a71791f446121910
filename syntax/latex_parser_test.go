package syntax

import "testing"

func TestParseLatexLossless(t *testing.T) {
	inputs := []string{
		"hello world",
		`\begin{document}
Hello, world!
\[1+1 = 2\]
\end{document}`,
		`\textbf{bold} and $x$ and $$y$$`,
		`\begin{itemize}\item a\end{itemize}`,
	}
	for _, input := range inputs {
		root, err := ParseLatex(input)
		if err != nil {
			t.Fatalf("ParseLatex(%q) error: %v", input, err)
		}
		if got := Concat(root); got != input {
			t.Errorf("Concat(ParseLatex(%q)) = %q, want %q", input, got, input)
		}
	}
}

func TestParseLatexEnvironment(t *testing.T) {
	input := `\begin{document}Hello\end{document}`
	root, err := ParseLatex(input)
	if err != nil {
		t.Fatalf("ParseLatex error: %v", err)
	}
	children := root.Children()
	if len(children) != 1 {
		t.Fatalf("root has %d children, want 1", len(children))
	}
	env, ok := EnvironmentExprFromNode(children[0])
	if !ok {
		t.Fatalf("root child kind = %v, want Environment", children[0].Kind())
	}
	begin, ok := env.Begin()
	if !ok || begin.Name() != "document" {
		t.Errorf("Begin().Name() = %q, ok=%v, want %q, true", begin.Name(), ok, "document")
	}
	end, ok := env.End()
	if !ok || end.Name() != "document" {
		t.Errorf("End().Name() = %q, ok=%v, want %q, true", end.Name(), ok, "document")
	}
	if !env.NamesMatch() {
		t.Errorf("NamesMatch() = false, want true")
	}
	if got, want := env.BodyText(), "Hello"; got != want {
		t.Errorf("BodyText() = %q, want %q", got, want)
	}
}

func TestParseLatexMismatchedEnvironmentNames(t *testing.T) {
	input := `\begin{foo}x\end{bar}`
	root, err := ParseLatex(input)
	if err != nil {
		t.Fatalf("ParseLatex error: %v", err)
	}
	env, ok := EnvironmentExprFromNode(root.Children()[0])
	if !ok {
		t.Fatalf("root child is not Environment")
	}
	if env.NamesMatch() {
		t.Errorf("NamesMatch() = true, want false for mismatched begin/end names")
	}
}

func TestParseLatexFormulaDisplay(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"$x$", false},
		{"$$x$$", true},
	}
	for _, tt := range tests {
		root, err := ParseLatex(tt.input)
		if err != nil {
			t.Fatalf("ParseLatex(%q) error: %v", tt.input, err)
		}
		formula, ok := FormulaExprFromNode(root.Children()[0])
		if !ok {
			t.Fatalf("ParseLatex(%q) root child is not Formula", tt.input)
		}
		if got := formula.Display(); got != tt.want {
			t.Errorf("Display() for %q = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseLatexUnmatchedPunctuation(t *testing.T) {
	_, err := ParseLatex("}")
	if err == nil {
		t.Fatal("expected a ParseError, got nil")
	}
	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if parseErr.Row != 1 || parseErr.Col != 1 {
		t.Errorf("position = %d:%d, want 1:1", parseErr.Row, parseErr.Col)
	}
}

func TestParseLatexTrailingBackslashIsLexError(t *testing.T) {
	_, err := ParseLatex(`\`)
	if err == nil {
		t.Fatal("expected a LexError, got nil")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("error type = %T, want *LexError", err)
	}
}
