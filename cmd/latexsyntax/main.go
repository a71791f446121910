// Package main provides the CLI entry point for latexsyntax.
//
// Usage:
//
//	latexsyntax parse input.tex
//	latexsyntax math "a \cup b \cap c"
package main

import (
	"fmt"
	"os"

	"github.com/boergens/latexsyntax/syntax"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "parse", "p":
		if err := runParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "math", "m":
		if err := runMath(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		if err := runParse(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Println(`latexsyntax - a lexer, parser, and typed AST view for LaTeX

Usage:
  latexsyntax parse <input.tex>   Parse a file with the LaTeX structural grammar
  latexsyntax math <expression>   Parse a literal argument with the math grammar
  latexsyntax help

Either command prints the resulting tree, or the first error and its
1-indexed (row, col) on failure.`)
}

func runParse(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing input file")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}
	root, err := syntax.ParseLatex(string(data))
	if err != nil {
		return err
	}
	fmt.Print(syntax.Dump(root))
	return nil
}

func runMath(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing expression argument")
	}
	root, err := syntax.ParseMath(args[0])
	if err != nil {
		return err
	}
	fmt.Print(syntax.Dump(root))
	return nil
}
