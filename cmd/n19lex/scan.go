package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/aaftr/n19/frontend"
)

func scanCommand(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	noColor := fs.Bool("no-color", false, "disable styled output")
	stats := fs.Bool("stats", false, "print token counts per category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("n19lex scan: source path required")
	}

	sourcePath, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve source path: %w", err)
	}
	input, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	lexer := frontend.NewLexer(input)
	counts := make(map[string]int)
	illegal := 0

	for _, tok := range lexer.Tokens() {
		line := tok.Format(input)
		if !*noColor {
			line = tokenStyle(tok).Render(line)
		}
		fmt.Println(line)

		counts[tok.Cat.String()]++
		if tok.IsIllegal() {
			illegal++
		}
	}

	if *stats {
		printStats(counts)
	}
	if illegal > 0 {
		return fmt.Errorf("scan found %d illegal token(s)", illegal)
	}
	return nil
}

func printStats(counts map[string]int) {
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	fmt.Println()
	for _, category := range categories {
		fmt.Printf("%6d  %s\n", counts[category], category)
	}
}

// tokenStyle picks the output style from the token's category, most
// specific classification first.
func tokenStyle(tok frontend.Token) lipgloss.Style {
	switch {
	case tok.IsIllegal():
		return illegalStyle
	case tok.Cat.Has(frontend.KeywordTok):
		return keywordStyle
	case tok.Cat.Has(frontend.LiteralTok):
		return literalStyle
	case tok.Cat.HasAny(frontend.UnaryOp | frontend.BinaryOp):
		return operatorStyle
	default:
		return mutedStyle
	}
}
