package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/langcore/internal/diag"
	"github.com/cwbudde/langcore/internal/lexer"
	"github.com/cwbudde/langcore/internal/token"
)

var (
	lexEval     string
	lexShowPos  bool
	lexShowKind bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file or inline expression",
	Long: `Tokenize a program and print the resulting tokens, one per line.

Examples:
  langcore lex script.lc
  langcore lex -e "x := 1 + 2."
  langcore lex --show-kind --show-pos script.lc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowKind, "show-kind", false, "show token kind names")
}

func runLex(cmd *cobra.Command, args []string) error {
	var input, fileName string

	switch {
	case lexEval != "":
		input = lexEval
		fileName = "<eval>"
	case len(args) == 1:
		fileName = args[0]
		content, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("reading %s: %w", fileName, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("provide a file path or use -e for inline source")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s (%d bytes)\n---\n", fileName, len(input))
	}

	s := lexer.New(input, fileName)
	count := 0
	for {
		tok, err := s.NextToken()
		if err != nil {
			return lexError(err, input)
		}
		count++
		printToken(tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	if verbose {
		fmt.Printf("---\nTotal tokens: %d\n", count)
	}
	return nil
}

// lexError upgrades an UnexpectedLexError into a caret-annotated
// diag.SourceError carrying the offending source line, falling back to
// the bare error for anything the scanner doesn't classify that way.
func lexError(err error, source string) error {
	lexErr, ok := err.(*lexer.UnexpectedLexError)
	if !ok {
		return err
	}
	pos := token.Position{File: lexErr.FileName, Line: lexErr.Line, Column: lexErr.Column}
	return diag.New(pos, lexErr.Reason, source)
}

func printToken(tok token.Token) {
	var out string
	if lexShowKind {
		out = fmt.Sprintf("[%-16s]", tok.Kind)
	}
	if tok.Kind == token.EOF {
		out += " EOF"
	} else {
		out += fmt.Sprintf(" %q", tok.Lexeme)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(out)
}
