package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/networth/parser"
)

// DoctorCmd provides doctor utilities for debugging ledger files.
type DoctorCmd struct {
	Lex LexCmd `cmd:"" help:"Show lexical tokens from a ledger file."`
}

// LexCmd shows lexical tokens from a ledger file.
type LexCmd struct {
	File FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the lex command.
func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	content := cmd.File.Contents
	if !cmd.File.IsStdin() {
		var err error
		if content, err = os.ReadFile(cmd.File.Filename); err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
	}

	// Format: TYPE line:col "content"
	for i, line := range strings.Split(string(content), "\n") {
		for _, token := range parser.NewLexer(line).ScanAll() {
			if token.Type == parser.EOF {
				continue
			}
			_, _ = fmt.Fprintf(ctx.Stdout, "%-10s %d:%d    %q\n",
				token.Type.String(),
				i+1,
				token.Column,
				token.String(line))
		}
	}

	return nil
}
