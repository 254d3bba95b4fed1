// Package loader reads a ledger file and parses it into a Journal.
//
// The loader supports two modes of operation:
//   - Simple mode: the file is parsed on its own; include lines are malformed
//     and therefore dropped by the parser
//   - Follow mode: every "include <path>" line is replaced by the lines of the
//     named file before parsing, resolved relative to the including file
//
// Example usage:
//
//	ldr := loader.New(loader.WithFollowIncludes())
//	journal, err := ldr.Load(ctx, "ledger.txt")
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robinvdvleuten/networth/ast"
	"github.com/robinvdvleuten/networth/parser"
	"github.com/robinvdvleuten/networth/telemetry"
)

// includeKeyword starts a line naming another ledger file.
const includeKeyword = "include"

// Journal is a fully parsed ledger.
type Journal struct {
	// Root is the absolute path of the loaded file, or the name given to
	// LoadBytes.
	Root string
	// Includes lists the absolute paths of included files, in load order.
	Includes []string
	// Lines are the ledger lines in parse order, includes expanded.
	Lines []string
	// Names holds every name the ledger used, built-ins first.
	Names *parser.Interner
	// Transactions are all transactions in ledger order.
	Transactions ast.Transactions
}

// Loader reads and parses ledger files.
type Loader struct {
	// FollowIncludes expands include lines before parsing.
	FollowIncludes bool
}

// Option configures how files are loaded.
type Option func(*Loader)

// WithFollowIncludes expands "include <path>" lines recursively. A file
// included more than once is only read the first time.
func WithFollowIncludes() Option {
	return func(l *Loader) {
		l.FollowIncludes = true
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and parses filename.
func (l *Loader) Load(ctx context.Context, filename string) (*Journal, error) {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %s: %w", filename, err)
	}

	data, err := readFile(ctx, absPath)
	if err != nil {
		return nil, err
	}
	return l.LoadBytes(ctx, absPath, data)
}

// LoadBytes parses data as the contents of filename. Includes are resolved
// relative to the directory of filename.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*Journal, error) {
	journal := &Journal{Root: filename}

	lines := splitLines(data)
	if l.FollowIncludes {
		state := &loaderState{visited: map[string]bool{filename: true}}
		var err error
		if lines, err = state.expand(ctx, filename, lines); err != nil {
			return nil, err
		}
		journal.Includes = state.includes
	}

	pctx := parser.NewContext()
	journal.Lines = lines
	journal.Transactions = parser.Parse(ctx, pctx, lines)
	journal.Names = pctx.Names

	return journal, nil
}

// loaderState tracks state while include lines are expanded.
type loaderState struct {
	visited  map[string]bool
	includes []string
}

// expand replaces include lines of filename with the lines of the named
// files.
func (s *loaderState) expand(ctx context.Context, filename string, lines []string) ([]string, error) {
	baseDir := filepath.Dir(filename)

	expanded := make([]string, 0, len(lines))
	for _, line := range lines {
		path, ok := includePath(line)
		if !ok {
			expanded = append(expanded, line)
			continue
		}

		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		if s.visited[path] {
			continue
		}
		s.visited[path] = true
		s.includes = append(s.includes, path)

		data, err := readFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("in file %s: %w", filename, err)
		}
		included, err := s.expand(ctx, path, splitLines(data))
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, included...)
	}
	return expanded, nil
}

// includePath returns the path of an include line.
func includePath(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != includeKeyword {
		return "", false
	}
	return strings.Trim(fields[1], `"`), true
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("loader.read %s", filepath.Base(path)))
	defer timer.End()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func splitLines(data []byte) []string {
	return strings.Split(string(data), "\n")
}
