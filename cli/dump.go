package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/networth/ast"
	"github.com/robinvdvleuten/networth/loader"
	"github.com/robinvdvleuten/networth/output"
	"github.com/robinvdvleuten/networth/parser"
)

// DumpCmd prints what the parser made of a ledger.
type DumpCmd struct {
	File FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Raw  bool        `help:"Print the names and transactions as Go values."`
}

func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	s := newSession(context.Background(), globals, ctx.Stderr, fmt.Sprintf("dump %s", filepath.Base(cmd.File.Filename)))
	defer s.report()

	journal, err := cmd.File.LoadJournal(s.ctx, loader.New(loader.WithFollowIncludes()))
	if err != nil {
		return err
	}

	if cmd.Raw {
		p := repr.New(ctx.Stdout, repr.Indent("  "))
		p.Println(journal.Names.Names())
		p.Println(journal.Transactions)
		return nil
	}

	dumpTransactions(ctx.Stdout, output.NewStyles(ctx.Stdout), journal.Names, journal.Transactions)
	return nil
}

// dumpTransactions writes one ledger line per transaction, dated and with
// names resolved.
func dumpTransactions(w io.Writer, styles *output.Styles, names *parser.Interner, txns ast.Transactions) {
	for _, txn := range txns {
		_, _ = fmt.Fprintln(w, formatTransaction(styles, names, txn))
	}
}

func formatTransaction(styles *output.Styles, names *parser.Interner, txn ast.Transaction) string {
	var b strings.Builder
	b.WriteString(styles.Date(txn.Date.String()))
	b.WriteByte(' ')

	switch txn.Kind {
	case ast.Transfer:
		fmt.Fprintf(&b, "%s > %s %s",
			styles.Name(names.Resolve(txn.From)),
			styles.Name(names.Resolve(txn.To)),
			formatAmount(styles, txn.Amount))
	case ast.Trade:
		verb, amount := "buys", txn.Amount
		if amount < 0 {
			verb, amount = "sells", -amount
		}
		fmt.Fprintf(&b, "%s %s %s %s @ %s",
			styles.Name(names.Resolve(txn.From)),
			styles.Keyword(verb),
			formatAmount(styles, amount),
			styles.Name(names.Resolve(txn.Asset)),
			formatAmount(styles, txn.Price))
	case ast.PriceUpdate:
		fmt.Fprintf(&b, "%s @ %s",
			styles.Name(names.Resolve(txn.Asset)),
			formatAmount(styles, txn.Price))
	}
	return b.String()
}

func formatAmount(styles *output.Styles, v float64) string {
	return styles.Signed(strconv.FormatFloat(v, 'f', -1, 64), v < 0)
}
