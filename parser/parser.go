// Package parser turns ledger lines into transactions.
//
// Every line is parsed against a Context holding the name interner and the
// date cursor. The grammar of a line is:
//
//	line     := [date] [entry] [comment]
//	entry    := transfer | trade | price
//	transfer := NAME ">" NAME AMOUNT {"," NAME AMOUNT}
//	trade    := NAME ("buys" | "sells") AMOUNT NAME "@" AMOUNT {"," AMOUNT NAME "@" AMOUNT}
//	price    := NAME "@" AMOUNT {"," NAME "@" AMOUNT}
//
// Example ledger:
//
//	2024-01-05
//	Receiving > Checking 2500        # salary
//	Checking > Spending 50, Rent 800
//	2024-01-10 Broker buys 0.5 BTC @ 30000
//	BTC @ 31000, ETH @ 2100
//
// Lines that do not match the grammar are dropped: they yield no
// transactions, register no names and leave the date cursor untouched.
package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/networth/ast"
	"github.com/robinvdvleuten/networth/telemetry"
)

// Context is threaded through the parse of consecutive lines.
type Context struct {
	Names *Interner
	Date  ast.Date
}

// NewContext creates a context with a fresh interner and the sentinel date.
func NewContext() *Context {
	return &Context{Names: NewInterner()}
}

// Parse parses every line in order and concatenates the transactions.
func Parse(ctx context.Context, pctx *Context, lines []string) ast.Transactions {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("parser.parse (%d lines)", len(lines)))
	defer timer.End()

	txns := make(ast.Transactions, 0, len(lines))
	for _, line := range lines {
		txns = append(txns, ParseLine(pctx, line)...)
	}
	return txns
}

// ParseString splits source on newlines and parses it.
func ParseString(ctx context.Context, pctx *Context, source string) ast.Transactions {
	return Parse(ctx, pctx, strings.Split(source, "\n"))
}

// ParseLine parses a single line, updating the context. Malformed lines
// yield nil.
func ParseLine(pctx *Context, line string) ast.Transactions {
	txns, err := parseLine(pctx, line)
	if err != nil {
		return nil
	}
	return txns
}

// leg is one parsed effect whose names are not yet interned.
type leg struct {
	kind   ast.Kind
	from   string
	to     string
	asset  string
	amount float64
	price  float64
}

type lineParser struct {
	source string
	tokens []Token
	pos    int
}

func parseLine(pctx *Context, line string) (ast.Transactions, error) {
	p := &lineParser{
		source: line,
		tokens: NewLexer(line).ScanAll(),
	}

	date, hasDate := pctx.Date, false
	if p.peek().Type == DATE {
		tok := p.next()
		d, err := ast.ParseDate(tok.String(line))
		if err != nil {
			return nil, newParseError(tok, "%s", err)
		}
		date, hasDate = d, true
	}

	var legs []leg
	if p.peek().Type != EOF {
		var err error
		if legs, err = p.parseEntry(); err != nil {
			return nil, err
		}
	}

	// The line is valid: only now touch the context.
	if hasDate {
		pctx.Date = date
	}
	if len(legs) == 0 {
		return nil, nil
	}

	txns := make(ast.Transactions, 0, len(legs))
	for _, l := range legs {
		switch l.kind {
		case ast.Transfer:
			txns = append(txns, ast.NewTransfer(date, pctx.Names.Register(l.from), pctx.Names.Register(l.to), l.amount))
		case ast.Trade:
			txns = append(txns, ast.NewTrade(date, pctx.Names.Register(l.from), pctx.Names.Register(l.asset), l.amount, l.price))
		case ast.PriceUpdate:
			txns = append(txns, ast.NewPriceUpdate(date, pctx.Names.Register(l.asset), l.price))
		}
	}
	return txns, nil
}

func (p *lineParser) parseEntry() ([]leg, error) {
	first, err := p.expect(NAME)
	if err != nil {
		return nil, err
	}
	name := first.String(p.source)

	var legs []leg
	switch op := p.next(); op.Type {
	case ARROW:
		legs, err = p.parseList(func() (leg, error) { return p.parseTransferLeg(name) })
	case BUYS, SELLS:
		sign := 1.0
		if op.Type == SELLS {
			sign = -1
		}
		legs, err = p.parseList(func() (leg, error) { return p.parseTradeLeg(name, sign) })
	case AT:
		var price float64
		if price, err = p.parseAmount(); err != nil {
			return nil, err
		}
		legs = append(legs, leg{kind: ast.PriceUpdate, asset: name, price: price})
		if p.peek().Type == COMMA {
			p.next()
			var more []leg
			more, err = p.parseList(p.parsePriceLeg)
			legs = append(legs, more...)
		}
	default:
		return nil, newParseError(op, "expected '>', '@', buys or sells, got %s", op.Type)
	}
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != EOF {
		return nil, newParseError(tok, "unexpected %s", tok.Type)
	}
	return legs, nil
}

// parseList parses one or more comma separated legs.
func (p *lineParser) parseList(parse func() (leg, error)) ([]leg, error) {
	var legs []leg
	for {
		l, err := parse()
		if err != nil {
			return nil, err
		}
		legs = append(legs, l)
		if p.peek().Type != COMMA {
			return legs, nil
		}
		p.next()
	}
}

func (p *lineParser) parseTransferLeg(from string) (leg, error) {
	to, err := p.expect(NAME)
	if err != nil {
		return leg{}, err
	}
	amount, err := p.parseAmount()
	if err != nil {
		return leg{}, err
	}
	return leg{kind: ast.Transfer, from: from, to: to.String(p.source), amount: amount}, nil
}

func (p *lineParser) parseTradeLeg(account string, sign float64) (leg, error) {
	amount, err := p.parseAmount()
	if err != nil {
		return leg{}, err
	}
	asset, err := p.expect(NAME)
	if err != nil {
		return leg{}, err
	}
	if _, err := p.expect(AT); err != nil {
		return leg{}, err
	}
	price, err := p.parseAmount()
	if err != nil {
		return leg{}, err
	}
	return leg{kind: ast.Trade, from: account, asset: asset.String(p.source), amount: sign * amount, price: price}, nil
}

func (p *lineParser) parsePriceLeg() (leg, error) {
	asset, err := p.expect(NAME)
	if err != nil {
		return leg{}, err
	}
	if _, err := p.expect(AT); err != nil {
		return leg{}, err
	}
	price, err := p.parseAmount()
	if err != nil {
		return leg{}, err
	}
	return leg{kind: ast.PriceUpdate, asset: asset.String(p.source), price: price}, nil
}

func (p *lineParser) parseAmount() (float64, error) {
	tok, err := p.expect(NUMBER)
	if err != nil {
		return 0, err
	}
	d, err := decimal.NewFromString(tok.String(p.source))
	if err != nil {
		return 0, newParseError(tok, "invalid amount %q", tok.String(p.source))
	}
	f, _ := d.Float64()
	return f, nil
}

func (p *lineParser) expect(typ TokenType) (Token, error) {
	tok := p.next()
	if tok.Type != typ {
		return tok, newParseError(tok, "expected %s, got %s", typ, tok.Type)
	}
	return tok, nil
}

func (p *lineParser) peek() Token {
	return p.tokens[p.pos]
}

// next returns the current token and advances, staying on EOF.
func (p *lineParser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}
