// Large Ledger Generator
//
// This tool generates a large networth ledger for performance testing and profiling.
// It mixes every kind of line the parser accepts to stress-test the parser and the engine.
//
// Usage:
//
//	go run main.go > large.txt
//	go run main.go 20000000 > large.txt  # Specify target size in bytes
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

const (
	defaultTargetSize = 10 * 1024 * 1024 // 10MB
)

var (
	accounts = []string{"Checking", "Savings", "Wallet", "CreditCard"}
	expenses = []string{"Groceries", "Rent", "Utilities", "Transit", "Restaurants", "Insurance"}
	brokers  = []string{"Broker", "Exchange"}
	assets   = []string{"BTC", "ETH", "VTI", "VXUS", "AAPL", "MSFT"}
	comments = []string{"salary", "rent", "rebalance", "refund", "gift", "monthly"}
)

type generator struct {
	w      *bufio.Writer
	prices map[string]float64
	bytes  int
}

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		if size, err := strconv.Atoi(os.Args[1]); err == nil {
			targetSize = size
		}
	}

	g := &generator{w: bufio.NewWriter(os.Stdout), prices: map[string]float64{}}
	defer g.w.Flush()

	for _, asset := range assets {
		g.prices[asset] = 10 + rand.Float64()*1000
	}

	g.line("# Generated ledger")
	g.line("Receiving > Checking 10000  # opening balance")

	date := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	lines := 0
	for g.bytes < targetSize {
		if lines%8 == 0 {
			date = date.AddDate(0, 0, 1+rand.Intn(4))
			g.line(date.Format("2006-01-02"))
		}
		lines++

		switch rand.Intn(10) {
		case 0, 1, 2: // 30% - Spending
			g.line(fmt.Sprintf("%s > Spending %s", pick(accounts), amount(5, 200)))
		case 3: // 10% - Compound transfer
			g.line(fmt.Sprintf("Checking > %s %s, %s %s, Savings %s",
				pick(expenses), amount(10, 100), pick(expenses), amount(10, 100), amount(50, 500)))
		case 4: // 10% - Income
			g.line(fmt.Sprintf("Receiving > Checking %s  # %s", amount(1000, 5000), pick(comments)))
		case 5: // 10% - Refund
			g.line(fmt.Sprintf("Spending > %s %s", pick(accounts), amount(1, 50)))
		case 6, 7: // 20% - Trade
			g.trade()
		case 8: // 10% - Price updates
			a, b := pick(assets), pick(assets)
			g.line(fmt.Sprintf("%s @ %s, %s @ %s", a, g.move(a), b, g.move(b)))
		case 9: // 10% - Comment or blank line
			if rand.Intn(2) == 0 {
				g.line("; " + pick(comments))
			} else {
				g.line("")
			}
		}
	}

	_, _ = fmt.Fprintf(os.Stderr, "Generated %d lines (%d bytes)\n", lines, g.bytes)
}

func (g *generator) line(s string) {
	n, _ := g.w.WriteString(s + "\n")
	g.bytes += n
}

func (g *generator) trade() {
	verb := "buys"
	if rand.Intn(3) == 0 {
		verb = "sells"
	}
	asset := pick(assets)
	g.line(fmt.Sprintf("%s %s %s %s @ %s",
		pick(brokers), verb, strconv.FormatFloat(rand.Float64()*5, 'f', 4, 64), asset, g.move(asset)))
}

// move drifts the price of asset by up to 3% and returns it.
func (g *generator) move(asset string) string {
	g.prices[asset] *= 0.97 + rand.Float64()*0.06
	return strconv.FormatFloat(g.prices[asset], 'f', 2, 64)
}

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

func amount(lo, hi float64) string {
	return strconv.FormatFloat(lo+rand.Float64()*(hi-lo), 'f', 2, 64)
}
