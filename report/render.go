package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#AF5FAF", Dark: "#D787D7"})
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#005FD7", Dark: "#5FAFFF"})
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00AF5F", Dark: "#00D787"})
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F87"})
	fractionStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD75F"})
)

// row is a plain label and its already styled value.
type row struct {
	label string
	value string
	name  bool
}

type renderer struct {
	w io.Writer
	s *Summary
}

// Render writes the styled summary to w.
func Render(w io.Writer, s *Summary) error {
	r := &renderer{w: w, s: s}

	r.section("General", []row{
		{label: "Net", value: r.signed(s.Scale(s.Net))},
		{label: "Debt", value: r.signed(s.Scale(s.Debt))},
		{label: "Yield", value: r.signed(s.Scale(s.Yield))},
		{label: "ROI", value: r.signed(s.ROI)},
		{label: "Assets", value: r.signed(s.Scale(s.Assets))},
		{label: "Fiat", value: r.signed(s.Scale(s.Fiat))},
		{label: "Positive owned sum", value: r.positive(r.ownedSum())},
		{label: "Total holdings worth", value: r.positive(s.Scale(s.Holdings))},
		{label: "Holdings error", value: r.errorValue(s.HoldingsError)},
		{label: "Assets error", value: r.errorValue(s.AssetsError)},
		{label: "Spent past year", value: r.signed(s.Scale(s.Spent12))},
		{label: "Received past year", value: r.signed(s.Scale(s.Received12))},
		{label: "Saving rate", value: r.signed(s.SavingRate) + "%"},
	})

	accounts := make([]row, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		v := a.Balance
		if !a.Ratio {
			v = s.Scale(v)
		}
		accounts = append(accounts, row{label: a.Name, value: r.signed(v), name: true})
	}
	r.section("Accounts", accounts)

	dist := []row{
		{label: "Split", value: fmt.Sprintf("%s%% assets, %s%% fiat",
			r.fraction(s.AssetsSplit*100), r.fraction(s.FiatSplit*100))},
		{label: "Shadow realm", value: r.signed(s.Scale(s.Shadow))},
	}
	for _, a := range s.Holding {
		value := r.fraction(a.Share*100) + "% of total"
		if !s.Options.Redact {
			value = fmt.Sprintf("%s worth %s priced %s at %s",
				r.signed(a.Amount), r.signed(a.Worth), r.signed(a.Price), value)
		}
		dist = append(dist, row{label: a.Name, value: value, name: true})
	}
	r.section("Distribution", dist)

	metrics := []row{
		{label: "Net worth lasts", value: r.duration(s.Metrics.Flat, false) + " (no inflation or ROI)"},
		{label: "2% yield covers", value: r.positive(s.Metrics.YieldCoverage) + "% of spending"},
	}
	for _, e := range s.Metrics.Expectancies {
		label := fmt.Sprintf("%g%% infl., %g%% ROI", e.Inflation, e.ROI)
		metrics = append(metrics, row{label: label, value: r.duration(e.Months, e.Capped)})
	}
	r.section("Metrics", metrics)

	return nil
}

func (r *renderer) section(title string, rows []row) {
	_, _ = fmt.Fprintf(r.w, "%s:\n", headingStyle.Render(title))

	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.label); w > width {
			width = w
		}
	}
	for _, row := range rows {
		label := row.label + ":"
		if row.name {
			label = nameStyle.Render(row.label) + ":"
		}
		pad := strings.Repeat(" ", width-runewidth.StringWidth(row.label))
		_, _ = fmt.Fprintf(r.w, "  %s%s %s\n", label, pad, row.value)
	}
}

func (r *renderer) number(v float64) string {
	return FormatNumber(v, r.s.Options.Rounding)
}

func (r *renderer) signed(v float64) string {
	if v < 0 {
		return negativeStyle.Render(r.number(v))
	}
	return positiveStyle.Render(r.number(v))
}

func (r *renderer) positive(v float64) string {
	return positiveStyle.Render(r.number(v))
}

func (r *renderer) fraction(v float64) string {
	return fractionStyle.Render(r.number(v))
}

// ownedSum is shown as 1 when redacted, since it is the redaction factor
// in most ledgers.
func (r *renderer) ownedSum() float64 {
	if r.s.Options.Redact {
		return 1
	}
	return r.s.PositiveSum
}

// errorValue renders an absolute error along with its share of the
// redaction factor.
func (r *renderer) errorValue(v float64) string {
	share := v / r.s.RedactFactor * 100
	if share < 0 {
		share = -share
	}
	return fmt.Sprintf("%s (%s%%)", r.signed(r.s.Scale(v)), r.positive(share))
}

func (r *renderer) duration(months float64, capped bool) string {
	if capped {
		return r.positive(100) + "+ years"
	}
	v, unit := monthsOrYears(months)
	return r.signed(v) + " " + unit
}
