package graph

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/robinvdvleuten/networth/ast"
)

//go:embed templates
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// Options controls how a Series is drawn.
type Options struct {
	Title   string
	Width   int
	Height  int
	Palette Palette
	// YearDigits is how many trailing digits of the year label a month,
	// between 0 and 4.
	YearDigits int
	// MonthDigit labels months 1 to 12 instead of Jan to Dec.
	MonthDigit bool
	// Divisor scales every value down, used for redaction. Zero leaves
	// values untouched.
	Divisor float64
	// Flows adds the monthly spending and receiving lines.
	Flows bool
}

// DefaultOptions returns options for a 1280x720 chart.
func DefaultOptions() Options {
	return Options{
		Title:      "networth",
		Width:      1280,
		Height:     720,
		Palette:    DefaultPalette(),
		YearDigits: 4,
	}
}

// Render draws s as an SVG chart embedded in an HTML page.
func Render(w io.Writer, s *Series, opts Options) error {
	if len(s.Months) < 2 {
		return fmt.Errorf("need at least two months to chart, got %d", len(s.Months))
	}

	var svg bytes.Buffer
	if err := newChart(s, opts).Render(chart.SVG, &svg); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return pageTemplate.Execute(w, struct {
		Title      string
		Background template.CSS
		Chart      template.HTML
	}{
		Title:      opts.Title,
		Background: template.CSS(hexString(opts.Palette.Background)),
		Chart:      template.HTML(svg.String()),
	})
}

func newChart(s *Series, opts Options) *chart.Chart {
	p := opts.Palette
	axisStyle := chart.Style{FontColor: p.Foreground, StrokeColor: p.Foreground}

	months := make([]time.Time, len(s.Months))
	for i, m := range s.Months {
		months[i] = m.Time()
	}

	lines := append([]Line(nil), s.Lines...)
	if opts.Flows {
		lines = append(lines, Line{Name: "Spending", Values: s.Spending}, Line{Name: "Receiving", Values: s.Receiving})
	}

	c := &chart.Chart{
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{FillColor: p.Background, Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		Canvas:     chart.Style{FillColor: p.Background},
		XAxis: chart.XAxis{
			Style: axisStyle,
			ValueFormatter: func(v interface{}) string {
				return opts.label(v)
			},
		},
		YAxis: chart.YAxis{
			Style: axisStyle,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.FormatFloat(f, 'f', -1, 64)
				}
				return ""
			},
		},
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i, line := range lines {
		values := make([]float64, len(line.Values))
		for j, v := range line.Values {
			if opts.Divisor != 0 {
				v /= opts.Divisor
			}
			values[j] = v
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				lo, hi = math.Min(lo, v), math.Max(hi, v)
			}
		}
		c.Series = append(c.Series, chart.TimeSeries{
			Name:    line.Name,
			Style:   chart.Style{StrokeColor: p.Colour(i), StrokeWidth: 2},
			XValues: months,
			YValues: values,
		})
	}
	// A flat chart has no range to scale to.
	if lo == hi {
		c.YAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}

	c.Elements = []chart.Renderable{
		chart.Legend(c, chart.Style{FillColor: p.Background, FontColor: p.Foreground, StrokeColor: p.Foreground}),
	}
	return c
}

func (o Options) label(v interface{}) string {
	var t time.Time
	switch typed := v.(type) {
	case time.Time:
		t = typed
	case float64:
		t = time.Unix(0, int64(typed)).UTC()
	default:
		return ""
	}
	return DateLabel(ast.NewDate(t.Year(), t.Month(), t.Day()), o.YearDigits, o.MonthDigit)
}

// DateLabel labels the month of d, such as "Jan 2024", "Jan 24" or "1 24".
func DateLabel(d ast.Date, yearDigits int, monthDigit bool) string {
	month := d.Month().String()[:3]
	if monthDigit {
		month = strconv.Itoa(int(d.Month()))
	}

	switch {
	case yearDigits <= 0:
		return month
	case yearDigits > 4:
		yearDigits = 4
	}
	year := fmt.Sprintf("%04d", d.Year())
	return month + " " + year[len(year)-yearDigits:]
}

func hexString(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
