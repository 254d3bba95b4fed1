package graph

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette colours a chart.
type Palette struct {
	Background drawing.Color
	Foreground drawing.Color
	// Series colours the lines in order, wrapping around.
	Series []drawing.Color
}

// DefaultPalette is a dark theme.
func DefaultPalette() Palette {
	return Palette{
		Background: mustHex("#1d1f21"),
		Foreground: mustHex("#c5c8c6"),
		Series: []drawing.Color{
			mustHex("#81a2be"),
			mustHex("#b5bd68"),
			mustHex("#cc6666"),
			mustHex("#f0c674"),
			mustHex("#b294bb"),
			mustHex("#8abeb7"),
			mustHex("#de935f"),
		},
	}
}

// Colour returns the colour of the i-th line.
func (p Palette) Colour(i int) drawing.Color {
	if len(p.Series) == 0 {
		return p.Foreground
	}
	return p.Series[i%len(p.Series)]
}

// LoadPalette reads colours from the given zero based lines of a palette
// file, such as a terminal theme. The colour of a line is its last #rrggbb
// token. The first line gives the background, the second the foreground and
// the rest the series colours. Missing parts fall back to DefaultPalette.
func LoadPalette(path string, lines []int) (Palette, error) {
	palette := DefaultPalette()
	if len(lines) == 0 {
		return palette, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return palette, fmt.Errorf("failed to open palette: %w", err)
	}
	defer f.Close()

	var content []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		content = append(content, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return palette, fmt.Errorf("failed to read palette: %w", err)
	}

	var series []drawing.Color
	for i, n := range lines {
		if n < 0 || n >= len(content) {
			return palette, fmt.Errorf("palette %s has no line %d", path, n)
		}
		c, ok := lastHex(content[n])
		if !ok {
			return palette, fmt.Errorf("palette %s line %d has no #rrggbb colour", path, n)
		}
		switch i {
		case 0:
			palette.Background = c
		case 1:
			palette.Foreground = c
		default:
			series = append(series, c)
		}
	}
	if len(series) > 0 {
		palette.Series = series
	}
	return palette, nil
}

// lastHex finds the last #rrggbb token of line.
func lastHex(line string) (drawing.Color, bool) {
	for i := strings.LastIndexByte(line, '#'); i >= 0; i = strings.LastIndexByte(line[:i], '#') {
		if c, err := parseHex(line[i:]); err == nil {
			return c, true
		}
	}
	return drawing.Color{}, false
}

// parseHex parses the #rrggbb prefix of s.
func parseHex(s string) (drawing.Color, error) {
	if len(s) < 7 || s[0] != '#' {
		return drawing.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s[1:7], 16, 32)
	if err != nil {
		return drawing.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	return drawing.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func mustHex(s string) drawing.Color {
	c, err := parseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
