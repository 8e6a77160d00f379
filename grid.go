package brailler

import (
	"fmt"
	"strings"

	"github.com/submersibletoaster/brailler/glyph"
)

// Grid - row-major Braille masks, Cols x Rows
type Grid struct {
	Cols  int
	Rows  int
	Masks []glyph.Mask
}

// At returns the mask of cell (x,y).
func (g Grid) At(x, y int) glyph.Mask {
	return g.Masks[y*g.Cols+x]
}

// Lines returns one string of glyphs per row.
func (g Grid) Lines() []string {
	lines := make([]string, g.Rows)
	var sb strings.Builder
	for y := 0; y < g.Rows; y++ {
		sb.Reset()
		sb.Grow(g.Cols * 3)
		for _, m := range g.Masks[y*g.Cols : (y+1)*g.Cols] {
			sb.WriteRune(m.Rune())
		}
		lines[y] = sb.String()
	}
	return lines
}

// String joins the rows, with "\n" between them when includeSeparator is
// set. No trailing separator is added.
func (g Grid) String(includeSeparator bool) string {
	sep := ""
	if includeSeparator {
		sep = "\n"
	}
	return strings.Join(g.Lines(), sep)
}

// Distance counts the dots that differ between two grids of equal shape.
func (g Grid) Distance(other Grid) (int, error) {
	if g.Cols != other.Cols || g.Rows != other.Rows {
		return 0, fmt.Errorf("grid shape %dx%d does not match %dx%d", g.Cols, g.Rows, other.Cols, other.Rows)
	}
	d, _, err := glyph.Distance(g.Masks, other.Masks)
	return d, err
}

// ParseGrid reads Braille art back into a Grid of cols columns. Line breaks
// are ignored so output of either separator mode is accepted.
func ParseGrid(art string, cols int) (Grid, error) {
	if cols <= 0 {
		return Grid{}, &InvalidDimensionError{Width: cols}
	}
	masks := make([]glyph.Mask, 0, len(art)/3)
	for i, r := range art {
		if r == '\n' || r == '\r' {
			continue
		}
		m, ok := glyph.FromRune(r)
		if !ok {
			return Grid{}, fmt.Errorf("byte %d: %q is not a Braille pattern", i, r)
		}
		masks = append(masks, m)
	}
	if len(masks) == 0 || len(masks)%cols != 0 {
		return Grid{}, fmt.Errorf("%d glyphs do not fill rows of %d", len(masks), cols)
	}
	return Grid{Cols: cols, Rows: len(masks) / cols, Masks: masks}, nil
}
