package glyph

import (
	"image"
	"math/bits"
)

const (
	// Base is the codepoint of the empty Braille pattern, U+2800
	Base = 0x2800
	// Last is the codepoint with all eight dots raised, U+28FF
	Last = Base + 0xff

	// Threshold - sampled intensities strictly below this are dark
	Threshold = 127

	// CellWidth and CellHeight are the pixel dimensions of one Braille cell
	CellWidth  = 2
	CellHeight = 4
)

// Dots holds the pixel offset of each dot within a cell, in Braille dot
// order. Dot n (1-based) is stored at index n-1 and owns bit n-1 of a Mask.
//
//	1 4
//	2 5
//	3 6
//	7 8
var Dots = [8]image.Point{
	{0, 0}, // dot 1
	{0, 1}, // dot 2
	{0, 2}, // dot 3
	{1, 0}, // dot 4
	{1, 1}, // dot 5
	{1, 2}, // dot 6
	{0, 3}, // dot 7
	{1, 3}, // dot 8
}

// Mask - one bit per raised dot of a Braille cell
type Mask uint8

// Set raises dot index i (0-7)
func (m *Mask) Set(i int) {
	*m |= 1 << uint(i)
}

// Has reports whether dot index i (0-7) is raised
func (m Mask) Has(i int) bool {
	return m&(1<<uint(i)) != 0
}

// Count - number of raised dots
func (m Mask) Count() int {
	return bits.OnesCount8(uint8(m))
}

// Rune returns the Braille codepoint for the mask.
func (m Mask) Rune() rune {
	return rune(Base + int(m))
}

func (m Mask) String() string {
	return string(m.Rune())
}

// FromRune is the inverse of Mask.Rune. ok is false for anything outside
// the Braille Patterns block.
func FromRune(r rune) (m Mask, ok bool) {
	if r < Base || r > Last {
		return 0, false
	}
	return Mask(r - Base), true
}

// Dark reports whether an intensity turns a dot on. 127 is off, 126 is on.
func Dark(v uint8) bool {
	return v < Threshold
}

// FromPixels builds a mask from a function sampling the cell at (dx,dy).
// Sample returns ok=false for positions outside the source, those dots
// stay off.
func FromPixels(sample func(dx, dy int) (v uint8, ok bool)) Mask {
	var m Mask
	for i, d := range Dots {
		v, ok := sample(d.X, d.Y)
		if ok && Dark(v) {
			m.Set(i)
		}
	}
	return m
}
