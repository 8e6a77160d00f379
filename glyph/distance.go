package glyph

import (
	"fmt"

	"github.com/steakknife/hamming"
)

// Distance gives the number of dots that differ between two mask
// sequences of equal length, and that count normalized over all dots.
func Distance(a, b []Mask) (int, float64, error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("glyph: distance between %d and %d masks", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, 0, nil
	}
	v := hamming.Uint8s(toBytes(a), toBytes(b))
	n := float64(v) / float64(len(a)*8)
	return v, n, nil
}

func toBytes(in []Mask) []uint8 {
	out := make([]uint8, len(in))
	for i, m := range in {
		out[i] = uint8(m)
	}
	return out
}
