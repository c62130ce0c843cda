package viz

import (
	"math"
	"strings"

	"github.com/san-kum/oceanfft/internal/surface"
)

// Darker runes are troughs, brighter runes are crests.
var shadeRamp = []rune(" .:-=+*#%@")

// RenderField shades the height field as a block of text, one rune per
// sampled cell, at most cols characters wide.
func RenderField(d *surface.Displacement, cols int) string {
	if d == nil || d.N == 0 || cols < 1 {
		return ""
	}
	if cols > d.N {
		cols = d.N
	}
	// Terminal cells are roughly twice as tall as wide.
	rows := cols / 2
	if rows < 1 {
		rows = 1
	}

	min, max := math.Inf(1), math.Inf(-1)
	for y := 0; y < d.N; y++ {
		for x := 0; x < d.N; x++ {
			h := d.At(x, y).Y
			if h < min {
				min = h
			}
			if h > max {
				max = h
			}
		}
	}
	span := max - min
	if span < 1e-12 {
		span = 1
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		gy := r * d.N / rows
		for c := 0; c < cols; c++ {
			gx := c * d.N / cols
			h := d.At(gx, gy).Y
			idx := int((h - min) / span * float64(len(shadeRamp)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(shadeRamp) {
				idx = len(shadeRamp) - 1
			}
			b.WriteRune(shadeRamp[idx])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Transect extracts the heights along one grid row.
func Transect(d *surface.Displacement, row int) []float64 {
	if d == nil || d.N == 0 {
		return nil
	}
	if row < 0 {
		row = 0
	}
	if row >= d.N {
		row = d.N - 1
	}
	out := make([]float64, d.N)
	for x := 0; x < d.N; x++ {
		out[x] = d.At(x, row).Y
	}
	return out
}
