package metrics

import (
	"math"

	"github.com/san-kum/oceanfft/internal/surface"
)

// SignificantHeight estimates Hs as four standard deviations of the
// vertical displacement, averaged over the observed ticks.
type SignificantHeight struct {
	name    string
	samples int
	total   float64
}

func NewSignificantHeight() *SignificantHeight {
	return &SignificantHeight{name: "significant_height"}
}

func (m *SignificantHeight) Name() string { return m.name }

func (m *SignificantHeight) Observe(d *surface.Displacement, t float64) {
	n := d.N
	cells := float64(n * n)

	var mean float64
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			mean += d.At(x, y).Y
		}
	}
	mean /= cells

	var variance float64
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dev := d.At(x, y).Y - mean
			variance += dev * dev
		}
	}
	variance /= cells

	m.total += 4 * math.Sqrt(variance)
	m.samples++
}

func (m *SignificantHeight) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *SignificantHeight) Reset() {
	m.total = 0
	m.samples = 0
}

// PeakDisplacement tracks the largest displacement magnitude seen over
// the whole run.
type PeakDisplacement struct {
	name string
	peak float64
}

func NewPeakDisplacement() *PeakDisplacement {
	return &PeakDisplacement{name: "peak_displacement"}
}

func (m *PeakDisplacement) Name() string { return m.name }

func (m *PeakDisplacement) Observe(d *surface.Displacement, t float64) {
	n := d.N
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if mag := d.At(x, y).Norm(); mag > m.peak {
				m.peak = mag
			}
		}
	}
}

func (m *PeakDisplacement) Value() float64 { return m.peak }

func (m *PeakDisplacement) Reset() { m.peak = 0 }

// Steepness is the maximum height difference between horizontally
// adjacent cells divided by the texel size, averaged over ticks. Values
// near or above 1 indicate waves the choppiness term will fold over.
type Steepness struct {
	name    string
	texel   float64
	samples int
	total   float64
}

func NewSteepness(texel float64) *Steepness {
	return &Steepness{name: "steepness", texel: texel}
}

func (m *Steepness) Name() string { return m.name }

func (m *Steepness) Observe(d *surface.Displacement, t float64) {
	if m.texel <= 0 {
		return
	}
	n := d.N
	var max float64
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			h := d.At(x, y).Y
			dx := math.Abs(d.AtClamp(x+1, y).Y - h)
			dy := math.Abs(d.AtClamp(x, y+1).Y - h)
			if s := math.Max(dx, dy) / m.texel; s > max {
				max = s
			}
		}
	}
	m.total += max
	m.samples++
}

func (m *Steepness) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *Steepness) Reset() {
	m.total = 0
	m.samples = 0
}
