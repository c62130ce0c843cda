package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/oceanfft/internal/surface"
)

func checkerboard(n int, amplitude float64) *surface.Displacement {
	d := surface.NewDisplacement(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			h := amplitude
			if (x+y)%2 == 1 {
				h = -amplitude
			}
			d.Set(x, y, surface.Vec3{Y: h})
		}
	}
	return d
}

func TestSignificantHeight(t *testing.T) {
	// A +-2 checkerboard has zero mean and standard deviation 2, so
	// Hs = 8.
	m := NewSignificantHeight()
	m.Observe(checkerboard(8, 2.0), 0)

	if got := m.Value(); math.Abs(got-8.0) > 1e-9 {
		t.Errorf("expected Hs 8, got %f", got)
	}
}

func TestSignificantHeightFlat(t *testing.T) {
	m := NewSignificantHeight()
	m.Observe(surface.NewDisplacement(8), 0)
	if m.Value() != 0 {
		t.Errorf("flat field should give zero Hs, got %f", m.Value())
	}
}

func TestSignificantHeightReset(t *testing.T) {
	m := NewSignificantHeight()
	m.Observe(checkerboard(8, 1.0), 0)
	if m.Value() == 0 {
		t.Error("expected non-zero Hs")
	}
	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero Hs after reset")
	}
}

func TestPeakDisplacement(t *testing.T) {
	m := NewPeakDisplacement()

	d := surface.NewDisplacement(4)
	d.Set(2, 1, surface.Vec3{X: 3, Y: 4})
	m.Observe(d, 0)
	if got := m.Value(); math.Abs(got-5.0) > 1e-12 {
		t.Errorf("expected peak 5, got %f", got)
	}

	// A later, smaller field must not lower the peak.
	m.Observe(surface.NewDisplacement(4), 1)
	if got := m.Value(); math.Abs(got-5.0) > 1e-12 {
		t.Errorf("peak dropped to %f", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero peak after reset")
	}
}

func TestSteepness(t *testing.T) {
	// Heights ramp by 0.5 per cell; with texel 2 the slope is 0.25.
	n := 4
	d := surface.NewDisplacement(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			d.Set(x, y, surface.Vec3{Y: 0.5 * float64(x)})
		}
	}

	m := NewSteepness(2.0)
	m.Observe(d, 0)
	if got := m.Value(); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("expected steepness 0.25, got %f", got)
	}
}

func TestSteepnessZeroTexel(t *testing.T) {
	m := NewSteepness(0)
	m.Observe(checkerboard(4, 1.0), 0)
	if m.Value() != 0 {
		t.Error("zero texel should observe nothing")
	}
}
