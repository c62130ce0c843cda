// Package spectrum implements a unified two-scale wave spectrum: a
// peak-enhanced Pierson-Moskowitz long-wave component plus a capillary
// short-wave component, with directional spreading against the wind.
package spectrum

import (
	"math"

	"github.com/san-kum/oceanfft/internal/compute"
	"github.com/san-kum/oceanfft/internal/grid"
)

const (
	Gravity = 9.81

	// Wavenumber and phase speed at the gravity-capillary minimum.
	km = 370.0
	cm = 0.23

	// Dimensionless peak parameter for a fully developed sea.
	omegaPeak = 0.84

	// Inputs below this magnitude carry no wave energy; guarding here
	// keeps every downstream division and log finite.
	epsilon = 1e-12
)

// Dispersion maps wavenumber magnitude to angular frequency, including
// the capillary correction term.
func Dispersion(k float64) float64 {
	return math.Sqrt(Gravity * k * (1.0 + (k*k)/(km*km)))
}

// Params describes the frequency grid and the wind driving it.
type Params struct {
	Resolution int
	PatchSize  float64
	WindX      float64
	WindY      float64
}

func (p Params) WindSpeed() float64 { return math.Hypot(p.WindX, p.WindY) }

// DeltaK is the wavenumber spacing between adjacent frequency bins.
func (p Params) DeltaK() float64 { return 2.0 * math.Pi / p.PatchSize }

// Wavevector maps a grid cell to its centered wavevector.
func (p Params) Wavevector(x, y int) (kx, ky float64) {
	dk := p.DeltaK()
	return dk * float64(grid.Freq(x, p.Resolution)), dk * float64(grid.Freq(y, p.Resolution))
}

// Amplitude returns the static spectral amplitude h0 for one wavevector.
// Pure per-cell function; zero at the DC bin and in still air.
func (p Params) Amplitude(kx, ky float64) float64 {
	k := math.Hypot(kx, ky)
	u := p.WindSpeed()
	if k < epsilon || u < epsilon {
		return 0
	}

	kp := Gravity * sq(omegaPeak/u)
	c := Dispersion(k) / k
	cp := Dispersion(kp) / kp

	// Long-wave component: PM shape, peak enhancement, exp correction.
	lpm := math.Exp(-1.25 * sq(kp/k))
	sigma := 0.08 * (1.0 + 4.0*math.Pow(omegaPeak, -3.0))
	gammaExp := math.Exp(-sq(math.Sqrt(k/kp)-1.0) / (2.0 * sq(sigma)))
	jp := math.Pow(1.7, gammaExp)
	fp := lpm * jp * math.Exp(-omegaPeak/math.Sqrt(10.0)*(math.Sqrt(k/kp)-1.0))
	alphap := 0.006 * math.Sqrt(omegaPeak)
	bl := 0.5 * alphap * cp / c * fp

	// Friction velocity from the log-law over roughness length z0.
	z0 := 3.7e-5 * sq(u) / Gravity * math.Pow(u/cp, 0.9)
	if z0 <= 0 || z0 >= 10.0 {
		return 0
	}
	uStar := 0.41 * u / math.Log(10.0/z0)
	if uStar < epsilon {
		return 0
	}

	// Short-wave component around the capillary minimum.
	var alpham float64
	if uStar < cm {
		alpham = 0.01 * (1.0 + math.Log(uStar/cm))
	} else {
		alpham = 0.01 * (1.0 + 3.0*math.Log(uStar/cm))
	}
	fm := math.Exp(-0.25 * sq(k/km-1.0))
	bh := 0.5 * alpham * cm / c * fm * lpm

	// Directional spreading relative to the wind.
	a0 := math.Log(2.0) / 4.0
	am := 0.13 * uStar / cm
	delta := math.Tanh(a0 + 4.0*math.Pow(c/cp, 2.5) + am*math.Pow(cm/c, 2.5))
	cosPhi := (p.WindX*kx + p.WindY*ky) / (u * k)

	s := 1.0 / (2.0 * math.Pi) * math.Pow(k, -4.0) * (bl + bh) * (1.0 + delta*(2.0*cosPhi*cosPhi-1.0))

	return math.Sqrt(math.Max(s, 0)/2.0) * p.DeltaK()
}

// Generate fills dst with the static spectrum. Re-run only when wind or
// grid parameters change; the field is stable otherwise.
func Generate(p Params, dst *grid.Scalar) {
	n := p.Resolution
	compute.ParallelFor(n, 1, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < n; x++ {
				kx, ky := p.Wavevector(x, y)
				dst.Set(x, y, p.Amplitude(kx, ky))
			}
		}
	})
}

func sq(x float64) float64 { return x * x }
