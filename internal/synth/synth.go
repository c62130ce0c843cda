// Package synth reconstructs the time-varying complex spectrum from the
// static amplitudes and the evolved phase field.
package synth

import (
	"math"

	"github.com/san-kum/oceanfft/internal/compute"
	"github.com/san-kum/oceanfft/internal/grid"
	"github.com/san-kum/oceanfft/internal/spectrum"
)

const epsilon = 1e-12

type Synthesizer struct {
	p          spectrum.Params
	Choppiness float64
}

func New(p spectrum.Params, choppiness float64) *Synthesizer {
	return &Synthesizer{p: p, Choppiness: choppiness}
}

// Build fills dst with two packed channels per cell: A = hx + i·h and
// B = hz. Packing two Hermitian spectra into each complex channel lets a
// single inverse transform recover two real quantities at once.
func (s *Synthesizer) Build(h0, phases *grid.Scalar, dst *grid.Packed) {
	n := s.p.Resolution
	compute.ParallelFor(n, 1, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < n; x++ {
				h, hx, hz := s.cellSpectra(h0, phases, x, y)
				a := hx + mulI(h)
				dst.Set(x, y, a, hz)
			}
		}
	})
}

// cellSpectra is the per-cell kernel. The height spectrum combines the
// cell's rotated amplitude with the conjugate-rotated amplitude and
// phase of the mirrored cell at ((N-x) mod N, (N-y) mod N). Taking the
// mirror cell's own phase for the conjugate term is what makes
// h(k) = conj(h(-k)) hold exactly for any seeding. The phase already
// carries the accumulated ω·t, so no extra time factor appears here.
func (s *Synthesizer) cellSpectra(h0, phases *grid.Scalar, x, y int) (h, hx, hz complex128) {
	kx, ky := s.p.Wavevector(x, y)
	k := math.Hypot(kx, ky)
	if k < epsilon {
		return 0, 0, 0
	}

	n := s.p.Resolution
	amp := h0.At(x, y)
	ampMirror := h0.AtWrap(n-x, n-y)

	phi := phases.At(x, y)
	phiMirror := phases.AtWrap(n-x, n-y)
	rot := complex(math.Cos(phi), math.Sin(phi))
	rotMirror := complex(math.Cos(phiMirror), math.Sin(phiMirror))

	h = complex(amp, 0)*rot + complex(ampMirror, 0)*conj(rotMirror)

	// Horizontal displacement as a frequency-domain derivative:
	// hx = -i·(kx/|k|)·h·choppiness, likewise for hz.
	grad := mulNegI(h)
	hx = scale(grad, kx/k*s.Choppiness)
	hz = scale(grad, ky/k*s.Choppiness)
	return h, hx, hz
}

// mulI is the closed-form rotation (re,im) -> (-im,re).
func mulI(z complex128) complex128 { return complex(-imag(z), real(z)) }

func mulNegI(z complex128) complex128 { return complex(imag(z), -real(z)) }

func conj(z complex128) complex128 { return complex(real(z), -imag(z)) }

func scale(z complex128, s float64) complex128 {
	return complex(real(z)*s, imag(z)*s)
}
