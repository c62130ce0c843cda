// Package fft computes the 2D inverse transform of the packed spectrum
// with an iterative butterfly network, one axis at a time.
package fft

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/san-kum/oceanfft/internal/compute"
	"github.com/san-kum/oceanfft/internal/grid"
)

// Inverse2D runs log2(N) horizontal butterfly stages followed by log2(N)
// vertical ones, ping-ponging between two internal buffers. The stage
// layout is self-sorting: natural order in, natural order out, so no
// bit-reversal permutation is needed. The twiddle uses the positive
// (conjugated) exponent and no 1/N² normalization, matching an
// unnormalized inverse DFT.
type Inverse2D struct {
	n      int
	stages int
	ping   *grid.Packed
	pong   *grid.Packed
}

func NewInverse2D(n int) (*Inverse2D, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("fft: resolution must be a power of two, got %d", n)
	}
	return &Inverse2D{
		n:      n,
		stages: bits.Len(uint(n)) - 1,
		ping:   grid.NewPacked(n),
		pong:   grid.NewPacked(n),
	}, nil
}

// Transform inverts src. The returned buffer is owned by the engine and
// stays valid until the next Transform call; src is never written.
func (f *Inverse2D) Transform(src *grid.Packed) *grid.Packed {
	if src == f.ping || src == f.pong {
		panic("fft: src aliases an internal buffer")
	}

	in, out := src, f.ping
	for s := 0; s < f.stages; s++ {
		f.horizontalStage(in, out, 1<<s)
		in = out
		out = f.other(in)
	}
	for s := 0; s < f.stages; s++ {
		f.verticalStage(in, out, 1<<s)
		in = out
		out = f.other(in)
	}
	return in
}

func (f *Inverse2D) other(cur *grid.Packed) *grid.Packed {
	if cur == f.ping {
		return f.pong
	}
	return f.ping
}

// horizontalStage runs the N/2 butterflies of every row. in and out are
// distinct buffers; the ParallelFor barrier makes all writes visible
// before the next stage reads them.
func (f *Inverse2D) horizontalStage(in, out *grid.Packed, subseq int) {
	n, half := f.n, f.n/2
	compute.ParallelFor(n, 1, func(start, end int) {
		for row := start; row < end; row++ {
			for t := 0; t < half; t++ {
				inIdx := t & (subseq - 1)
				outIdx := ((t - inIdx) << 1) + inIdx
				w := twiddle(inIdx, subseq)

				a1, b1 := in.At(t, row)
				a2, b2 := in.At(t+half, row)

				out.Set(outIdx, row, a1+w*a2, b1+w*b2)
				out.Set(outIdx+subseq, row, a1-w*a2, b1-w*b2)
			}
		}
	})
}

// verticalStage is the same network mirrored along the other axis.
func (f *Inverse2D) verticalStage(in, out *grid.Packed, subseq int) {
	n, half := f.n, f.n/2
	compute.ParallelFor(n, 1, func(start, end int) {
		for col := start; col < end; col++ {
			for t := 0; t < half; t++ {
				inIdx := t & (subseq - 1)
				outIdx := ((t - inIdx) << 1) + inIdx
				w := twiddle(inIdx, subseq)

				a1, b1 := in.At(col, t)
				a2, b2 := in.At(col, t+half)

				out.Set(col, outIdx, a1+w*a2, b1+w*b2)
				out.Set(col, outIdx+subseq, a1-w*a2, b1-w*b2)
			}
		}
	})
}

func twiddle(inIdx, subseq int) complex128 {
	ang := math.Pi * float64(inIdx) / float64(subseq)
	return complex(math.Cos(ang), math.Sin(ang))
}
