// Package phase advances the per-frequency phase field of the ocean
// spectrum by the dispersion relation.
package phase

import (
	"math"
	"math/rand"

	"github.com/san-kum/oceanfft/internal/compute"
	"github.com/san-kum/oceanfft/internal/grid"
)

const twoPi = 2.0 * math.Pi

// Buffers double-buffers the phase field. A step reads Current and
// writes Next; Swap commits the step. Nothing else may mutate either
// buffer while a step is in flight.
type Buffers struct {
	cur, next *grid.Scalar
}

func NewBuffers(n int) *Buffers {
	return &Buffers{cur: grid.NewScalar(n), next: grid.NewScalar(n)}
}

func (b *Buffers) Current() *grid.Scalar { return b.cur }
func (b *Buffers) Next() *grid.Scalar    { return b.next }

func (b *Buffers) Swap() { b.cur, b.next = b.next, b.cur }

// Seed fills the current buffer with one independent uniform draw in
// [0, 2π) per cell. The simulation itself never re-seeds; this is the
// host-side precondition before the first tick.
func (b *Buffers) Seed(rng *rand.Rand) {
	data := b.cur.Data()
	for i := range data {
		data[i] = rng.Float64() * twoPi
	}
}

// Evolver advances phases with phase' = (phase + ω(k)·Δt) mod 2π.
type Evolver struct {
	params func(x, y int) (kx, ky float64)
	omega  func(k float64) float64
	n      int
}

func NewEvolver(n int, wavevector func(x, y int) (float64, float64), dispersion func(float64) float64) *Evolver {
	return &Evolver{params: wavevector, omega: dispersion, n: n}
}

// Step reads src and writes dst. The two must be distinct buffers; an
// in-place update would race against the unwrapped reads of the same pass.
func (e *Evolver) Step(src, dst *grid.Scalar, dt float64) {
	if src == dst {
		panic("phase: step requires distinct input and output buffers")
	}
	n := e.n
	compute.ParallelFor(n, 1, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < n; x++ {
				kx, ky := e.params(x, y)
				k := math.Hypot(kx, ky)
				dst.Set(x, y, advance(src.At(x, y), e.omega(k), dt))
			}
		}
	})
}

// advance is the per-cell kernel. ω(0) = 0, so the DC phase never
// rotates.
func advance(phi, omega, dt float64) float64 {
	phi = math.Mod(phi+omega*dt, twoPi)
	if phi < 0 {
		phi += twoPi
	}
	return phi
}
