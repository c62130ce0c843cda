// Package surface turns the inverted spectrum into the displacement and
// normal fields consumed by the renderer.
package surface

import (
	"math"

	"github.com/san-kum/oceanfft/internal/compute"
	"github.com/san-kum/oceanfft/internal/grid"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Norm() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Displacement stores one (dx, height, dz) vector per cell: X and Z are
// the horizontal choppiness offsets, Y the wave height.
type Displacement struct {
	N    int
	data []Vec3
}

func NewDisplacement(n int) *Displacement {
	return &Displacement{N: n, data: make([]Vec3, n*n)}
}

func (d *Displacement) At(x, y int) Vec3     { return d.data[y*d.N+x] }
func (d *Displacement) Set(x, y int, v Vec3) { d.data[y*d.N+x] = v }

// AtClamp samples with the edge pixel repeated. The slope generator
// deliberately clamps instead of wrapping, which flattens normals along
// the patch border; keep it that way.
func (d *Displacement) AtClamp(x, y int) Vec3 {
	return d.data[grid.Clamp(y, d.N)*d.N+grid.Clamp(x, d.N)]
}

// Normals stores one unit vector per cell in map space: x right,
// y forward, z up.
type Normals struct {
	N    int
	data []Vec3
}

func NewNormals(n int) *Normals {
	return &Normals{N: n, data: make([]Vec3, n*n)}
}

func (f *Normals) At(x, y int) Vec3     { return f.data[y*f.N+x] }
func (f *Normals) Set(x, y int, v Vec3) { f.data[y*f.N+x] = v }

// Unpack extracts (dx, height, dz) = (re A, im A, re B) from the
// inverted packed field. The imaginary part of B is numerical noise left
// over from the Hermitian construction and is dropped.
func Unpack(src *grid.Packed, dst *Displacement) {
	n := src.N
	compute.ParallelFor(n, 1, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < n; x++ {
				a, b := src.At(x, y)
				dst.Set(x, y, Vec3{X: real(a), Y: imag(a), Z: real(b)})
			}
		}
	})
}

const degenerateNormal = 1e-8

// ComputeNormals estimates a unit normal per cell from four neighboring
// triangles of the displaced surface. texel is the world-space step
// between adjacent cells (patch size / resolution).
func ComputeNormals(disp *Displacement, texel float64, dst *Normals) {
	n := disp.N
	compute.ParallelFor(n, 1, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < n; x++ {
				dst.Set(x, y, normalAt(disp, texel, x, y))
			}
		}
	})
}

// normalAt is the per-cell kernel. Neighbor samples are clamped to the
// grid, the step itself is not, so border cells see zero deltas toward
// the outside.
func normalAt(disp *Displacement, texel float64, x, y int) Vec3 {
	c := disp.At(x, y)
	dR := disp.AtClamp(x+1, y)
	dL := disp.AtClamp(x-1, y)
	dU := disp.AtClamp(x, y+1)
	dD := disp.AtClamp(x, y-1)

	// Map space: x right, y forward, z up. Displacement Y is height,
	// so it lands on the z axis here.
	right := Vec3{texel + dR.X - c.X, dR.Z - c.Z, dR.Y - c.Y}
	left := Vec3{-texel + dL.X - c.X, dL.Z - c.Z, dL.Y - c.Y}
	up := Vec3{dU.X - c.X, texel + dU.Z - c.Z, dU.Y - c.Y}
	down := Vec3{dD.X - c.X, -texel + dD.Z - c.Z, dD.Y - c.Y}

	sum := right.Cross(up).
		Add(up.Cross(left)).
		Add(left.Cross(down)).
		Add(down.Cross(right))

	norm := sum.Norm()
	if norm < degenerateNormal {
		return Vec3{0, 0, 1}
	}

	nrm := Vec3{sum.X / norm, sum.Y / norm, sum.Z / norm}
	// Heightfield normals face upward; overhangs cannot flip them.
	if nrm.Z < 0 {
		nrm = Vec3{-nrm.X, -nrm.Y, -nrm.Z}
	}
	return nrm
}
