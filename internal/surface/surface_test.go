package surface

import (
	"math"
	"testing"

	"github.com/san-kum/oceanfft/internal/grid"
)

func TestUnpackMapping(t *testing.T) {
	n := 4
	src := grid.NewPacked(n)
	src.Set(1, 2, complex(0.5, -1.5), complex(2.5, 0.01))

	dst := NewDisplacement(n)
	Unpack(src, dst)

	got := dst.At(1, 2)
	want := Vec3{X: 0.5, Y: -1.5, Z: 2.5}
	if got != want {
		t.Errorf("unpacked %v, want %v (imag of channel B must be dropped)", got, want)
	}
}

func TestFlatFieldGivesUpNormals(t *testing.T) {
	n := 8
	disp := NewDisplacement(n)
	normals := NewNormals(n)

	ComputeNormals(disp, 150.0/float64(n), normals)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if got := normals.At(x, y); got != (Vec3{0, 0, 1}) {
				t.Fatalf("cell (%d,%d): normal %v, want (0,0,1)", x, y, got)
			}
		}
	}
}

func TestNormalsAreUnitLength(t *testing.T) {
	n := 8
	disp := NewDisplacement(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			h := math.Sin(float64(x)*0.9) * math.Cos(float64(y)*1.3)
			disp.Set(x, y, Vec3{X: 0.1 * h, Y: h, Z: -0.05 * h})
		}
	}

	normals := NewNormals(n)
	ComputeNormals(disp, 1.0, normals)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if l := normals.At(x, y).Norm(); math.Abs(l-1) > 1e-12 {
				t.Fatalf("cell (%d,%d): |normal| = %v", x, y, l)
			}
		}
	}
}

// wrapNormalAt recomputes the kernel with toroidal sampling; edge cells
// must disagree with it because the generator clamps.
func wrapNormalAt(disp *Displacement, texel float64, x, y int) Vec3 {
	n := disp.N
	at := func(i, j int) Vec3 { return disp.At(grid.Wrap(i, n), grid.Wrap(j, n)) }

	c := at(x, y)
	dR, dL := at(x+1, y), at(x-1, y)
	dU, dD := at(x, y+1), at(x, y-1)

	right := Vec3{texel + dR.X - c.X, dR.Z - c.Z, dR.Y - c.Y}
	left := Vec3{-texel + dL.X - c.X, dL.Z - c.Z, dL.Y - c.Y}
	up := Vec3{dU.X - c.X, texel + dU.Z - c.Z, dU.Y - c.Y}
	down := Vec3{dD.X - c.X, -texel + dD.Z - c.Z, dD.Y - c.Y}

	sum := right.Cross(up).Add(up.Cross(left)).Add(left.Cross(down)).Add(down.Cross(right))
	norm := sum.Norm()
	if norm < degenerateNormal {
		return Vec3{0, 0, 1}
	}
	v := Vec3{sum.X / norm, sum.Y / norm, sum.Z / norm}
	if v.Z < 0 {
		v = Vec3{-v.X, -v.Y, -v.Z}
	}
	return v
}

func TestEdgeCellsClampNotWrap(t *testing.T) {
	n := 8
	disp := NewDisplacement(n)
	// Strong height ramp across the x axis so the boundary is
	// non-trivial: wrapping would see the opposite edge's heights.
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			disp.Set(x, y, Vec3{Y: float64(x)})
		}
	}

	normals := NewNormals(n)
	ComputeNormals(disp, 1.0, normals)

	clamped := normals.At(0, 3)
	wrapped := wrapNormalAt(disp, 1.0, 0, 3)
	if clamped == wrapped {
		t.Errorf("edge normal matches periodic wrap; expected clamped sampling to differ")
	}

	// Interior cells see identical neighborhoods either way.
	if got, want := normals.At(3, 3), wrapNormalAt(disp, 1.0, 3, 3); got != want {
		t.Errorf("interior normal differs from wrap reference: %v vs %v", got, want)
	}
}

func TestDegenerateSumFallsBackToUp(t *testing.T) {
	// texel = 0 with a flat field collapses every edge vector to zero.
	n := 4
	disp := NewDisplacement(n)
	normals := NewNormals(n)
	ComputeNormals(disp, 0, normals)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if got := normals.At(x, y); got != (Vec3{0, 0, 1}) {
				t.Fatalf("cell (%d,%d): %v, want up fallback", x, y, got)
			}
		}
	}
}

func TestNormalsForcedUpward(t *testing.T) {
	// Horizontal displacement strong enough to invert the surface
	// parameterization; raw cross sums point down, output must not.
	n := 8
	texel := 1.0
	disp := NewDisplacement(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			disp.Set(x, y, Vec3{X: -2 * texel * float64(x)})
		}
	}

	normals := NewNormals(n)
	ComputeNormals(disp, texel, normals)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if nrm := normals.At(x, y); nrm.Z <= 0 {
				t.Fatalf("cell (%d,%d): normal %v faces downward", x, y, nrm)
			}
		}
	}
}

func TestCrossProduct(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("x×y = %v, want (0,0,1)", got)
	}
	if got := y.Cross(x); got != (Vec3{0, 0, -1}) {
		t.Errorf("y×x = %v, want (0,0,-1)", got)
	}
}
