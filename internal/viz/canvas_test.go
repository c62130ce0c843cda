package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/oceanfft/internal/surface"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %x", c.Grid[0][0])
	}

	// Out of bounds is a no-op.
	c.Set(-1, 0)
	c.Set(100, 100)

	c.Clear()
	if c.Grid[0][0] != 0x2800 {
		t.Error("clear did not reset the cell")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("diagonal line lit no cells")
	}
}

func TestDrawSurfaceLitsCanvas(t *testing.T) {
	d := surface.NewDisplacement(8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			d.Set(x, y, surface.Vec3{Y: float64(x % 2)})
		}
	}

	c := NewCanvas(20, 10)
	c.DrawSurface(d, 4)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("surface drawing lit no cells")
	}
}

func TestRenderFieldShades(t *testing.T) {
	d := surface.NewDisplacement(8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			d.Set(x, y, surface.Vec3{Y: float64(x)})
		}
	}

	out := RenderField(d, 8)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}
	first := []rune(lines[0])
	if first[0] == first[len(first)-1] {
		t.Error("ramp field should shade the edges differently")
	}
}

func TestRenderFieldFlat(t *testing.T) {
	out := RenderField(surface.NewDisplacement(4), 4)
	if strings.ContainsAny(out, "@#%") {
		t.Error("flat field should not hit the bright end of the ramp")
	}
}

func TestTransect(t *testing.T) {
	d := surface.NewDisplacement(4)
	d.Set(2, 1, surface.Vec3{Y: 3.5})

	heights := Transect(d, 1)
	if len(heights) != 4 {
		t.Fatalf("expected 4 heights, got %d", len(heights))
	}
	if heights[2] != 3.5 {
		t.Errorf("expected height 3.5 at x=2, got %f", heights[2])
	}

	// Row index is clamped.
	if Transect(d, 99) == nil {
		t.Error("clamped transect should not be nil")
	}
}
