package viz

import (
	"strings"

	"github.com/san-kum/oceanfft/internal/surface"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set turns on a pixel at (x, y) in sub-pixel coordinates. The canvas
// size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawSurface renders the displacement field as a stack of height
// transects, back rows drawn higher to fake depth. heightScale maps
// one unit of height to sub-pixel rows.
func (c *Canvas) DrawSurface(d *surface.Displacement, heightScale float64) {
	if d == nil || d.N == 0 {
		return
	}

	pw := c.Width * 2
	ph := c.Height * 4
	rows := c.Height / 2
	if rows < 2 {
		rows = 2
	}
	if rows > d.N {
		rows = d.N
	}

	rowGap := ph / (rows + 1)
	for r := 0; r < rows; r++ {
		gy := r * d.N / rows
		base := ph - (r+1)*rowGap

		prevX, prevY := -1, -1
		for px := 0; px < pw; px++ {
			gx := px * d.N / pw
			h := d.At(gx, gy).Y
			py := base - int(h*heightScale)
			if py < 0 {
				py = 0
			}
			if py >= ph {
				py = ph - 1
			}
			if prevX >= 0 {
				c.DrawLine(prevX, prevY, px, py)
			} else {
				c.Set(px, py)
			}
			prevX, prevY = px, py
		}
	}
}

// DrawTransect plots a single row of heights as a polyline across the
// full canvas width.
func (c *Canvas) DrawTransect(heights []float64, heightScale float64) {
	if len(heights) == 0 {
		return
	}

	pw := c.Width * 2
	mid := c.Height * 2

	prevX, prevY := -1, -1
	for px := 0; px < pw; px++ {
		i := px * len(heights) / pw
		py := mid - int(heights[i]*heightScale)
		if prevX >= 0 {
			c.DrawLine(prevX, prevY, px, py)
		} else {
			c.Set(px, py)
		}
		prevX, prevY = px, py
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
