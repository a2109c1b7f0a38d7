package viz

import "strings"

// Braille cells pack 2x4 sub-pixels, so a WxH character canvas addresses
// (W*2)x(H*4) points. Unicode braille block starts at 0x2800.
var dotBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	cols, rows int
	cells      [][]rune
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{cols: cols, rows: rows, cells: make([][]rune, rows)}
	for i := range c.cells {
		c.cells[i] = make([]rune, cols)
	}
	c.Clear()
	return c
}

// Width and Height report the canvas size in sub-pixels.
func (c *Canvas) Width() int  { return c.cols * 2 }
func (c *Canvas) Height() int { return c.rows * 4 }

func (c *Canvas) Clear() {
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = 0x2800
		}
	}
}

// Set lights the sub-pixel at (x, y); out-of-range points are dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row][col] |= dotBits[y%4][x%2]
}

// Dot lights a small filled disc around (x, y).
func (c *Canvas) Dot(x, y, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(x+dx, y+dy)
			}
		}
	}
}

// Line draws with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
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

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
