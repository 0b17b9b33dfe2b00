package render

import (
	"math"

	"github.com/lixenwraith/vi-invaders/vmath"
)

// Viewport maps playfield units onto terminal cells below the HUD rows
type Viewport struct {
	OriginX, OriginY int // Top-left cell of the playfield
	Cols, Rows       int

	scaleX, scaleY float64
	offX, offY     float64 // Shake offset in cells
}

// NewViewport fits a playfield of the given size into a cols x rows cell area
func NewViewport(originX, originY, cols, rows int, width, height float64) Viewport {
	v := Viewport{OriginX: originX, OriginY: originY, Cols: cols, Rows: rows}
	if width > 0 {
		v.scaleX = float64(cols) / width
	}
	if height > 0 {
		v.scaleY = float64(rows) / height
	}
	return v
}

// Shift applies a whole-screen offset in playfield units
func (v *Viewport) Shift(dx, dy float64) {
	v.offX = dx * v.scaleX
	v.offY = dy * v.scaleY
}

// Point converts a playfield point to a cell
func (v *Viewport) Point(x, y float64) (int, int) {
	cx := int(math.Floor(x*v.scaleX + v.offX))
	cy := int(math.Floor(y*v.scaleY + v.offY))
	return v.OriginX + cx, v.OriginY + cy
}

// Span converts a playfield rect to an inclusive cell range, at least one cell in each axis
func (v *Viewport) Span(r vmath.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.Point(r.X, r.Y)
	x1 = v.OriginX + int(math.Ceil(r.Right()*v.scaleX+v.offX)) - 1
	y1 = v.OriginY + int(math.Ceil(r.Bottom()*v.scaleY+v.offY)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

// Contains reports whether a cell lies inside the playfield area
func (v *Viewport) Contains(x, y int) bool {
	return x >= v.OriginX && x < v.OriginX+v.Cols && y >= v.OriginY && y < v.OriginY+v.Rows
}
