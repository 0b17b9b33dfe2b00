package component

import "github.com/lixenwraith/vi-invaders/vmath"

// BunkerShape is the silhouette used to generate every bunker grid
type BunkerShape struct {
	Width, Height float64
	CellSize      float64
	CornerSize    int // Rows over which the top corners are cut
	ArchWidth     int // Cells left open at the bottom center
	ArchHeight    int
}

func (s BunkerShape) Cols() int { return int(s.Width / s.CellSize) }
func (s BunkerShape) Rows() int { return int(s.Height / s.CellSize) }

// Bunker is a destructible cover grid; cells never regrow
type Bunker struct {
	X, Y       float64
	W, H       float64
	Cols, Rows int
	CellSize   float64
	Cells      []bool // Row-major, true = solid
}

// NewBunker generates a fresh bunker at (x, y) from the shape
func NewBunker(x, y float64, s BunkerShape) Bunker {
	cols, rows := s.Cols(), s.Rows()
	b := Bunker{
		X:        x,
		Y:        y,
		W:        s.Width,
		H:        s.Height,
		Cols:     cols,
		Rows:     rows,
		CellSize: s.CellSize,
		Cells:    make([]bool, cols*rows),
	}

	center := float64(cols) / 2
	archHalf := float64(s.ArchWidth) / 2

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			solid := true

			// Rounded top corners: a triangle shrinking by one cell per row
			if row < s.CornerSize {
				cut := s.CornerSize - row
				if col < cut || col >= cols-cut {
					solid = false
				}
			}

			// Arch at bottom center
			if row >= rows-s.ArchHeight {
				c := float64(col)
				if c >= center-archHalf && c < center+archHalf {
					solid = false
				}
			}

			b.Cells[row*cols+col] = solid
		}
	}
	return b
}

func (b *Bunker) Rect() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// InGrid reports whether (row, col) addresses a cell
func (b *Bunker) InGrid(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// Solid reports whether the cell is intact; out-of-grid cells are never solid
func (b *Bunker) Solid(row, col int) bool {
	if !b.InGrid(row, col) {
		return false
	}
	return b.Cells[row*b.Cols+col]
}

// Destroy clears a cell; out-of-grid addresses are ignored
func (b *Bunker) Destroy(row, col int) {
	if b.InGrid(row, col) {
		b.Cells[row*b.Cols+col] = false
	}
}

// CellRect returns the playfield box of a cell
func (b *Bunker) CellRect(row, col int) vmath.Rect {
	return vmath.Rect{
		X: b.X + float64(col)*b.CellSize,
		Y: b.Y + float64(row)*b.CellSize,
		W: b.CellSize,
		H: b.CellSize,
	}
}

// CellAt converts a playfield point to grid coordinates, which may be out of grid
func (b *Bunker) CellAt(x, y float64) (row, col int) {
	col = vmath.Floor((x - b.X) / b.CellSize)
	row = vmath.Floor((y - b.Y) / b.CellSize)
	return row, col
}

// SolidCount returns the number of intact cells
func (b *Bunker) SolidCount() int {
	n := 0
	for _, c := range b.Cells {
		if c {
			n++
		}
	}
	return n
}

// CopyInto overwrites dst with b, reusing dst's cell storage
func (b *Bunker) CopyInto(dst *Bunker) {
	cells := append(dst.Cells[:0], b.Cells...)
	*dst = *b
	dst.Cells = cells
}

// PlaceBunkers spaces count bunkers evenly across width at y
func PlaceBunkers(count int, width, y float64, s BunkerShape) []Bunker {
	if count <= 0 {
		return nil
	}
	spacing := (width - float64(count)*s.Width) / float64(count+1)
	out := make([]Bunker, 0, count)
	for i := 0; i < count; i++ {
		x := spacing + float64(i)*(s.Width+spacing)
		out = append(out, NewBunker(x, y, s))
	}
	return out
}
