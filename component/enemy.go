package component

import (
	"time"

	"github.com/lixenwraith/vi-invaders/vmath"
)

// Enemy is one fleet unit; dead units stay in the slice with Alive cleared
type Enemy struct {
	X, Y  float64
	W, H  float64
	Alive bool
	Row   int // 0 is the top row, determines points and sprite
	Col   int
}

func (e *Enemy) Rect() vmath.Rect {
	return vmath.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// FleetLayout describes the initial grid placement
type FleetLayout struct {
	Rows, Cols   int
	UnitW, UnitH float64
	Padding      float64
	Left, Top    float64
}

// Fleet is the marching grid with shared movement state
type Fleet struct {
	Units []Enemy // Row-major, Rows*Cols entries

	Rows, Cols int
	Total      int
	Alive      int

	Direction float64       // +1 right, -1 left
	Frame     int           // Animation frame, toggles 0/1 per step
	StepTimer time.Duration // Accumulates toward the next step
	FireTimer time.Duration // Accumulates toward the next enemy shot
}

// NewFleet builds a full grid moving right
func NewFleet(l FleetLayout) Fleet {
	f := Fleet{
		Units:     make([]Enemy, 0, l.Rows*l.Cols),
		Rows:      l.Rows,
		Cols:      l.Cols,
		Total:     l.Rows * l.Cols,
		Direction: 1,
	}
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			f.Units = append(f.Units, Enemy{
				X:     l.Left + float64(col)*(l.UnitW+l.Padding),
				Y:     l.Top + float64(row)*(l.UnitH+l.Padding),
				W:     l.UnitW,
				H:     l.UnitH,
				Alive: true,
				Row:   row,
				Col:   col,
			})
		}
	}
	f.Alive = f.Total
	return f
}

// Killed returns the number of destroyed units
func (f *Fleet) Killed() int {
	return f.Total - f.Alive
}

// CountAlive recounts alive units from the unit slice
func (f *Fleet) CountAlive() int {
	n := 0
	for i := range f.Units {
		if f.Units[i].Alive {
			n++
		}
	}
	return n
}

// Bounds returns the horizontal extent of alive units
// ok is false when no unit is alive
func (f *Fleet) Bounds() (minX, maxX float64, ok bool) {
	for i := range f.Units {
		u := &f.Units[i]
		if !u.Alive {
			continue
		}
		if !ok {
			minX, maxX, ok = u.X, u.X+u.W, true
			continue
		}
		if u.X < minX {
			minX = u.X
		}
		if u.X+u.W > maxX {
			maxX = u.X + u.W
		}
	}
	return minX, maxX, ok
}

// Frontline returns indices of the lowest alive unit per column, in column order
// Columns without an alive unit contribute nothing
func (f *Fleet) Frontline(dst []int) []int {
	dst = dst[:0]
	for col := 0; col < f.Cols; col++ {
		best := -1
		for i := range f.Units {
			u := &f.Units[i]
			if !u.Alive || u.Col != col {
				continue
			}
			if best < 0 || u.Row > f.Units[best].Row {
				best = i
			}
		}
		if best >= 0 {
			dst = append(dst, best)
		}
	}
	return dst
}
