package layout

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Default spacing around and between slots, in pixels.
const (
	DefaultInset = 5.0
	DefaultGap   = 5.0
)

// Grid maps slot indices to screen rectangles and back. Slots are laid
// out row-major: index = row*Cols + col.
type Grid struct {
	Origin   mgl32.Vec2
	SlotSize mgl32.Vec2
	Rows     int
	Cols     int
	// Inset is the space between the panel edge and the outer slots
	Inset float32
	// Gap is the space between neighbouring slots
	Gap float32
}

// NewGrid creates a grid with the default inset and gap
func NewGrid(origin, slotSize mgl32.Vec2, rows, cols int) Grid {
	return Grid{
		Origin:   origin,
		SlotSize: slotSize,
		Rows:     rows,
		Cols:     cols,
		Inset:    DefaultInset,
		Gap:      DefaultGap,
	}
}

// Cells returns the number of slots the grid can display
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// Panel returns the rectangle enclosing every slot plus the inset.
func (g Grid) Panel() Rect {
	cols, rows := float32(g.Cols), float32(g.Rows)
	w := cols*g.SlotSize.X() + g.Gap*max(cols-1, 0) + 2*g.Inset
	h := rows*g.SlotSize.Y() + g.Gap*max(rows-1, 0) + 2*g.Inset
	return Rect{Min: g.Origin, Size: mgl32.Vec2{w, h}}
}

// SlotRect returns the rectangle of slot i. The result for an index
// outside the grid is meaningless; callers check Valid first.
func (g Grid) SlotRect(i int) Rect {
	if g.Cols <= 0 {
		return Rect{Min: g.Origin}
	}
	col, row := i%g.Cols, i/g.Cols
	x := g.Inset + float32(col)*(g.SlotSize.X()+g.Gap)
	y := g.Inset + float32(row)*(g.SlotSize.Y()+g.Gap)
	return Rect{Min: g.Origin.Add(mgl32.Vec2{x, y}), Size: g.SlotSize}
}

// Valid reports whether i addresses a slot of the grid
func (g Grid) Valid(i int) bool {
	return i >= 0 && i < g.Cells()
}

// SlotAt returns the index of the cell under p, or -1 when p is outside
// the cell area. A gap belongs to the slot on its left or above it, so
// the pointer never falls through between two slots.
func (g Grid) SlotAt(p mgl32.Vec2) int {
	if g.Rows <= 0 || g.Cols <= 0 {
		return -1
	}
	rel := p.Sub(g.Origin).Sub(mgl32.Vec2{g.Inset, g.Inset})
	if rel.X() < 0 || rel.Y() < 0 {
		return -1
	}
	col := int(math.Floor(float64(rel.X() / (g.SlotSize.X() + g.Gap))))
	row := int(math.Floor(float64(rel.Y() / (g.SlotSize.Y() + g.Gap))))
	if col >= g.Cols || row >= g.Rows {
		return -1
	}
	return row*g.Cols + col
}
