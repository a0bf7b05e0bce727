package layout

import "github.com/go-gl/mathgl/mgl32"

// Rect is a screen-space rectangle in pixels, top-left origin.
type Rect struct {
	Min  mgl32.Vec2
	Size mgl32.Vec2
}

// NewRect builds a rect from its top-left corner and size
func NewRect(x, y, w, h float32) Rect {
	return Rect{Min: mgl32.Vec2{x, y}, Size: mgl32.Vec2{w, h}}
}

// Max returns the bottom-right corner
func (r Rect) Max() mgl32.Vec2 {
	return r.Min.Add(r.Size)
}

// Center returns the rect's midpoint
func (r Rect) Center() mgl32.Vec2 {
	return r.Min.Add(r.Size.Mul(0.5))
}

// Contains reports whether p lies inside r. The right and bottom edges
// are exclusive so neighbouring rects never both claim a point.
func (r Rect) Contains(p mgl32.Vec2) bool {
	maxP := r.Max()
	return p.X() >= r.Min.X() && p.X() < maxP.X() &&
		p.Y() >= r.Min.Y() && p.Y() < maxP.Y()
}

// CenteredAt returns a copy of r moved so its center is p
func (r Rect) CenteredAt(p mgl32.Vec2) Rect {
	return Rect{Min: p.Sub(r.Size.Mul(0.5)), Size: r.Size}
}

// Translate returns a copy of r shifted by d
func (r Rect) Translate(d mgl32.Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Size: r.Size}
}
