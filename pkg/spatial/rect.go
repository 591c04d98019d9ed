package spatial

import "fmt"

// Pixel is an integer coordinate in world space.
type Pixel struct {
	X, Y int
}

// String returns a human-readable representation of a Pixel.
func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle anchored at (X,Y) with size (W,H).
type Rect struct {
	X, Y, W, H int
}

// NewRect creates a Rect, normalizing negative widths/heights to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Area returns the rectangle's area in pixels.
func (r Rect) Area() int {
	return r.W * r.H
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies within the rectangle's bounds.
func (r Rect) Contains(p Pixel) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Union returns the smallest rectangle that encloses both r and o.
// An empty operand is ignored so Union behaves as an identity over empties.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	minX := min(r.X, o.X)
	minY := min(r.Y, o.Y)
	maxX := max(r.X+r.W, o.X+o.W)
	maxY := max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Intersection returns the overlapping region of r and o, or an empty Rect
// (W=H=0) if they do not overlap.
func (r Rect) Intersection(o Rect) Rect {
	minX := max(r.X, o.X)
	minY := max(r.Y, o.Y)
	maxX := min(r.X+r.W, o.X+o.W)
	maxY := min(r.Y+r.H, o.Y+o.H)
	if maxX <= minX || maxY <= minY {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Intersects reports whether r and o share any pixel, using the standard
// AABB disjointness test (including containment in either direction).
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Each invokes fn for every pixel contained in the rectangle, in row-major
// order. Iteration stops early if fn returns false.
func (r Rect) Each(fn func(Pixel) bool) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if !fn(Pixel{X: x, Y: y}) {
				return
			}
		}
	}
}

// String returns a human-readable representation of a Rect.
func (r Rect) String() string {
	return fmt.Sprintf("Rect{x:%d y:%d w:%d h:%d}", r.X, r.Y, r.W, r.H)
}
