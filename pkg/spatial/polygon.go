package spatial

// Polygon is an ordered, closed sequence of vertices. It rasterizes to a
// PixelSet via the standard crossing-number point-in-polygon rule, matching
// the original generator's pnpoly implementation.
type Polygon struct {
	Vertices []Pixel
}

// NewPolygon creates a Polygon from an ordered vertex list. The list is not
// required to repeat its first vertex as its last; containsPoint treats the
// edge list as implicitly closed.
func NewPolygon(vertices []Pixel) Polygon {
	return Polygon{Vertices: append([]Pixel(nil), vertices...)}
}

// BBox returns the axis-aligned bounding box of the vertex list.
func (p Polygon) BBox() Rect {
	if len(p.Vertices) == 0 {
		return Rect{}
	}
	minX, minY := p.Vertices[0].X, p.Vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range p.Vertices[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}

// containsPoint implements the crossing-number rule: cast a ray from the
// test point and count edge crossings; odd means inside.
func (p Polygon) containsPoint(x, y int) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	crossings := 0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := p.Vertices[i], p.Vertices[j]
		if (vi.Y > y) != (vj.Y > y) {
			vt := float64(y-vi.Y) / float64(vj.Y-vi.Y)
			xCross := float64(vi.X) + vt*float64(vj.X-vi.X)
			if float64(x) < xCross {
				crossings++
			}
		}
	}
	return crossings%2 == 1
}

// PixelSet rasterizes the polygon's interior (including boundary pixels
// that satisfy the crossing rule) to a PixelSet by scanning its bounding box.
func (p Polygon) PixelSet() *PixelSet {
	out := NewPixelSet()
	bbox := p.BBox()
	bbox.Each(func(px Pixel) bool {
		if p.containsPoint(px.X, px.Y) {
			out.Add(px)
		}
		return true
	})
	return out
}
