package spatial

// PixelSet is an unordered collection of Pixels with set semantics. It is
// backed by a map for O(1) expected membership, add, and remove, and is
// sized to hold millions of members (hill/hole/cave fills routinely visit
// every pixel in a wide rectangle).
//
// The bounding box is cached and recomputed lazily the first time it is
// asked for after a mutation, so repeated Add calls during a fill loop stay
// O(1) each.
type PixelSet struct {
	pixels    map[Pixel]struct{}
	bboxValid bool
	bbox      Rect
}

// NewPixelSet creates an empty PixelSet.
func NewPixelSet() *PixelSet {
	return &PixelSet{pixels: make(map[Pixel]struct{})}
}

// NewPixelSetFromRect creates a PixelSet containing every pixel in r.
func NewPixelSetFromRect(r Rect) *PixelSet {
	s := NewPixelSet()
	r.Each(func(p Pixel) bool {
		s.Add(p)
		return true
	})
	return s
}

// Add inserts p into the set.
func (s *PixelSet) Add(p Pixel) {
	if _, ok := s.pixels[p]; ok {
		return
	}
	s.pixels[p] = struct{}{}
	s.bboxValid = false
}

// AddXY is a convenience wrapper around Add.
func (s *PixelSet) AddXY(x, y int) {
	s.Add(Pixel{X: x, Y: y})
}

// Remove deletes p from the set, if present.
func (s *PixelSet) Remove(p Pixel) {
	if _, ok := s.pixels[p]; !ok {
		return
	}
	delete(s.pixels, p)
	s.bboxValid = false
}

// Contains reports whether p is a member of the set.
func (s *PixelSet) Contains(p Pixel) bool {
	_, ok := s.pixels[p]
	return ok
}

// ContainsXY is a convenience wrapper around Contains, and satisfies the
// narrow PixelContainer interface CSP placement constraints decode against.
func (s *PixelSet) ContainsXY(x, y int) bool {
	_, ok := s.pixels[Pixel{X: x, Y: y}]
	return ok
}

// Len returns the number of members.
func (s *PixelSet) Len() int {
	return len(s.pixels)
}

// Each invokes fn for every member pixel. Iteration order is unspecified.
// Iteration stops early if fn returns false.
func (s *PixelSet) Each(fn func(Pixel) bool) {
	for p := range s.pixels {
		if !fn(p) {
			return
		}
	}
}

// Slice returns the set's members as a newly allocated slice.
func (s *PixelSet) Slice() []Pixel {
	out := make([]Pixel, 0, len(s.pixels))
	for p := range s.pixels {
		out = append(out, p)
	}
	return out
}

// BBox returns the tight bounding rectangle of the set: for a non-empty set
// no member pixel lies outside it. An empty set has the zero Rect.
func (s *PixelSet) BBox() Rect {
	if s.bboxValid {
		return s.bbox
	}
	if len(s.pixels) == 0 {
		s.bbox = Rect{}
		s.bboxValid = true
		return s.bbox
	}
	minX, minY := int(^uint(0)>>1), int(^uint(0)>>1)
	maxX, maxY := -minX-1, -minY-1
	for p := range s.pixels {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	s.bbox = Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
	s.bboxValid = true
	return s.bbox
}

// Union returns a new PixelSet containing the members of both s and o.
func (s *PixelSet) Union(o *PixelSet) *PixelSet {
	out := NewPixelSet()
	s.Each(func(p Pixel) bool { out.Add(p); return true })
	o.Each(func(p Pixel) bool { out.Add(p); return true })
	return out
}

// Difference returns a new PixelSet containing members of s not present in o.
func (s *PixelSet) Difference(o *PixelSet) *PixelSet {
	out := NewPixelSet()
	s.Each(func(p Pixel) bool {
		if !o.Contains(p) {
			out.Add(p)
		}
		return true
	})
	return out
}

// Intersects reports whether s and o share at least one member.
func (s *PixelSet) Intersects(o *PixelSet) bool {
	small, large := s, o
	if o.Len() < s.Len() {
		small, large = o, s
	}
	found := false
	small.Each(func(p Pixel) bool {
		if large.Contains(p) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Clone returns a shallow copy of s.
func (s *PixelSet) Clone() *PixelSet {
	out := NewPixelSet()
	s.Each(func(p Pixel) bool { out.Add(p); return true })
	return out
}
