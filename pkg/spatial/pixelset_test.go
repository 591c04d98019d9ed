package spatial

import "testing"

func TestPixelSet_AddContainsRemove(t *testing.T) {
	s := NewPixelSet()
	p := Pixel{3, 4}
	if s.Contains(p) {
		t.Fatal("new set should not contain anything")
	}
	s.Add(p)
	if !s.Contains(p) {
		t.Fatal("set should contain added pixel")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	s.Remove(p)
	if s.Contains(p) {
		t.Fatal("set should not contain removed pixel")
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestPixelSet_BBoxTightness(t *testing.T) {
	s := NewPixelSet()
	pts := []Pixel{{2, 3}, {10, 1}, {-4, 7}, {0, 0}}
	for _, p := range pts {
		s.Add(p)
	}
	bbox := s.BBox()

	s.Each(func(p Pixel) bool {
		if !bbox.Contains(p) {
			t.Errorf("pixel %v lies outside bbox %v", p, bbox)
		}
		return true
	})

	want := Rect{X: -4, Y: 0, W: 15, H: 8}
	if bbox != want {
		t.Errorf("BBox() = %v, want %v", bbox, want)
	}
}

func TestPixelSet_BBoxEmpty(t *testing.T) {
	s := NewPixelSet()
	if got := s.BBox(); got != (Rect{}) {
		t.Errorf("empty set BBox = %v, want zero Rect", got)
	}
}

func TestPixelSet_UnionDisjointness(t *testing.T) {
	a := NewPixelSetFromRect(Rect{0, 0, 3, 3})
	b := NewPixelSetFromRect(Rect{10, 10, 3, 3})
	u := a.Union(b)
	if u.Len() != 18 {
		t.Errorf("Union Len() = %d, want 18", u.Len())
	}
}

func TestPixelSet_Difference(t *testing.T) {
	a := NewPixelSetFromRect(Rect{0, 0, 4, 4})
	b := NewPixelSetFromRect(Rect{1, 1, 2, 2})
	d := a.Difference(b)
	if d.Len() != 12 {
		t.Errorf("Difference Len() = %d, want 12", d.Len())
	}
	d.Each(func(p Pixel) bool {
		if b.Contains(p) {
			t.Errorf("difference retained excluded pixel %v", p)
		}
		return true
	})
}

func TestPixelSet_Intersects(t *testing.T) {
	a := NewPixelSetFromRect(Rect{0, 0, 5, 5})
	b := NewPixelSetFromRect(Rect{4, 4, 5, 5})
	if !a.Intersects(b) {
		t.Error("overlapping sets should intersect")
	}
	c := NewPixelSetFromRect(Rect{100, 100, 2, 2})
	if a.Intersects(c) {
		t.Error("disjoint sets should not intersect")
	}
}

func TestPixelSet_LargeMembership(t *testing.T) {
	// Exercise membership at the scale of a wide hill/hole fill: a
	// 1200x100 rectangle, 120,000 members.
	const n = 1200
	s := NewPixelSetFromRect(Rect{0, 0, n, n / 12})
	if s.Len() != n*(n/12) {
		t.Fatalf("Len() = %d, want %d", s.Len(), n*(n/12))
	}
	if !s.Contains(Pixel{n - 1, n/12 - 1}) {
		t.Error("expected corner pixel to be a member")
	}
}
