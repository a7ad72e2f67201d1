package atlaspack

import "testing"

func TestSizeOutsetInset(t *testing.T) {
	s := Size{Width: 10, Height: 20}

	got := s.Outset(2)
	want := Size{Width: 14, Height: 24}
	if got != want {
		t.Fatalf("Outset(2) = %+v, want %+v", got, want)
	}

	got = got.Inset(2)
	if got != s {
		t.Fatalf("Outset then Inset = %+v, want %+v", got, s)
	}
}

func TestSizeInsetSaturatesAtZero(t *testing.T) {
	s := Size{Width: 2, Height: 2}
	got := s.Inset(5)
	want := Size{Width: 0, Height: 0}
	if got != want {
		t.Fatalf("Inset underflow = %+v, want %+v", got, want)
	}
}

func TestSizeMaxDimension(t *testing.T) {
	a := Size{Width: 100, Height: 10}
	b := Size{Width: 20, Height: 200}

	got := a.MaxDimension(b)
	want := Size{Width: 100, Height: 200}
	if got != want {
		t.Fatalf("MaxDimension = %+v, want %+v", got, want)
	}
}

func TestSatAddSaturates(t *testing.T) {
	got := satAdd(maxPointUnit-1, 10)
	if got != maxPointUnit {
		t.Fatalf("satAdd overflow = %d, want %d", got, maxPointUnit)
	}
}

func TestSatMulSaturates(t *testing.T) {
	got := satMul(maxPointUnit, 2)
	if got != maxPointUnit {
		t.Fatalf("satMul overflow = %d, want %d", got, maxPointUnit)
	}
}

func TestRectContainsHalfOpen(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	cases := []struct {
		p    Point
		want bool
	}{
		{Point{X: 10, Y: 10}, true},  // closed top-left
		{Point{X: 14, Y: 14}, true},  // last interior pixel
		{Point{X: 15, Y: 10}, false}, // open right edge
		{Point{X: 10, Y: 15}, false}, // open bottom edge
		{Point{X: 9, Y: 10}, false},
	}

	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 8, 8)
	b := NewRect(8, 0, 8, 8)
	c := NewRect(0, 8, 24, 8)

	got := a.union(b).union(c)
	want := NewRect(0, 0, 24, 16)
	if got != want {
		t.Fatalf("union = %+v, want %+v", got, want)
	}
}
