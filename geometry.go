package atlaspack

import "math"

// PointUnit is a non-negative pixel measure. Arithmetic on PointUnit
// saturates at the type's bounds instead of wrapping or panicking, matching
// the allocator's need for overflow-free shelf-cursor math.
type PointUnit = uint32

const maxPointUnit PointUnit = math.MaxUint32

// satAdd returns a+b, clamped to maxPointUnit on overflow.
func satAdd(a, b PointUnit) PointUnit {
	sum := a + b
	if sum < a {
		return maxPointUnit
	}
	return sum
}

// satSub returns a-b, clamped to 0 on underflow.
func satSub(a, b PointUnit) PointUnit {
	if b > a {
		return 0
	}
	return a - b
}

// satMul returns a*b, clamped to maxPointUnit on overflow.
func satMul(a, b PointUnit) PointUnit {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/a != b {
		return maxPointUnit
	}
	return p
}

// Point is a pixel coordinate.
type Point struct {
	X, Y PointUnit
}

// Size is a pixel extent.
type Size struct {
	Width, Height PointUnit
}

// Area returns Width*Height, saturating on overflow.
func (s Size) Area() PointUnit {
	return satMul(s.Width, s.Height)
}

// Outset returns the size grown by padding on all sides:
// (w+2p, h+2p), saturating.
func (s Size) Outset(padding PointUnit) Size {
	grow := satMul(padding, 2)
	return Size{
		Width:  satAdd(s.Width, grow),
		Height: satAdd(s.Height, grow),
	}
}

// Inset returns the size shrunk by padding on all sides:
// (w-2p, h-2p), saturating down to zero.
func (s Size) Inset(padding PointUnit) Size {
	shrink := satMul(padding, 2)
	return Size{
		Width:  satSub(s.Width, shrink),
		Height: satSub(s.Height, shrink),
	}
}

// MaxDimension returns the per-axis maximum of the two sizes.
func (s Size) MaxDimension(other Size) Size {
	w, h := s.Width, s.Height
	if other.Width > w {
		w = other.Width
	}
	if other.Height > h {
		h = other.Height
	}
	return Size{Width: w, Height: h}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Position Point
	Size     Size
}

// NewRect builds a Rect from individual coordinates.
func NewRect(x, y, w, h PointUnit) Rect {
	return Rect{Position: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Contains reports whether p lies inside the rectangle. The test is closed
// on the top/left edges and open on the bottom/right edges, matching the
// half-open convention used throughout the allocator.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Position.X && p.X < satAdd(r.Position.X, r.Size.Width) &&
		p.Y >= r.Position.Y && p.Y < satAdd(r.Position.Y, r.Size.Height)
}

// Inset shrinks the rectangle by padding on all sides, moving the origin in
// by padding and shrinking the size by 2*padding (saturating).
func (r Rect) Inset(padding PointUnit) Rect {
	return Rect{
		Position: Point{
			X: satAdd(r.Position.X, padding),
			Y: satAdd(r.Position.Y, padding),
		},
		Size: r.Size.Inset(padding),
	}
}

// union returns the smallest rectangle containing both r and other.
func (r Rect) union(other Rect) Rect {
	minX, minY := r.Position.X, r.Position.Y
	if other.Position.X < minX {
		minX = other.Position.X
	}
	if other.Position.Y < minY {
		minY = other.Position.Y
	}

	maxX := satAdd(r.Position.X, r.Size.Width)
	if otherMaxX := satAdd(other.Position.X, other.Size.Width); otherMaxX > maxX {
		maxX = otherMaxX
	}
	maxY := satAdd(r.Position.Y, r.Size.Height)
	if otherMaxY := satAdd(other.Position.Y, other.Size.Height); otherMaxY > maxY {
		maxY = otherMaxY
	}

	return Rect{
		Position: Point{X: minX, Y: minY},
		Size:     Size{Width: satSub(maxX, minX), Height: satSub(maxY, minY)},
	}
}
