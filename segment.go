package atlaspack

// segmentKind distinguishes the two shapes an atlasSegment can take. It is
// a tagged variant rather than two separate types implementing an
// interface, since allocate is total -- it always has an answer (possibly
// "no") regardless of kind, and there is no other behaviour to dispatch on.
type segmentKind uint8

const (
	// segmentDynamic segments are packed into by the allocator.
	segmentDynamic segmentKind = iota

	// segmentStatic segments hold pre-uploaded or externally owned
	// content; allocation against them always fails.
	segmentStatic
)

// atlasSegment is one physical atlas texture plus, for dynamic segments, a
// shelf-packing cursor. The cursor starts at (0,0) with zero line height
// and is mutated only by a successful allocate call.
type atlasSegment struct {
	kind    segmentKind
	texture *Texture

	pen        Point
	lineHeight PointUnit
}

// newDynamicSegment wraps a freshly created texture as an empty,
// allocatable segment.
func newDynamicSegment(texture *Texture) *atlasSegment {
	return &atlasSegment{kind: segmentDynamic, texture: texture}
}

// newStaticSegment wraps a texture that is reserved for external content
// and never receives allocations from this package.
func newStaticSegment(texture *Texture) *atlasSegment {
	return &atlasSegment{kind: segmentStatic, texture: texture}
}

// size returns the segment's texture dimensions as a Size.
func (s *atlasSegment) size() Size {
	return Size{Width: PointUnit(s.texture.Width()), Height: PointUnit(s.texture.Height())}
}

// allocate reserves request inside the segment using shelf packing and
// returns the top-left origin of the reservation. It fails (ok=false)
// without mutating the cursor when the segment is Static, when request
// does not fit within the segment's bounds at all, or when even a fresh
// shelf would overflow the segment vertically.
func (s *atlasSegment) allocate(request Size) (origin Point, ok bool) {
	if s.kind == segmentStatic {
		return Point{}, false
	}

	bounds := s.size()
	if request.Height > bounds.Height || request.Width > bounds.Width {
		return Point{}, false
	}

	pen := s.pen
	lineHeight := s.lineHeight

	// Nothing will ever fit on the current line's vertical extent.
	if satAdd(pen.Y, request.Height) > bounds.Height {
		return Point{}, false
	}

	// Current-line fit.
	if satAdd(pen.X, request.Width) <= bounds.Width {
		origin = pen
		lineHeight = maxUnit(lineHeight, request.Height)
		pen.X = satAdd(pen.X, request.Width)

		s.pen = pen
		s.lineHeight = lineHeight
		return origin, true
	}

	// Next-line fit.
	pen.Y = satAdd(pen.Y, lineHeight)
	pen.X = 0
	lineHeight = request.Height

	if satAdd(pen.Y, request.Height) > bounds.Height {
		return Point{}, false
	}

	origin = pen
	pen.X = satAdd(pen.X, request.Width)

	s.pen = pen
	s.lineHeight = lineHeight
	return origin, true
}

// allocateWithPadding requests a size inflated by padding on all sides,
// then returns the inner origin -- the padded allocation with padding
// stripped off -- which is the rectangle the caller actually owns.
func (s *atlasSegment) allocateWithPadding(request Size, padding PointUnit) (inner Point, ok bool) {
	padded := request.Outset(padding)

	origin, ok := s.allocate(padded)
	if !ok {
		return Point{}, false
	}

	return Point{X: satAdd(origin.X, padding), Y: satAdd(origin.Y, padding)}, true
}

func maxUnit(a, b PointUnit) PointUnit {
	if a > b {
		return a
	}
	return b
}
