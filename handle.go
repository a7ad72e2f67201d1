package atlaspack

// TextureHandle names one allocation inside an AtlasManager: the segment it
// lives in and the inner rectangle the caller owns (padding already
// stripped). Handles are stable for the life of the manager -- nothing
// invalidates them, since the allocator never frees or moves allocations.
//
// The zero TextureHandle is not a valid handle (segmentIndex is stored
// one-based so that zero is free to mean "no handle"), which lets callers
// use TextureHandle as a nullable key without an extra boolean or pointer.
type TextureHandle struct {
	segmentIndex uint32 // one-based; 0 means "no handle"
	Rect         Rect
}

// IsZero reports whether h is the zero value, i.e. does not name an
// allocation.
func (h TextureHandle) IsZero() bool {
	return h.segmentIndex == 0
}

// segment returns the zero-based segment index this handle refers to. It
// is only meaningful when IsZero is false.
func (h TextureHandle) segment() int {
	return int(h.segmentIndex) - 1
}

// Segment returns the zero-based segment index this handle refers to, for
// callers that want to report or log which atlas a handle landed in. It is
// only meaningful when IsZero is false.
func (h TextureHandle) Segment() int {
	return h.segment()
}
