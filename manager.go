package atlaspack

// AtlasManager owns an append-only, ordered set of atlas segments and
// routes allocations to the current one, growing the atlas by adding a new
// segment whenever the current one runs out of room. It is the only type
// most callers interact with directly.
//
// An AtlasManager is not safe for concurrent use: like the Renderer it
// wraps, it is expected to live on a single thread tied to the graphics
// context.
type AtlasManager struct {
	renderer Renderer

	padding     PointUnit
	defaultSize Size
	format      PixelFormat

	segments     []*atlasSegment
	currentIndex int
}

// New creates a manager with one empty Dynamic segment sized to the
// configured (or default) segment size, and makes it the current segment.
func New(renderer Renderer, opts ...ManagerOption) (*AtlasManager, error) {
	cfg := defaultManagerOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &AtlasManager{
		renderer:    renderer,
		padding:     cfg.padding,
		defaultSize: cfg.defaultSize,
		format:      cfg.format,
	}

	seg, err := m.createDynamicSegment(cfg.defaultSize)
	if err != nil {
		return nil, err
	}
	m.segments = append(m.segments, seg)
	m.currentIndex = 0

	Logger().Debug("atlas manager created",
		"default_size", cfg.defaultSize, "padding", cfg.padding)

	return m, nil
}

// createDynamicSegment asks the renderer for a texture of size and wraps it
// as a fresh, empty Dynamic segment.
func (m *AtlasManager) createDynamicSegment(size Size) (*atlasSegment, error) {
	width, err := toInt(size.Width)
	if err != nil {
		return nil, err
	}
	height, err := toInt(size.Height)
	if err != nil {
		return nil, err
	}

	backend, err := m.renderer.CreateTexture(m.format, width, height)
	if err != nil {
		return nil, backendErr("failed to create segment texture", err)
	}

	return newDynamicSegment(newTexture(backend)), nil
}

// AddStaticSegment registers an externally created, externally owned
// texture as a Static segment: it is never allocated into and never
// becomes the current segment. The returned handle's rect covers the
// whole texture, and is interchangeable with any other TextureHandle for
// Texture and Render -- it is the only way to get a Static segment's
// texture back out of the manager.
func (m *AtlasManager) AddStaticSegment(texture *Texture) TextureHandle {
	m.segments = append(m.segments, newStaticSegment(texture))
	index := len(m.segments) - 1

	size := Size{Width: PointUnit(texture.Width()), Height: PointUnit(texture.Height())}
	return m.handleAt(index, Point{}, size)
}

// Allocate reserves request inside the current segment, growing the atlas
// with a new segment if it doesn't fit. The returned handle's rect is the
// inner (padding-stripped) rectangle the caller owns.
func (m *AtlasManager) Allocate(request Size) (TextureHandle, error) {
	current := m.segments[m.currentIndex]
	if inner, ok := current.allocateWithPadding(request, m.padding); ok {
		return m.handleAt(m.currentIndex, inner, request), nil
	}

	growTo := m.defaultSize.MaxDimension(request.Outset(m.padding))
	seg, err := m.createDynamicSegment(growTo)
	if err != nil {
		return TextureHandle{}, err
	}
	m.segments = append(m.segments, seg)
	m.currentIndex = len(m.segments) - 1

	Logger().Debug("atlas segment created",
		"index", m.currentIndex, "size", growTo, "reason", "current segment full or request too large")

	inner, ok := seg.allocateWithPadding(request, m.padding)
	if !ok {
		// A fresh segment sized to at least the padded request must
		// accept that request; failure here means growTo's arithmetic
		// or allocate's bounds check disagree with each other.
		panic("atlaspack: allocation into freshly grown segment failed unexpectedly")
	}

	return m.handleAt(m.currentIndex, inner, request), nil
}

func (m *AtlasManager) handleAt(segmentIndex int, inner Point, size Size) TextureHandle {
	return TextureHandle{
		segmentIndex: uint32(segmentIndex) + 1,
		Rect:         Rect{Position: inner, Size: size},
	}
}

// Texture resolves handle to the underlying Texture it was allocated from.
// handle must have been returned by this manager; a zero or out-of-range
// handle is a programming error and panics.
func (m *AtlasManager) Texture(handle TextureHandle) *Texture {
	if handle.IsZero() {
		panic("atlaspack: Texture called with the zero TextureHandle")
	}
	return m.segments[handle.segment()].texture
}

// AllocateAndUpload allocates room for srcRect (or all of src, if srcRect
// is nil) and copies its pixels in. The lock window spans only the copy;
// it is released before AllocateAndUpload returns.
func (m *AtlasManager) AllocateAndUpload(src Surface, srcRect *Rect) (TextureHandle, error) {
	if src.Format() != m.format {
		return TextureHandle{}, formatMismatchErr()
	}

	rect := wholeSurfaceRect(src)
	if srcRect != nil {
		rect = *srcRect
	}

	handle, err := m.Allocate(rect.Size)
	if err != nil {
		return TextureHandle{}, err
	}

	texture := m.segments[handle.segment()].texture
	guard, err := texture.Lock(handle.Rect)
	if err != nil {
		return handle, err
	}
	defer guard.Release()

	if err := blit(src.Pixels(), rect, src.Pitch(), guard.Pixels, Point{}, guard.Pitch, m.format); err != nil {
		return handle, err
	}

	return handle, nil
}

// UploadResult is one source's outcome from AllocateAndUploadBatch: either
// a valid Handle with a nil Err, or a nil Handle (zero value) with Err set.
type UploadResult struct {
	Handle TextureHandle
	Err    error
}

// batchEntry pairs a source's index in the caller's slice with the handle
// it was allocated, so the blit pass can address it within a group's
// shared lock buffer.
type batchEntry struct {
	index  int
	handle TextureHandle
}

// AllocateAndUploadBatch allocates and uploads every source, grouping
// destination rectangles by segment so each segment is locked at most
// once. A failure for one source (format mismatch, allocation failure, or
// blit failure) is recorded in its own result slot and does not affect the
// others. If the shared lock for a segment's group fails, every result in
// that group is overwritten with the lock error -- the allocations
// themselves are not rolled back.
func (m *AtlasManager) AllocateAndUploadBatch(sources []Surface) []UploadResult {
	results := make([]UploadResult, len(sources))

	groups := make(map[int][]batchEntry)
	var segmentOrder []int

	for i, src := range sources {
		if src.Format() != m.format {
			results[i] = UploadResult{Err: formatMismatchErr()}
			continue
		}

		handle, err := m.Allocate(Size{Width: PointUnit(src.Width()), Height: PointUnit(src.Height())})
		if err != nil {
			results[i] = UploadResult{Err: err}
			continue
		}

		results[i] = UploadResult{Handle: handle}

		segIdx := handle.segment()
		if _, seen := groups[segIdx]; !seen {
			segmentOrder = append(segmentOrder, segIdx)
		}
		groups[segIdx] = append(groups[segIdx], batchEntry{index: i, handle: handle})
	}

	for _, segIdx := range segmentOrder {
		entries := groups[segIdx]

		bbox := entries[0].handle.Rect
		for _, e := range entries[1:] {
			bbox = bbox.union(e.handle.Rect)
		}

		texture := m.segments[segIdx].texture
		guard, err := texture.Lock(bbox)
		if err != nil {
			lockErr := backendErr("batched upload lock failed", err)
			for _, e := range entries {
				results[e.index] = UploadResult{Err: lockErr}
			}
			continue
		}

		for _, e := range entries {
			src := sources[e.index]
			localPos := Point{
				X: satSub(e.handle.Rect.Position.X, bbox.Position.X),
				Y: satSub(e.handle.Rect.Position.Y, bbox.Position.Y),
			}
			if err := blit(src.Pixels(), wholeSurfaceRect(src), src.Pitch(), guard.Pixels, localPos, guard.Pitch, m.format); err != nil {
				results[e.index] = UploadResult{Err: err}
			}
		}

		guard.Release()
	}

	return results
}

// Render draws handle's sub-rectangle, stretching into dstRect of the
// current render target (or the full target, if dstRect is nil).
func (m *AtlasManager) Render(handle TextureHandle, dstRect *Rect) error {
	if handle.IsZero() {
		panic("atlaspack: Render called with the zero TextureHandle")
	}

	texture := m.segments[handle.segment()].texture
	if err := m.renderer.Draw(texture.backend, handle.Rect, dstRect); err != nil {
		return backendErr("draw failed", err)
	}
	return nil
}

// SegmentCount returns the number of segments the manager has created so
// far, Static and Dynamic alike.
func (m *AtlasManager) SegmentCount() int {
	return len(m.segments)
}
