package atlaspack

import "testing"

func newTestManager(t *testing.T, padding PointUnit, defaultSize Size) *AtlasManager {
	t.Helper()
	m, err := New(newTestRenderer(), WithPadding(padding), WithDefaultSegmentSize(defaultSize))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestManagerAddStaticSegmentIsRetrievable(t *testing.T) {
	m := newTestManager(t, 1, Size{Width: 64, Height: 64})

	backend, err := newTestRenderer().CreateTexture(FormatRGBA8, 32, 16)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	staticTex := newTexture(backend)

	handle := m.AddStaticSegment(staticTex)
	if handle.IsZero() {
		t.Fatal("expected a non-zero handle from AddStaticSegment")
	}
	if handle.Rect != NewRect(0, 0, 32, 16) {
		t.Fatalf("expected handle rect to cover the whole texture, got %+v", handle.Rect)
	}

	got := m.Texture(handle)
	if got != staticTex {
		t.Fatalf("Texture(handle) returned a different texture than the one registered")
	}

	if err := m.Render(handle, nil); err != nil {
		t.Fatalf("Render on a static segment handle: %v", err)
	}
}

func TestManagerSingleFit(t *testing.T) {
	m := newTestManager(t, 1, Size{Width: 64, Height: 64})

	handle, err := m.Allocate(Size{Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	want := TextureHandle{segmentIndex: 1, Rect: NewRect(1, 1, 10, 10)}
	if handle != want {
		t.Fatalf("got %+v, want %+v", handle, want)
	}
}

func TestManagerLineWrap(t *testing.T) {
	m := newTestManager(t, 1, Size{Width: 64, Height: 64})

	if _, err := m.Allocate(Size{Width: 10, Height: 10}); err != nil {
		t.Fatalf("first Allocate: %v", err)
	}

	handle, err := m.Allocate(Size{Width: 60, Height: 10})
	if err != nil {
		t.Fatalf("second Allocate: %v", err)
	}

	want := TextureHandle{segmentIndex: 1, Rect: NewRect(1, 13, 60, 10)}
	if handle != want {
		t.Fatalf("got %+v, want %+v", handle, want)
	}
}

func TestManagerSegmentSpill(t *testing.T) {
	m := newTestManager(t, 0, Size{Width: 32, Height: 32})

	first, err := m.Allocate(Size{Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("first Allocate: %v", err)
	}
	if first.segmentIndex != 1 || first.Rect.Position != (Point{0, 0}) {
		t.Fatalf("unexpected first handle: %+v", first)
	}

	second, err := m.Allocate(Size{Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("second Allocate: %v", err)
	}
	if second.segmentIndex != 2 {
		t.Fatalf("expected spill to a new segment, got segmentIndex=%d", second.segmentIndex)
	}
	if second.Rect.Position != (Point{0, 0}) {
		t.Fatalf("expected second allocation at origin of new segment, got %+v", second.Rect)
	}

	if m.SegmentCount() != 2 {
		t.Fatalf("expected 2 segments, got %d", m.SegmentCount())
	}
}

func TestManagerOversizeRequestGrowsSegment(t *testing.T) {
	m := newTestManager(t, 2, Size{Width: 32, Height: 32})

	handle, err := m.Allocate(Size{Width: 40, Height: 8})
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	if handle.Rect.Position != (Point{2, 2}) {
		t.Fatalf("expected inner origin (2,2), got %+v", handle.Rect.Position)
	}

	tex := m.Texture(handle)
	if tex.Width() != 44 || tex.Height() != 32 {
		t.Fatalf("expected grown segment (44,32), got (%d,%d)", tex.Width(), tex.Height())
	}
}

func TestManagerBatchedGroup(t *testing.T) {
	m := newTestManager(t, 0, Size{Width: 32, Height: 32})

	sources := make([]Surface, 3)
	for i := range sources {
		sources[i] = solidSurface(t, FormatRGBA8, 8, 8, byte(i+1))
	}

	results := m.AllocateAndUploadBatch(sources)

	wantX := []PointUnit{0, 8, 16}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("source %d: unexpected error %v", i, r.Err)
		}
		if r.Handle.Rect.Position.X != wantX[i] || r.Handle.Rect.Position.Y != 0 {
			t.Fatalf("source %d: expected origin (%d,0), got %+v", i, wantX[i], r.Handle.Rect.Position)
		}
	}

	tex := m.Texture(results[0].Handle)
	guard, err := tex.Lock(NewRect(0, 0, 24, 8))
	if err != nil {
		t.Fatalf("Lock: %v", err)
	}
	defer guard.Release()

	for i := 0; i < 3; i++ {
		off := i * 8 * 4
		if guard.Pixels[off] != byte(i+1) {
			t.Fatalf("segment pixel for source %d mismatch: got %d", i, guard.Pixels[off])
		}
	}
}

func TestManagerBatchedFormatMismatch(t *testing.T) {
	m := newTestManager(t, 0, Size{Width: 32, Height: 32})

	sources := []Surface{
		solidSurface(t, FormatRGBA8, 8, 8, 1),
		solidSurface(t, FormatR8, 8, 8, 1),
	}

	results := m.AllocateAndUploadBatch(sources)

	if results[0].Err != nil {
		t.Fatalf("expected first source to succeed, got %v", results[0].Err)
	}
	if results[0].Handle.IsZero() {
		t.Fatal("expected first source to receive a handle")
	}

	assertErrorKind(t, results[1].Err, ErrFormatMismatch)
	if !results[1].Handle.IsZero() {
		t.Fatal("expected no allocation for the mismatched source")
	}
}

func TestManagerAllocateAndUploadSingle(t *testing.T) {
	m := newTestManager(t, 1, Size{Width: 64, Height: 64})

	src := solidSurface(t, FormatRGBA8, 4, 4, 9)

	handle, err := m.AllocateAndUpload(src, nil)
	if err != nil {
		t.Fatalf("AllocateAndUpload: %v", err)
	}

	tex := m.Texture(handle)
	guard, err := tex.Lock(handle.Rect)
	if err != nil {
		t.Fatalf("Lock: %v", err)
	}
	defer guard.Release()

	if guard.Pixels[0] != 9 {
		t.Fatalf("expected uploaded pixel byte 9, got %d", guard.Pixels[0])
	}
}

func solidSurface(t *testing.T, format PixelFormat, w, h int, value byte) *PixelBuffer {
	t.Helper()
	bpp, err := bytesPerPixel(format.BitsPerPixel())
	if err != nil {
		t.Fatalf("bytesPerPixel: %v", err)
	}
	pixels := make([]byte, w*h*bpp)
	for i := range pixels {
		pixels[i] = value
	}
	return NewPixelBuffer(format, w, h, pixels, w*bpp)
}
