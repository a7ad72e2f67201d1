package atlaspack

import "sync"

// softwareBackendTexture is a minimal in-memory BackendTexture used by this
// package's own tests, grounded on the same locked-buffer-plus-mutex shape
// backend/software uses for real callers. It keeps package-level tests free
// of any backend import.
type softwareBackendTexture struct {
	mu     sync.Mutex
	format PixelFormat
	width  int
	height int
	pixels []byte
	pitch  int
	locked bool
}

func newSoftwareBackendTexture(format PixelFormat, width, height int) *softwareBackendTexture {
	bpp, err := bytesPerPixel(format.BitsPerPixel())
	if err != nil {
		panic(err)
	}
	pitch := width * bpp
	return &softwareBackendTexture{
		format: format,
		width:  width,
		height: height,
		pixels: make([]byte, pitch*height),
		pitch:  pitch,
	}
}

func (t *softwareBackendTexture) Width() int  { return t.width }
func (t *softwareBackendTexture) Height() int { return t.height }

func (t *softwareBackendTexture) Lock(rect Rect) ([]byte, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.locked {
		return nil, 0, backendErr("texture already locked", nil)
	}
	t.locked = true

	x, err := toInt(rect.Position.X)
	if err != nil {
		return nil, 0, err
	}
	y, err := toInt(rect.Position.Y)
	if err != nil {
		return nil, 0, err
	}

	bpp, err := bytesPerPixel(t.format.BitsPerPixel())
	if err != nil {
		return nil, 0, err
	}

	off := y*t.pitch + x*bpp
	return t.pixels[off:], t.pitch, nil
}

func (t *softwareBackendTexture) Unlock() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.locked = false
}

func (t *softwareBackendTexture) Destroy() {}

// testRenderer is a bare-bones Renderer used by this package's tests: it
// creates softwareBackendTexture instances and records Draw calls without
// actually rasterising anything, since the allocator's behaviour does not
// depend on draw output.
type testRenderer struct {
	mu      sync.Mutex
	target  RenderTarget
	draws   []drawCall
	lastErr string
}

type drawCall struct {
	src     BackendTexture
	srcRect Rect
	dstRect *Rect
	hasDst  bool
}

func newTestRenderer() *testRenderer {
	return &testRenderer{}
}

func (r *testRenderer) CreateTexture(format PixelFormat, width, height int) (BackendTexture, error) {
	return newSoftwareBackendTexture(format, width, height), nil
}

func (r *testRenderer) Draw(src BackendTexture, srcRect Rect, dstRect *Rect) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	call := drawCall{src: src, srcRect: srcRect, hasDst: dstRect != nil}
	if dstRect != nil {
		rect := *dstRect
		call.dstRect = &rect
	}
	r.draws = append(r.draws, call)
	return nil
}

func (r *testRenderer) SetRenderTarget(target RenderTarget) (RenderTarget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	previous := r.target
	r.target = target
	return previous, nil
}

func (r *testRenderer) LastError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := r.lastErr
	r.lastErr = ""
	return err
}
