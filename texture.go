package atlaspack

import "sync/atomic"

// Texture is an owning handle to a GPU texture created through a Renderer.
// It is non-nil for its whole lifetime and must be released exactly once
// via Close.
type Texture struct {
	backend BackendTexture
	locked  atomic.Bool
	closed  atomic.Bool
}

// newTexture wraps a freshly created BackendTexture.
func newTexture(backend BackendTexture) *Texture {
	return &Texture{backend: backend}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.backend.Width() }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.backend.Height() }

// Close releases the backend texture. Close is a programming error if a
// LockGuard obtained from this texture is still live; such a guard holds a
// borrow of the texture specifically to make that impossible in normal use,
// so Close only checks it defensively and returns false instead of
// double-destroying backend state.
//
// Close is idempotent: calling it again after a successful Close is a no-op.
func (t *Texture) Close() bool {
	if t.locked.Load() {
		return false
	}
	if t.closed.Swap(true) {
		return false
	}
	t.backend.Destroy()
	return true
}

// Lock maps rect into CPU-writable memory for the lifetime of the returned
// LockGuard. The guard borrows the texture: Close refuses to run while any
// guard from this texture is outstanding. Releasing the guard always calls
// the backend's unlock, even if the caller never writes through the
// returned buffer.
func (t *Texture) Lock(rect Rect) (*LockGuard, error) {
	if t.closed.Load() {
		return nil, &Error{Kind: ErrBackend, Message: "texture is closed"}
	}
	if !t.locked.CompareAndSwap(false, true) {
		return nil, &Error{Kind: ErrBackend, Message: "texture already locked (nested locks unsupported)"}
	}

	pixels, pitch, err := t.backend.Lock(rect)
	if err != nil {
		t.locked.Store(false)
		return nil, backendErr("failed to lock texture", err)
	}

	return &LockGuard{texture: t, Pixels: pixels, Pitch: pitch}, nil
}

// LockGuard is a scoped lease on a sub-rectangle of a Texture. It exposes a
// writable byte slice addressing the lock region's top-left corner and the
// row pitch in bytes. Release unconditionally unlocks the texture.
type LockGuard struct {
	texture *Texture

	// Pixels is the writable buffer for the locked region, starting at
	// its top-left corner.
	Pixels []byte

	// Pitch is the number of bytes between the start of consecutive
	// rows; it may exceed the region's width*bytesPerPixel.
	Pitch int

	released bool
}

// Release unlocks the texture. It is safe to call more than once; only the
// first call has effect. Callers should defer Release immediately after a
// successful Lock.
func (g *LockGuard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	g.texture.backend.Unlock()
	g.texture.locked.Store(false)
}

// RenderTargetGuard saves the render target active when it was acquired and
// restores it on Release, making render-to-texture scopes nestable: push a
// new target, draw, pop back to whatever was active before.
type RenderTargetGuard struct {
	renderer Renderer
	previous RenderTarget
	released bool
}

// PushRenderTarget makes target the active render target and returns a
// guard that restores the previous target on Release.
func PushRenderTarget(renderer Renderer, target RenderTarget) (*RenderTargetGuard, error) {
	previous, err := renderer.SetRenderTarget(target)
	if err != nil {
		return nil, backendErr("failed to set render target", err)
	}
	return &RenderTargetGuard{renderer: renderer, previous: previous}, nil
}

// Release restores the render target that was active before this guard was
// acquired. Safe to call more than once.
func (g *RenderTargetGuard) Release() error {
	if g == nil || g.released {
		return nil
	}
	g.released = true
	if _, err := g.renderer.SetRenderTarget(g.previous); err != nil {
		return backendErr("failed to restore render target", err)
	}
	return nil
}
