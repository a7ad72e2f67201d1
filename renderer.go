package atlaspack

// Renderer is the set of capabilities atlaspack requires from the
// underlying graphics backend. It intentionally says nothing about how
// textures are represented, bound, or drawn on screen -- those decisions
// belong to the backend (see the backend/ subpackages for a CPU-only
// reference implementation and GPU-backed adapters).
//
// Implementations are used from a single goroutine; atlaspack performs no
// internal locking around Renderer calls.
type Renderer interface {
	// CreateTexture allocates a new streaming-access texture of the given
	// format and dimensions. The texture is owned by the caller and must
	// be released through BackendTexture.Destroy.
	CreateTexture(format PixelFormat, width, height int) (BackendTexture, error)

	// Draw samples srcRect of src and stretches it into dstRect of the
	// current render target. A nil dstRect draws into the full target.
	Draw(src BackendTexture, srcRect Rect, dstRect *Rect) error

	// SetRenderTarget makes target the destination for subsequent Draw
	// calls and returns whatever was previously set, so callers can
	// restore it later. A nil target restores the backend's default
	// (e.g. the window surface).
	SetRenderTarget(target RenderTarget) (previous RenderTarget, err error)

	// LastError returns the backend's last recorded error message and
	// clears it, mirroring the get-and-clear idiom of immediate-mode
	// graphics APIs (SDL, OpenGL).
	LastError() string
}

// BackendTexture is an opaque GPU texture created by a Renderer.
//
// Invariants: non-nil for the lifetime of the handle; Destroy is called
// exactly once; Width/Height are fixed at creation.
type BackendTexture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int

	// Lock maps rect into CPU-writable memory and returns a pointer to
	// its top-left origin together with the row pitch in bytes. The
	// pitch may exceed width*bytesPerPixel. Nested locks on the same
	// texture are not supported.
	Lock(rect Rect) (pixels []byte, pitch int, err error)

	// Unlock releases a prior Lock. Called unconditionally by LockGuard
	// on release, even when the blit that used the lock failed.
	Unlock()

	// Destroy releases the backend resource. Called exactly once.
	Destroy()
}

// RenderTarget is an opaque drawable surface a Renderer can direct output
// to -- typically a texture's render-attachment view, or the window
// surface when nil. It exists only so [RenderTargetGuard] can save and
// restore whatever was active without knowing its concrete type.
type RenderTarget interface{}
