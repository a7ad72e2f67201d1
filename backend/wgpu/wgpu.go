//go:build !nogpu

// Package wgpu adapts atlaspack.Renderer onto github.com/gogpu/wgpu, the
// pure-Go WebGPU implementation. Texture lifecycle calls are stubbed with
// the real wgpu core calls left commented where they will slot in once
// this package is wired to a live device -- the same pattern the upstream
// gg renderer uses while its own wgpu texture path is still being built
// out.
package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/atlaspack"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/core"
)

// Errors returned by this backend.
var (
	ErrNotInitialized    = errors.New("wgpu: renderer not initialized")
	ErrInvalidDimensions = errors.New("wgpu: invalid texture dimensions")
	ErrNoRenderTarget    = errors.New("wgpu: no render target set")
)

// Renderer is an atlaspack.Renderer backed by a wgpu device and queue.
//
// Renderer is safe for concurrent texture creation; Draw/SetRenderTarget
// are expected to be called from the thread that owns the device, matching
// atlaspack's own single-threaded contract.
type Renderer struct {
	mu sync.RWMutex

	device gpucontext.DeviceProvider
	target atlaspack.RenderTarget

	lastErrMu sync.Mutex
	lastErr   string
}

// New wraps a device provider (e.g. one obtained from a gpucontext-aware
// window surface) as an atlaspack.Renderer.
func New(device gpucontext.DeviceProvider) *Renderer {
	return &Renderer{device: device}
}

// CreateTexture creates a streaming-access wgpu texture of the requested
// format and dimensions.
func (r *Renderer) CreateTexture(format atlaspack.PixelFormat, width, height int) (atlaspack.BackendTexture, error) {
	if r.device == nil {
		return nil, ErrNotInitialized
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	// TODO(wgpu-texture-path): create the real texture once gogpu/wgpu
	// exposes a stable CreateTexture entry point on DeviceProvider.
	//
	// desc := &gputypes.TextureDescriptor{
	//     Size:          gputypes.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
	//     MipLevelCount: 1,
	//     SampleCount:   1,
	//     Dimension:     gputypes.TextureDimension2D,
	//     Format:        format.WGPUFormat(),
	//     Usage:         gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	// }
	// id, err := core.CreateTexture(r.device.Device(), desc)
	// if err != nil {
	//     return nil, err
	// }

	return &texture{
		format: format,
		width:  width,
		height: height,
		// id and viewID are zero until the real creation path lands.
	}, nil
}

// Draw issues a textured quad draw of src into the current render target.
// This backend has no default surface: with no target set (or a nil one),
// Draw returns ErrNoRenderTarget.
func (r *Renderer) Draw(src atlaspack.BackendTexture, srcRect atlaspack.Rect, dstRect *atlaspack.Rect) error {
	r.mu.RLock()
	target := r.target
	r.mu.RUnlock()

	if target == nil {
		return ErrNoRenderTarget
	}

	tex, ok := src.(*texture)
	if !ok {
		return fmt.Errorf("wgpu: Draw source is not a wgpu texture (%T)", src)
	}

	// TODO(wgpu-draw-path): encode a render pass that samples tex.id
	// within srcRect and writes into target, stretching to dstRect (or
	// the full target when dstRect is nil).
	_ = tex
	return nil
}

// SetRenderTarget records target as the destination for subsequent Draw
// calls and returns whatever was previously set.
func (r *Renderer) SetRenderTarget(target atlaspack.RenderTarget) (atlaspack.RenderTarget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	previous := r.target
	r.target = target
	return previous, nil
}

// LastError returns and clears the last error message recorded by this
// renderer.
func (r *Renderer) LastError() string {
	r.lastErrMu.Lock()
	defer r.lastErrMu.Unlock()
	msg := r.lastErr
	r.lastErr = ""
	return msg
}

// texture is a wgpu-backed atlaspack.BackendTexture. Its fields track the
// logical texture even before real wgpu resource IDs are wired in, so
// callers can exercise atlaspack's allocator against this backend today.
type texture struct {
	mu sync.Mutex

	id     core.TextureID
	viewID core.TextureViewID

	format atlaspack.PixelFormat
	width  int
	height int
	locked bool
}

func (t *texture) Width() int  { return t.width }
func (t *texture) Height() int { return t.height }

// Lock maps rect for CPU writes.
//
// TODO(wgpu-texture-path): once texture creation produces a real id, this
// should map a staging buffer via core.MapAsync and return a slice backed
// by it instead of failing.
func (t *texture) Lock(rect atlaspack.Rect) ([]byte, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.locked {
		return nil, 0, fmt.Errorf("wgpu: texture already locked")
	}
	t.locked = true
	return nil, 0, ErrNotInitialized
}

func (t *texture) Unlock() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.locked = false
}

// Destroy releases the backend texture.
//
// TODO(wgpu-texture-path): call core.DestroyTexture(t.id) once texture
// creation is real.
func (t *texture) Destroy() {}
