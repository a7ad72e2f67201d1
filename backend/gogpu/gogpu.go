// Package gogpu adapts atlaspack.Renderer onto github.com/gogpu/gogpu's
// gpu.Backend, which can itself be backed by either the Rust (wgpu-native)
// or pure-Go (gogpu/wgpu) implementation depending on which side package
// callers import:
//
//	import _ "github.com/gogpu/gogpu/gpu/backend/rust"   // Rust backend
//	import _ "github.com/gogpu/gogpu/gpu/backend/native" // Pure Go backend
package gogpu

import (
	"fmt"
	"log"
	"sync"

	"github.com/gogpu/atlaspack"
	"github.com/gogpu/gogpu/gpu"
	"github.com/gogpu/gogpu/gpu/types"
)

// Package errors for the gogpu backend.
var (
	ErrNotInitialized     = fmt.Errorf("gogpu: backend not initialized")
	ErrNoGPUBackend       = fmt.Errorf("gogpu: no GPU backend available")
	ErrDeviceCreationFail = fmt.Errorf("gogpu: device creation failed")
	ErrInvalidDimensions  = fmt.Errorf("gogpu: invalid texture dimensions")
)

// Renderer is an atlaspack.Renderer backed by gogpu's device/queue pair.
// It must be initialized with Init before use and released with Close
// when no longer needed.
type Renderer struct {
	mu sync.RWMutex

	gpuBackend gpu.Backend
	instance   types.Instance
	adapter    types.Adapter
	device     types.Device
	queue      types.Queue

	target      atlaspack.RenderTarget
	initialized bool

	lastErrMu sync.Mutex
	lastErr   string
}

// New creates an uninitialized gogpu renderer.
func New() *Renderer {
	return &Renderer{}
}

// Init acquires the active gogpu backend, requests an adapter and device,
// and fetches its queue. It is a no-op if already initialized.
func (r *Renderer) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return nil
	}

	gpuBackend := gpu.GetBackend()
	if gpuBackend == nil {
		if err := gpu.InitDefaultBackend(); err != nil {
			return fmt.Errorf("%w: %w", ErrNoGPUBackend, err)
		}
		gpuBackend = gpu.GetBackend()
	}
	if gpuBackend == nil {
		return ErrNoGPUBackend
	}
	r.gpuBackend = gpuBackend

	instance, err := gpuBackend.CreateInstance()
	if err != nil {
		return fmt.Errorf("instance creation failed: %w", err)
	}
	r.instance = instance

	adapter, err := gpuBackend.RequestAdapter(instance, &types.AdapterOptions{
		PowerPreference: types.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoGPUBackend, err)
	}
	r.adapter = adapter

	device, err := gpuBackend.RequestDevice(adapter, &types.DeviceOptions{
		Label: "atlaspack-gogpu-device",
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceCreationFail, err)
	}
	r.device = device
	r.queue = gpuBackend.GetQueue(device)

	r.initialized = true
	log.Printf("atlaspack/gogpu: backend initialized using %s", gpuBackend.Name())

	return nil
}

// Close releases the device and adapter. The renderer must not be used
// afterward.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return
	}

	r.device = 0
	r.adapter = 0
	r.instance = 0
	r.queue = 0
	r.gpuBackend = nil
	r.initialized = false
}

// CreateTexture creates a streaming-access texture of the requested format
// and dimensions via the underlying gogpu device.
func (r *Renderer) CreateTexture(format atlaspack.PixelFormat, width, height int) (atlaspack.BackendTexture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.initialized {
		return nil, ErrNotInitialized
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	// TODO(gogpu-texture-path): call r.gpuBackend.CreateTexture(r.device, ...)
	// once atlaspack pins a gogpu release exposing a stable texture
	// creation entry point for streaming/CPU-writable textures.
	return &texture{format: format, width: width, height: height}, nil
}

// Draw issues a textured draw of src into the current render target.
//
// TODO(gogpu-draw-path): encode a command buffer via r.queue that samples
// src within srcRect and writes into the bound render target.
func (r *Renderer) Draw(src atlaspack.BackendTexture, srcRect atlaspack.Rect, dstRect *atlaspack.Rect) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.initialized {
		return ErrNotInitialized
	}
	if _, ok := src.(*texture); !ok {
		return fmt.Errorf("gogpu: Draw source is not a gogpu texture (%T)", src)
	}
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

// LastError returns and clears the last recorded error message.
func (r *Renderer) LastError() string {
	r.lastErrMu.Lock()
	defer r.lastErrMu.Unlock()
	msg := r.lastErr
	r.lastErr = ""
	return msg
}

// texture is a gogpu-backed atlaspack.BackendTexture.
type texture struct {
	mu sync.Mutex

	format atlaspack.PixelFormat
	width  int
	height int
	locked bool
}

func (t *texture) Width() int  { return t.width }
func (t *texture) Height() int { return t.height }

// Lock maps rect for CPU writes.
//
// TODO(gogpu-texture-path): map a staging buffer through the device once
// real texture creation lands; until then this reports ErrNotInitialized
// so callers fail loudly instead of silently writing nowhere.
func (t *texture) Lock(rect atlaspack.Rect) ([]byte, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.locked {
		return nil, 0, fmt.Errorf("gogpu: texture already locked")
	}
	return nil, 0, ErrNotInitialized
}

func (t *texture) Unlock() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.locked = false
}

func (t *texture) Destroy() {}
