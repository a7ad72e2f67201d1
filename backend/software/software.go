// Package software is a CPU-only atlaspack.Renderer: every texture is a
// plain byte slice, locking hands out a slice of it, and Draw performs a
// real (if simple) blit into the current render target instead of issuing
// GPU commands. It exists so atlaspack's allocator logic can be exercised
// and tested without a real graphics device, and as a reference for what a
// hardware-backed Renderer must do.
package software

import (
	"fmt"
	"sync"

	"github.com/gogpu/atlaspack"
)

// Renderer is a software atlaspack.Renderer. The zero value is ready to
// use; there is no Init step because there is no device to acquire.
type Renderer struct {
	mu      sync.Mutex
	target  atlaspack.RenderTarget
	lastErr string
}

// New creates a software renderer.
func New() *Renderer {
	return &Renderer{}
}

// CreateTexture allocates an in-memory texture backed by a plain byte
// slice sized for format at width x height.
func (r *Renderer) CreateTexture(format atlaspack.PixelFormat, width, height int) (atlaspack.BackendTexture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("software: invalid texture dimensions %dx%d", width, height)
	}

	bpp := bitsToBytes(format.BitsPerPixel())
	if bpp == 0 {
		return nil, fmt.Errorf("software: unsupported bits-per-pixel %d", format.BitsPerPixel())
	}

	pitch := width * bpp
	return &texture{
		width:  width,
		height: height,
		pitch:  pitch,
		pixels: make([]byte, pitch*height),
	}, nil
}

// Draw copies srcRect of src, unscaled, into the current render target with
// its top-left corner at dstRect's origin, or at the target's origin when
// dstRect is nil. dstRect's size is not used: the software backend does not
// stretch. src must be a *texture created by
// this renderer; anything else is a programming error, since the software
// backend has no other drawable kind.
func (r *Renderer) Draw(src atlaspack.BackendTexture, srcRect atlaspack.Rect, dstRect *atlaspack.Rect) error {
	r.mu.Lock()
	target := r.target
	r.mu.Unlock()

	srcTex, ok := src.(*texture)
	if !ok {
		err := fmt.Errorf("software: Draw source is not a software texture (%T)", src)
		r.recordError(err)
		return err
	}

	dstTex, ok := target.(*texture)
	if !ok {
		// No target configured: treat this as a successful no-op draw
		// into the (absent) window surface, mirroring a headless present.
		return nil
	}

	var dst atlaspack.Point
	if dstRect != nil {
		dst = dstRect.Position
	}

	if err := copyRect(srcTex, srcRect, dstTex, dst); err != nil {
		r.recordError(err)
		return err
	}
	return nil
}

// SetRenderTarget makes target the destination for subsequent Draw calls
// and returns whatever was previously set.
func (r *Renderer) SetRenderTarget(target atlaspack.RenderTarget) (atlaspack.RenderTarget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	previous := r.target
	r.target = target
	return previous, nil
}

// LastError returns the last recorded error message and clears it.
func (r *Renderer) LastError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg := r.lastErr
	r.lastErr = ""
	return msg
}

func (r *Renderer) recordError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastErr = err.Error()
}

// texture is an in-memory atlaspack.BackendTexture.
type texture struct {
	mu        sync.Mutex
	width     int
	height    int
	pitch     int
	pixels    []byte
	locked    bool
	destroyed bool
}

func (t *texture) Width() int  { return t.width }
func (t *texture) Height() int { return t.height }

func (t *texture) Lock(rect atlaspack.Rect) ([]byte, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.destroyed {
		return nil, 0, fmt.Errorf("software: texture already destroyed")
	}
	if t.locked {
		return nil, 0, fmt.Errorf("software: texture already locked")
	}
	t.locked = true

	x := int(rect.Position.X)
	y := int(rect.Position.Y)
	off := y*t.pitch + x*(t.pitch/max(t.width, 1))
	if off < 0 || off > len(t.pixels) {
		t.locked = false
		return nil, 0, fmt.Errorf("software: lock rect out of bounds")
	}
	return t.pixels[off:], t.pitch, nil
}

func (t *texture) Unlock() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.locked = false
}

func (t *texture) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.destroyed = true
	t.pixels = nil
}

// copyRect performs the same strided rectangle copy as atlaspack's
// internal blitter, duplicated here because backend packages cannot
// import atlaspack's unexported blit routine.
func copyRect(src *texture, srcRect atlaspack.Rect, dst *texture, dstPos atlaspack.Point) error {
	src.mu.Lock()
	dst.mu.Lock()
	defer src.mu.Unlock()
	defer dst.mu.Unlock()

	bpp := src.pitch / max(src.width, 1)
	width := int(srcRect.Size.Width)
	height := int(srcRect.Size.Height)
	srcX, srcY := int(srcRect.Position.X), int(srcRect.Position.Y)
	dstX, dstY := int(dstPos.X), int(dstPos.Y)

	rowBytes := width * bpp
	for y := 0; y < height; y++ {
		so := (srcY+y)*src.pitch + srcX*bpp
		do := (dstY+y)*dst.pitch + dstX*bpp
		if so+rowBytes > len(src.pixels) || do+rowBytes > len(dst.pixels) {
			return fmt.Errorf("software: draw rectangle exceeds texture bounds")
		}
		copy(dst.pixels[do:do+rowBytes], src.pixels[so:so+rowBytes])
	}
	return nil
}

// bitsToBytes mirrors atlaspack's supported bits-per-pixel set without
// importing its unexported helper.
func bitsToBytes(bits int) int {
	if bits <= 0 || bits > 248 || bits%8 != 0 {
		return 0
	}
	return bits / 8
}
