package atlaspack

import "github.com/gogpu/gputypes"

// PixelFormat identifies the layout of pixels stored in a segment's texture
// and in the surfaces uploaded into it. atlaspack only cares about one
// observable property of a format: how many bits each pixel occupies.
//
// PixelFormat wraps gputypes.TextureFormat so atlas textures can be created
// directly through a wgpu-based [Renderer] without a translation layer.
type PixelFormat struct {
	wgpu gputypes.TextureFormat
	bpp  int
}

// Common formats used by atlas textures and the images uploaded into them.
var (
	FormatRGBA8 = PixelFormat{wgpu: gputypes.TextureFormatRGBA8Unorm, bpp: 32}
	FormatBGRA8 = PixelFormat{wgpu: gputypes.TextureFormatBGRA8Unorm, bpp: 32}
	FormatR8    = PixelFormat{wgpu: gputypes.TextureFormatR8Unorm, bpp: 8}
)

// NewPixelFormat builds a PixelFormat from a wgpu texture format and its
// bits-per-pixel. Use this to register a format atlaspack does not predefine.
func NewPixelFormat(format gputypes.TextureFormat, bitsPerPixel int) PixelFormat {
	return PixelFormat{wgpu: format, bpp: bitsPerPixel}
}

// WGPUFormat returns the underlying wgpu texture format, for passing to a
// Renderer's texture-creation call.
func (f PixelFormat) WGPUFormat() gputypes.TextureFormat {
	return f.wgpu
}

// BitsPerPixel returns the number of bits each pixel occupies.
func (f PixelFormat) BitsPerPixel() int {
	return f.bpp
}

// bytesPerPixel derives ceil(bitsPerPixel/8) for the formats the blitter
// supports: multiples of 8 bits from 8 up to 248. Any other value is
// rejected with ErrUnsupportedFormat since the blitter has no sub-byte or
// over-31-byte packing logic.
func bytesPerPixel(bitsPerPixel int) (int, error) {
	if bitsPerPixel <= 0 || bitsPerPixel > 248 || bitsPerPixel%8 != 0 {
		return 0, &Error{Kind: ErrUnsupportedFormat, Message: "unsupported bits-per-pixel value"}
	}
	return bitsPerPixel / 8, nil
}
