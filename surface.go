package atlaspack

// Surface is a CPU-side pixel source that AllocateAndUpload(Batch) copies
// from. It mirrors what a decoded image, a glyph bitmap, or any other
// pixel producer can trivially expose: format, dimensions, and a row-major
// buffer with its own pitch. The surface's backing memory must outlive the
// upload call.
type Surface interface {
	Format() PixelFormat
	Width() int
	Height() int

	// Pixels returns the row-major pixel buffer, row 0 first.
	Pixels() []byte

	// Pitch returns the number of bytes between the start of consecutive
	// rows; it may exceed Width()*bytesPerPixel.
	Pitch() int
}

// PixelBuffer is a minimal, ready-made Surface backed by a plain byte
// slice, for callers that already have decoded pixels in memory and don't
// want to define their own type.
type PixelBuffer struct {
	format PixelFormat
	width  int
	height int
	pixels []byte
	pitch  int
}

// NewPixelBuffer wraps pixels as a Surface. pitch must be at least
// width*bytesPerPixel(format); passing 0 derives the tightly packed pitch.
func NewPixelBuffer(format PixelFormat, width, height int, pixels []byte, pitch int) *PixelBuffer {
	if pitch == 0 {
		if bpp, err := bytesPerPixel(format.BitsPerPixel()); err == nil {
			pitch = width * bpp
		}
	}
	return &PixelBuffer{format: format, width: width, height: height, pixels: pixels, pitch: pitch}
}

func (b *PixelBuffer) Format() PixelFormat { return b.format }
func (b *PixelBuffer) Width() int          { return b.width }
func (b *PixelBuffer) Height() int         { return b.height }
func (b *PixelBuffer) Pixels() []byte      { return b.pixels }
func (b *PixelBuffer) Pitch() int          { return b.pitch }

// wholeSurfaceRect returns the rectangle covering all of s.
func wholeSurfaceRect(s Surface) Rect {
	return NewRect(0, 0, PointUnit(s.Width()), PointUnit(s.Height()))
}
