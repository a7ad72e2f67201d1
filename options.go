package atlaspack

// managerOptions holds the construction-time configuration of an
// AtlasManager, assembled by applying a caller's ManagerOptions in order
// over defaultManagerOptions.
type managerOptions struct {
	padding     PointUnit
	defaultSize Size
	format      PixelFormat
}

func defaultManagerOptions() managerOptions {
	return managerOptions{
		padding:     1,
		defaultSize: Size{Width: 1024, Height: 1024},
		format:      FormatRGBA8,
	}
}

// ManagerOption configures a New call. The zero value of AtlasManager is
// never valid on its own; use New with options instead.
type ManagerOption func(*managerOptions)

// WithPadding sets the border, in pixels, left untouched around every
// allocation. The default is 1.
func WithPadding(padding PointUnit) ManagerOption {
	return func(o *managerOptions) { o.padding = padding }
}

// WithDefaultSegmentSize sets the nominal size new segments are created at.
// Requests whose padded footprint exceeds this force a larger segment
// (see AtlasManager.Allocate). The default is 1024x1024.
func WithDefaultSegmentSize(size Size) ManagerOption {
	return func(o *managerOptions) { o.defaultSize = size }
}

// WithPixelFormat sets the format every segment texture is created with.
// The default is FormatRGBA8.
func WithPixelFormat(format PixelFormat) ManagerOption {
	return func(o *managerOptions) { o.format = format }
}
