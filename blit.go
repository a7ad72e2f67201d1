package atlaspack

// blit copies srcRect.Size pixels from src (whose (0,0) row starts at byte
// offset 0) into dst, placing the top-left corner at dstPos. Both buffers
// are row-major with the given pitches, which may exceed width*bpp.
//
// blit performs no bounds checking against the lengths of src/dst -- the
// caller guarantees the pitches and rectangles are consistent with the
// backing buffers, and that the two regions do not overlap.
func blit(src []byte, srcRect Rect, srcPitch int, dst []byte, dstPos Point, dstPitch int, format PixelFormat) error {
	bpp, err := bytesPerPixel(format.BitsPerPixel())
	if err != nil {
		return err
	}

	srcX, err := toInt(srcRect.Position.X)
	if err != nil {
		return err
	}
	srcY, err := toInt(srcRect.Position.Y)
	if err != nil {
		return err
	}
	width, err := toInt(srcRect.Size.Width)
	if err != nil {
		return err
	}
	height, err := toInt(srcRect.Size.Height)
	if err != nil {
		return err
	}
	dstX, err := toInt(dstPos.X)
	if err != nil {
		return err
	}
	dstY, err := toInt(dstPos.Y)
	if err != nil {
		return err
	}

	rowBytes := width * bpp

	for y := 0; y < height; y++ {
		srcOff := (srcY+y)*srcPitch + srcX*bpp
		dstOff := (dstY+y)*dstPitch + dstX*bpp
		copy(dst[dstOff:dstOff+rowBytes], src[srcOff:srcOff+rowBytes])
	}

	return nil
}

// toInt converts a PointUnit to a native int, failing with
// ErrDimensionConversion if it would not round-trip (only possible on
// platforms where int is 32 bits and the value exceeds MaxInt32).
func toInt(v PointUnit) (int, error) {
	i := int(v)
	if PointUnit(i) != v || i < 0 {
		return 0, conversionErr("value does not fit in a native int")
	}
	return i, nil
}
