package texdecode

import "encoding/binary"

// expand565 unpacks a little-endian RGB565 word into 8-bit channels,
// replicating the high bits into the low bits (the standard S3TC expansion).
func expand565(c uint16) (r, g, b uint8) {
	r = uint8((c>>11)&0x1f)<<3 | uint8((c>>11)&0x1f)>>2
	g = uint8((c>>5)&0x3f)<<2 | uint8((c>>5)&0x3f)>>4
	b = uint8(c&0x1f)<<3 | uint8(c&0x1f)>>2
	return r, g, b
}

// decodeBc1Palette computes the 4-color BC1 palette shared by BC1, BC1-with-
// alpha, and (in opaque mode) the color halves of BC2/BC3, per spec 4.2.1.
//
// opaqueMode forces the "c0 > c1" interpolation branch regardless of the
// numeric ordering of c0/c1, matching BC2/BC3's fixed opaque color block.
func decodeBc1Palette(c0, c1 uint16, opaqueMode bool) (pal [4]ColorRgba32, oneBitAlpha bool) {
	r0, g0, b0 := expand565(c0)
	r1, g1, b1 := expand565(c1)
	pal[0] = ColorRgba32{r0, g0, b0, 255}
	pal[1] = ColorRgba32{r1, g1, b1, 255}

	if opaqueMode || c0 > c1 {
		pal[2] = ColorRgba32{
			uint8((2*uint16(r0) + uint16(r1)) / 3),
			uint8((2*uint16(g0) + uint16(g1)) / 3),
			uint8((2*uint16(b0) + uint16(b1)) / 3),
			255,
		}
		pal[3] = ColorRgba32{
			uint8((uint16(r0) + 2*uint16(r1)) / 3),
			uint8((uint16(g0) + 2*uint16(g1)) / 3),
			uint8((uint16(b0) + 2*uint16(b1)) / 3),
			255,
		}
		return pal, false
	}

	pal[2] = ColorRgba32{
		uint8((uint16(r0) + uint16(r1)) / 2),
		uint8((uint16(g0) + uint16(g1)) / 2),
		uint8((uint16(b0) + uint16(b1)) / 2),
		255,
	}
	pal[3] = ColorRgba32{0, 0, 0, 0}
	return pal, true
}

func decodeBc1Block(block []byte, opaqueMode bool) RawBlock4x4 {
	c0 := binary.LittleEndian.Uint16(block[0:2])
	c1 := binary.LittleEndian.Uint16(block[2:4])
	indices := binary.LittleEndian.Uint32(block[4:8])

	pal, _ := decodeBc1Palette(c0, c1, opaqueMode)

	var out RawBlock4x4
	for i := 0; i < 16; i++ {
		idx := (indices >> uint(2*i)) & 0x3
		out[i] = pal[idx]
	}
	return out
}

// decodeBlockBc1 decodes the alpha-free BC1 variant: the palette is always
// built in opaque (4-color) mode, so a 1-bit-alpha-encoded block's index-3
// texels fall back to the interpolated color with alpha forced to 255,
// rather than the punch-through black the alpha-aware variant would show.
func decodeBlockBc1(block []byte, _ DecoderOptions) RawBlock4x4 {
	return decodeBc1Block(block, true)
}

// decodeBlockBc1Alpha decodes the alpha-aware BC1 variant: c0 <= c1 selects
// the 1-bit-alpha palette, where index 3 is transparent black.
func decodeBlockBc1Alpha(block []byte, _ DecoderOptions) RawBlock4x4 {
	return decodeBc1Block(block, false)
}
