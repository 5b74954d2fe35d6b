package texdecode

// decodeAlphaBlock8 decodes the 8-byte interpolated single-channel block
// shared by BC3's alpha half, BC4, and (twice) BC5, per spec 4.2.3/4.2.4.
func decodeAlphaBlock8(block []byte) (values [16]uint8) {
	a0 := uint32(block[0])
	a1 := uint32(block[1])

	var codes uint64
	for i := 0; i < 6; i++ {
		codes |= uint64(block[2+i]) << uint(8*i)
	}

	var pal [8]uint8
	pal[0] = uint8(a0)
	pal[1] = uint8(a1)
	if a0 > a1 {
		for i := uint32(1); i <= 6; i++ {
			pal[1+i] = uint8((a0*(7-i) + a1*i) / 7)
		}
	} else {
		for i := uint32(1); i <= 4; i++ {
			pal[1+i] = uint8((a0*(5-i) + a1*i) / 5)
		}
		pal[6] = 0
		pal[7] = 255
	}

	for i := 0; i < 16; i++ {
		idx := (codes >> uint(3*i)) & 0x7
		values[i] = pal[idx]
	}
	return values
}

// decodeBlockBc4 decodes an 8-byte BC4 block into the red channel; green
// and blue are zero (or replicated from red when RedAsLuminance is set) and
// alpha is always opaque, per spec 4.2.4.
func decodeBlockBc4(block []byte, opts DecoderOptions) RawBlock4x4 {
	r := decodeAlphaBlock8(block)

	var out RawBlock4x4
	for i := 0; i < 16; i++ {
		c := ColorRgba32{R: r[i], A: 255}
		if opts.RedAsLuminance {
			c.G, c.B = r[i], r[i]
		}
		out[i] = c
	}
	return out
}
