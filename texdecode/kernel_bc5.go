package texdecode

// decodeBlockBc5 decodes a 16-byte BC5 block: two independent BC4-style
// alpha blocks for red and green; blue is zero and alpha is opaque, per
// spec 4.2.5.
func decodeBlockBc5(block []byte, _ DecoderOptions) RawBlock4x4 {
	red := decodeAlphaBlock8(block[0:8])
	green := decodeAlphaBlock8(block[8:16])

	var out RawBlock4x4
	for i := 0; i < 16; i++ {
		out[i] = ColorRgba32{R: red[i], G: green[i], A: 255}
	}
	return out
}
