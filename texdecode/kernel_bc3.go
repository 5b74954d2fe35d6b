package texdecode

// decodeBlockBc3 decodes a 16-byte BC3 block: an interpolated alpha block
// followed by a BC1-style color block in opaque mode, per spec 4.2.3.
func decodeBlockBc3(block []byte, _ DecoderOptions) RawBlock4x4 {
	alpha := decodeAlphaBlock8(block[0:8])
	color := decodeBc1Block(block[8:16], true)

	for i := 0; i < 16; i++ {
		color[i].A = alpha[i]
	}
	return color
}
