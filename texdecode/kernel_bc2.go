package texdecode

import "encoding/binary"

// decodeBlockBc2 decodes a 16-byte BC2 block: an explicit 4-bit alpha grid
// followed by a BC1-style color block always read in opaque mode, per
// spec 4.2.2.
func decodeBlockBc2(block []byte, _ DecoderOptions) RawBlock4x4 {
	alphaBits := binary.LittleEndian.Uint64(block[0:8])
	color := decodeBc1Block(block[8:16], true)

	for i := 0; i < 16; i++ {
		nibble := uint8(alphaBits & 0xf)
		alphaBits >>= 4
		color[i].A = nibble * 17
	}
	return color
}
