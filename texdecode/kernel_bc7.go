package texdecode

// bc7Mode returns the mode index (0-7) encoded by a block's low byte: the
// position of the lowest set bit, per spec 4.2.6. ok is false when all
// eight low bits are zero (an invalid block, decoded as opaque black).
func bc7Mode(b0 byte) (mode int, ok bool) {
	if b0 == 0 {
		return 0, false
	}
	for i := 0; i < 8; i++ {
		if b0&(1<<uint(i)) != 0 {
			return i, true
		}
	}
	return 0, false
}

// unquantizeBc7Component left-justifies a quantized n-bit value to 8 bits
// by shifting up then replicating the top bits into the vacated low bits,
// the standard BC7/BC6H component-expansion rule referenced in spec 4.2.6.
func unquantizeBc7Component(v uint32, bits int) uint8 {
	if bits >= 8 {
		return uint8(v)
	}
	v <<= uint(8 - bits)
	return uint8(v | (v >> uint(bits)))
}

func decodeBlockBc7(block []byte, _ DecoderOptions) RawBlock4x4 {
	mode, ok := bc7Mode(block[0])
	if !ok {
		var black RawBlock4x4
		for i := range black {
			black[i].A = 255
		}
		return black
	}

	mi := bc7Modes[mode]
	r := newLSBBitReader(block)
	r.read(mode + 1) // consume the unary mode code

	partition := 0
	if mi.partitionBits > 0 {
		partition = int(r.read(mi.partitionBits))
	}

	rotation := 0
	if mi.rotationBits > 0 {
		rotation = int(r.read(mi.rotationBits))
	}

	indexSelect := 0
	if mi.hasIndexSelect {
		indexSelect = int(r.read(1))
	}

	ns := mi.subsets

	var raw [3][2][4]uint32
	for ch := 0; ch < 3; ch++ {
		for s := 0; s < ns; s++ {
			for k := 0; k < 2; k++ {
				raw[s][k][ch] = r.read(mi.colorBits)
			}
		}
	}
	if mi.alphaBits > 0 {
		for s := 0; s < ns; s++ {
			for k := 0; k < 2; k++ {
				raw[s][k][3] = r.read(mi.alphaBits)
			}
		}
	}

	var pbit [3][2]uint32
	switch {
	case mi.hasEndpointPBit:
		for s := 0; s < ns; s++ {
			for k := 0; k < 2; k++ {
				pbit[s][k] = r.read(1)
			}
		}
	case mi.hasSharedPBit:
		for s := 0; s < ns; s++ {
			p := r.read(1)
			pbit[s][0] = p
			pbit[s][1] = p
		}
	}

	var endpoints [3][2][4]uint8
	for s := 0; s < ns; s++ {
		for k := 0; k < 2; k++ {
			for ch := 0; ch < 4; ch++ {
				bits := mi.colorBits
				if ch == 3 {
					if mi.alphaBits == 0 {
						endpoints[s][k][3] = 255
						continue
					}
					bits = mi.alphaBits
				}
				v := raw[s][k][ch]
				total := bits
				if mi.hasEndpointPBit || mi.hasSharedPBit {
					v = v<<1 | pbit[s][k]
					total = bits + 1
				}
				endpoints[s][k][ch] = unquantizeBc7Component(v, total)
			}
		}
	}

	subsetOf := func(texel int) int {
		switch ns {
		case 1:
			return 0
		case 2:
			return int((bc7PartitionTable2[partition] >> uint(texel)) & 1)
		default:
			return int(bc7PartitionTable3[partition][texel])
		}
	}
	anchorOf := func(subset int) int {
		switch {
		case ns == 1:
			return 0
		case ns == 2:
			if subset == 0 {
				return 0
			}
			return int(bc7AnchorTable2[partition])
		default:
			if subset == 0 {
				return 0
			}
			return int(bc7AnchorTable3[partition][subset-1])
		}
	}

	primaryIdx := make([]uint32, 16)
	for i := 0; i < 16; i++ {
		bits := mi.indexBits
		if i == anchorOf(subsetOf(i)) {
			bits--
		}
		primaryIdx[i] = r.read(bits)
	}

	var secondaryIdx []uint32
	if mi.indexBits2 > 0 {
		secondaryIdx = make([]uint32, 16)
		for i := 0; i < 16; i++ {
			bits := mi.indexBits2
			if i == 0 { // NS==1 whenever a secondary plane exists
				bits--
			}
			secondaryIdx[i] = r.read(bits)
		}
	}

	colorIdx, alphaIdx := primaryIdx, primaryIdx
	colorWeights, alphaWeights := bc7WeightTable(mi.indexBits), bc7WeightTable(mi.indexBits)
	if mi.indexBits2 > 0 {
		alphaIdx = secondaryIdx
		alphaWeights = bc7WeightTable(mi.indexBits2)
		if indexSelect == 1 {
			colorIdx, alphaIdx = alphaIdx, colorIdx
			colorWeights, alphaWeights = alphaWeights, colorWeights
		}
	}

	var out RawBlock4x4
	for i := 0; i < 16; i++ {
		s := subsetOf(i)
		e0, e1 := endpoints[s][0], endpoints[s][1]

		cw := colorWeights[colorIdx[i]]
		aw := alphaWeights[alphaIdx[i]]

		var px [4]uint8
		for ch := 0; ch < 3; ch++ {
			px[ch] = uint8((uint32(e0[ch])*(64-cw) + uint32(e1[ch])*cw + 32) >> 6)
		}
		px[3] = uint8((uint32(e0[3])*(64-aw) + uint32(e1[3])*aw + 32) >> 6)

		switch rotation {
		case 1:
			px[0], px[3] = px[3], px[0]
		case 2:
			px[1], px[3] = px[3], px[1]
		case 3:
			px[2], px[3] = px[3], px[2]
		}

		out[i] = ColorRgba32{R: px[0], G: px[1], B: px[2], A: px[3]}
	}
	return out
}
