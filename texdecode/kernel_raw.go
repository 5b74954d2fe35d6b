package texdecode

// The raw kernels expand packed uncompressed channels to RGBA, per spec
// 4.2.8. Unlike the block kernels, they operate a row at a time and bypass
// the block-grid assembler entirely: there is no 4x4 footprint to clip.

func decodeRawRowR(row []byte, out []ColorRgba32, opts DecoderOptions) {
	for i, b := range row {
		if opts.RedAsLuminance {
			out[i] = ColorRgba32{b, b, b, 255}
		} else {
			out[i] = ColorRgba32{R: b, A: 255}
		}
	}
}

func decodeRawRowRg(row []byte, out []ColorRgba32, _ DecoderOptions) {
	n := len(row) / 2
	for i := 0; i < n; i++ {
		out[i] = ColorRgba32{R: row[2*i], G: row[2*i+1], A: 255}
	}
}

func decodeRawRowRgb(row []byte, out []ColorRgba32, _ DecoderOptions) {
	n := len(row) / 3
	for i := 0; i < n; i++ {
		out[i] = ColorRgba32{R: row[3*i], G: row[3*i+1], B: row[3*i+2], A: 255}
	}
}

func decodeRawRowRgba(row []byte, out []ColorRgba32, _ DecoderOptions) {
	n := len(row) / 4
	for i := 0; i < n; i++ {
		out[i] = ColorRgba32{R: row[4*i], G: row[4*i+1], B: row[4*i+2], A: row[4*i+3]}
	}
}

func decodeRawRowBgra(row []byte, out []ColorRgba32, _ DecoderOptions) {
	n := len(row) / 4
	for i := 0; i < n; i++ {
		out[i] = ColorRgba32{R: row[4*i+2], G: row[4*i+1], B: row[4*i], A: row[4*i+3]}
	}
}
