package texdecode

import "io"

// DecodeBlock decodes a single compressed block into its 4x4 RGBA8 footprint,
// per spec section 4.6. It returns KindUnsupportedFormat for a raw format and
// KindLengthMismatch if block is not exactly BlockSize(format) bytes.
func DecodeBlock(format CompressionFormat, block []byte, opts DecoderOptions) (RawBlock4x4, error) {
	info, err := lookupFormat(format)
	if err != nil {
		return RawBlock4x4{}, err
	}
	if !info.compressed {
		return RawBlock4x4{}, newError(KindUnsupportedFormat, "DecodeBlock requires a block-compressed format")
	}
	if len(block) != info.blockBytes {
		return RawBlock4x4{}, newError(KindLengthMismatch, "block length does not match format block size")
	}
	return info.decodeBlock(block, opts), nil
}

// DecodeBlockBuffer decodes every block in data in sequence, without
// assembling them into an image. len(data) must be an exact multiple of
// BlockSize(format).
func DecodeBlockBuffer(format CompressionFormat, data []byte, opts DecoderOptions) ([]RawBlock4x4, error) {
	info, err := lookupFormat(format)
	if err != nil {
		return nil, err
	}
	if !info.compressed {
		return nil, newError(KindUnsupportedFormat, "DecodeBlockBuffer requires a block-compressed format")
	}
	if len(data)%info.blockBytes != 0 {
		return nil, newError(KindLengthMismatch, "buffer length is not a multiple of the block size")
	}
	n := len(data) / info.blockBytes
	out := make([]RawBlock4x4, n)
	for i := 0; i < n; i++ {
		off := i * info.blockBytes
		out[i] = info.decodeBlock(data[off:off+info.blockBytes], opts)
	}
	return out, nil
}

// DecodeBlockStream reads exactly one compressed block from r and writes it
// into out, a 4x4 pixel grid, per spec section 4.6. It returns the number of
// bytes consumed and a nil error on success, (0, nil) on a clean EOF with no
// bytes read (the caller has reached the end of the block stream), a
// KindTruncated error if r ends partway through a block, and a
// KindInvalidShape error if out is not exactly 4x4.
func DecodeBlockStream(format CompressionFormat, r io.Reader, out *DecodedImage, opts DecoderOptions) (int, error) {
	if out.Width != 4 || out.Height != 4 {
		return 0, newError(KindInvalidShape, "out grid must be exactly 4x4")
	}
	info, err := lookupFormat(format)
	if err != nil {
		return 0, err
	}
	if !info.compressed {
		return 0, newError(KindUnsupportedFormat, "DecodeBlockStream requires a block-compressed format")
	}

	block := make([]byte, info.blockBytes)
	n, err := io.ReadFull(r, block)
	if err == io.EOF && n == 0 {
		return 0, nil
	}
	if err != nil {
		return 0, newError(KindTruncated, "block stream ended before a full block was read")
	}

	pixels := info.decodeBlock(block, opts)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			out.set(x, y, pixels[y*4+x])
		}
	}
	return info.blockBytes, nil
}

// DecodeRaw decodes an uncompressed payload into an RGBA8 image.
func DecodeRaw(format CompressionFormat, data []byte, width, height int, opts DecoderOptions) (*DecodedImage, error) {
	info, err := lookupFormat(format)
	if err != nil {
		return nil, err
	}
	if info.compressed {
		return nil, newError(KindUnsupportedFormat, "DecodeRaw requires a raw format")
	}
	return decodeRaw(data, width, height, info, opts, nil)
}

// DecodeRawStream decodes an uncompressed payload read from r, which must
// yield exactly width*height*bytesPerPixel bytes.
func DecodeRawStream(format CompressionFormat, r io.Reader, width, height int, opts DecoderOptions) (*DecodedImage, error) {
	size, err := GetBufferSize(format, width, height)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, newError(KindTruncated, "raw stream ended before width*height*bytesPerPixel bytes were read")
	}
	return DecodeRaw(format, buf, width, height, opts)
}

// Decode decodes a single mip level's encoded payload, compressed or raw,
// into an RGBA8 image, without cancellation or progress reporting.
func Decode(format CompressionFormat, data []byte, width, height int, opts DecoderOptions) (*DecodedImage, error) {
	return Decode2D(nil, format, data, width, height, opts)
}

// Decode2D is Decode with an OperationContext for cancellation and progress
// reporting, per spec section 4.6. ctx may be nil.
func Decode2D(ctx *OperationContext, format CompressionFormat, data []byte, width, height int, opts DecoderOptions) (*DecodedImage, error) {
	if width <= 0 || height <= 0 {
		return nil, newError(KindInvalidShape, "width and height must be positive")
	}
	info, err := lookupFormat(format)
	if err != nil {
		return nil, err
	}

	if info.compressed {
		_, _, total := BlockCount(width, height)
		ctx.setTotal(total)
		return decodeCompressed(data, width, height, info, opts, ctx)
	}
	ctx.setTotal(height)
	return decodeRaw(data, width, height, info, opts, ctx)
}
