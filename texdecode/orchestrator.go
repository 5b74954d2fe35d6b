package texdecode

// DecodeAllMipmaps decodes every level in mips in order, reusing a single
// OperationContext across the whole chain so progress advances mip over mip
// (not reset per level) and a cancellation request takes effect between
// mips as well as within a parallel mip's own block range, per spec
// section 4.4. ctx may be nil.
func DecodeAllMipmaps(ctx *OperationContext, format CompressionFormat, mips []MipDescriptor, opts DecoderOptions) ([]*DecodedImage, error) {
	info, err := lookupFormat(format)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, m := range mips {
		if m.Width <= 0 || m.Height <= 0 {
			return nil, newError(KindInvalidShape, "mip width and height must be positive")
		}
		if info.compressed {
			_, _, n := BlockCount(m.Width, m.Height)
			total += n
		} else {
			total += m.Height
		}
	}
	ctx.setTotal(total)

	out := make([]*DecodedImage, len(mips))
	for i, m := range mips {
		if ctx.Cancelled() {
			return nil, newError(KindCancelled, "decode cancelled")
		}

		var img *DecodedImage
		var derr error
		if info.compressed {
			img, derr = decodeCompressed(m.Data, m.Width, m.Height, info, opts, ctx)
		} else {
			img, derr = decodeRaw(m.Data, m.Width, m.Height, info, opts, ctx)
		}
		if derr != nil {
			return nil, derr
		}
		out[i] = img

		if opts.Progress != nil {
			opts.Progress(ctx.Progress())
		}
	}
	return out, nil
}
