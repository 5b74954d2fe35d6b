package texdecode

// MipmapResult is the outcome delivered by DecodeAllMipmapsAsync.
type MipmapResult struct {
	Images []*DecodedImage
	Err    error
}

// DecodeAllMipmapsAsync runs DecodeAllMipmaps on a background goroutine and
// returns immediately with a channel that receives exactly one result. The
// returned OperationContext cancels the background decode if the caller
// never needs the result; ctx.Cancel() is safe to call whether or not the
// decode has already finished.
func DecodeAllMipmapsAsync(format CompressionFormat, mips []MipDescriptor, opts DecoderOptions) (*OperationContext, <-chan MipmapResult) {
	ctx := NewOperationContext()
	done := make(chan MipmapResult, 1)
	go func() {
		images, err := DecodeAllMipmaps(ctx, format, mips, opts)
		done <- MipmapResult{Images: images, Err: err}
	}()
	return ctx, done
}

// DecodeAsync is the single-mip equivalent of DecodeAllMipmapsAsync.
func DecodeAsync(format CompressionFormat, data []byte, width, height int, opts DecoderOptions) (*OperationContext, <-chan MipmapResult) {
	ctx := NewOperationContext()
	done := make(chan MipmapResult, 1)
	go func() {
		img, err := Decode2D(ctx, format, data, width, height, opts)
		var images []*DecodedImage
		if img != nil {
			images = []*DecodedImage{img}
		}
		done <- MipmapResult{Images: images, Err: err}
	}()
	return ctx, done
}
