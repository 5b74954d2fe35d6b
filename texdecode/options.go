package texdecode

import "runtime"

// DecoderOptions tunes decode behavior across every operation in this
// package. The zero value is usable but DefaultDecoderOptions fills in the
// parallelism fields the way a caller normally wants them.
type DecoderOptions struct {
	// RedAsLuminance replicates a decoded R channel into G and B for
	// FormatR and FormatBc4, matching single-channel textures authored as
	// grayscale rather than a bare red channel.
	RedAsLuminance bool

	// DdsBc1ExpectAlpha selects FormatBc1WithAlpha for a DDS BC1 payload
	// when the pixel format header does not set DDPF_ALPHAPIXELS, per the
	// container tie-break rule.
	DdsBc1ExpectAlpha bool

	// IsParallel enables block-range sharding across goroutines during
	// Decode/DecodeAllMipmaps. Single-block operations ignore this field.
	IsParallel bool

	// TaskCount is the number of worker goroutines used when IsParallel is
	// set. Zero means runtime.GOMAXPROCS(0).
	TaskCount int

	// Progress, if non-nil, receives a value in [0,1] as mipmaps complete.
	// It is called from the calling goroutine, never concurrently.
	Progress func(fraction float32)
}

// DefaultDecoderOptions returns the options a caller gets by requesting
// none explicitly: parallel decode across GOMAXPROCS workers, no luminance
// replication, and the DDS BC1 alpha tie-break resolved to the opaque
// variant.
func DefaultDecoderOptions() DecoderOptions {
	return DecoderOptions{
		RedAsLuminance:    false,
		DdsBc1ExpectAlpha: false,
		IsParallel:        true,
		TaskCount:         runtime.GOMAXPROCS(0),
	}
}

func (o DecoderOptions) taskCount() int {
	if o.TaskCount > 0 {
		return o.TaskCount
	}
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}
