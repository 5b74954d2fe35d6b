package texdecode_test

import (
	"testing"

	"github.com/texdecode/texdecode/texdecode"
)

func TestDecodeClipsPartialEdgeBlocks(t *testing.T) {
	// 5x5 needs a 2x2 block grid (32 bytes); block (1,1) covers only pixel
	// (4,4) and every other texel in that block must be discarded.
	white := bc1Block(0xFFFF, 0xFFFF, 0)
	data := append(append(append([]byte{}, white...), white...), white...)
	data = append(data, white...)

	img, err := texdecode.Decode(texdecode.FormatBc1, data, 5, 5, texdecode.DefaultDecoderOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width != 5 || img.Height != 5 {
		t.Fatalf("dims = %dx%d, want 5x5", img.Width, img.Height)
	}
	if len(img.Pix) != 5*5*4 {
		t.Fatalf("buffer length = %d, want %d", len(img.Pix), 5*5*4)
	}
}

func TestDecodeDimensionIndependence(t *testing.T) {
	for _, dim := range []int{1, 2, 3, 5, 7, 17} {
		blocksX, blocksY, total := texdecode.BlockCount(dim, dim)
		_ = blocksX
		_ = blocksY
		block := bc1Block(0x0000, 0x0000, 0)
		data := make([]byte, 0, total*8)
		for i := 0; i < total; i++ {
			data = append(data, block...)
		}
		img, err := texdecode.Decode(texdecode.FormatBc1, data, dim, dim, texdecode.DefaultDecoderOptions())
		if err != nil {
			t.Fatalf("dim %d: Decode: %v", dim, err)
		}
		if len(img.Pix) != dim*dim*4 {
			t.Fatalf("dim %d: buffer length = %d, want %d", dim, len(img.Pix), dim*dim*4)
		}
	}
}

func TestDecode2DInvalidShapeRejectsNonPositiveDimensions(t *testing.T) {
	_, err := texdecode.Decode2D(nil, texdecode.FormatBc1, nil, 0, 4, texdecode.DefaultDecoderOptions())
	if texdecode.KindOf(err) != texdecode.KindInvalidShape {
		t.Fatalf("got %v, want KindInvalidShape", err)
	}
}

func TestDecodeAllMipmapsInvalidShapeRejectsNonPositiveDimensions(t *testing.T) {
	mips := []texdecode.MipDescriptor{{Width: 4, Height: 0, Data: nil}}
	_, err := texdecode.DecodeAllMipmaps(nil, texdecode.FormatBc1, mips, texdecode.DefaultDecoderOptions())
	if texdecode.KindOf(err) != texdecode.KindInvalidShape {
		t.Fatalf("got %v, want KindInvalidShape", err)
	}
}

func TestDecodeLengthMismatch(t *testing.T) {
	_, err := texdecode.Decode(texdecode.FormatBc1, make([]byte, 7), 4, 4, texdecode.DefaultDecoderOptions())
	if texdecode.KindOf(err) != texdecode.KindLengthMismatch {
		t.Fatalf("got %v, want KindLengthMismatch", err)
	}
}

func TestParallelMatchesSequentialDecode(t *testing.T) {
	const dim = 64 // large enough to exceed the sequential fast path
	_, _, total := texdecode.BlockCount(dim, dim)
	data := make([]byte, 0, total*8)
	for i := 0; i < total; i++ {
		c0 := uint16(i * 37)
		c1 := uint16(i * 91)
		data = append(data, bc1Block(c0, c1, uint32(i)*2654435761)...)
	}

	seqOpts := texdecode.DefaultDecoderOptions()
	seqOpts.IsParallel = false
	parOpts := texdecode.DefaultDecoderOptions()
	parOpts.IsParallel = true

	seq, err := texdecode.Decode(texdecode.FormatBc1, data, dim, dim, seqOpts)
	if err != nil {
		t.Fatalf("sequential Decode: %v", err)
	}
	par, err := texdecode.Decode(texdecode.FormatBc1, data, dim, dim, parOpts)
	if err != nil {
		t.Fatalf("parallel Decode: %v", err)
	}
	if len(seq.Pix) != len(par.Pix) {
		t.Fatalf("length mismatch: seq=%d par=%d", len(seq.Pix), len(par.Pix))
	}
	for i := range seq.Pix {
		if seq.Pix[i] != par.Pix[i] {
			t.Fatalf("byte %d differs: seq=%d par=%d", i, seq.Pix[i], par.Pix[i])
		}
	}
}

func TestDecode2DProgressReachesOne(t *testing.T) {
	const dim = 64
	_, _, total := texdecode.BlockCount(dim, dim)
	block := bc1Block(0, 0, 0)
	data := make([]byte, 0, total*8)
	for i := 0; i < total; i++ {
		data = append(data, block...)
	}

	ctx := texdecode.NewOperationContext()
	opts := texdecode.DefaultDecoderOptions()
	opts.IsParallel = true
	if _, err := texdecode.Decode2D(ctx, texdecode.FormatBc1, data, dim, dim, opts); err != nil {
		t.Fatalf("Decode2D: %v", err)
	}
	if p := ctx.Progress(); p != 1.0 {
		t.Fatalf("final progress = %v, want 1.0", p)
	}
}

func TestDecode2DCancelledBeforeStartYieldsCancelled(t *testing.T) {
	const dim = 64
	_, _, total := texdecode.BlockCount(dim, dim)
	block := bc1Block(0, 0, 0)
	data := make([]byte, 0, total*8)
	for i := 0; i < total; i++ {
		data = append(data, block...)
	}

	ctx := texdecode.NewOperationContext()
	ctx.Cancel()
	opts := texdecode.DefaultDecoderOptions()
	opts.IsParallel = true
	_, err := texdecode.Decode2D(ctx, texdecode.FormatBc1, data, dim, dim, opts)
	if texdecode.KindOf(err) != texdecode.KindCancelled {
		t.Fatalf("got %v, want KindCancelled", err)
	}
}

func TestDecode2DCancelledBeforeStartYieldsCancelledOnSequentialFastPath(t *testing.T) {
	// dim=4 is a single block, well under the parallel-dispatch threshold,
	// and IsParallel is left false: both take the sequential fast path.
	const dim = 4
	data := bc1Block(0, 0, 0)

	ctx := texdecode.NewOperationContext()
	ctx.Cancel()
	opts := texdecode.DefaultDecoderOptions()
	opts.IsParallel = false
	_, err := texdecode.Decode2D(ctx, texdecode.FormatBc1, data, dim, dim, opts)
	if texdecode.KindOf(err) != texdecode.KindCancelled {
		t.Fatalf("got %v, want KindCancelled", err)
	}
}
