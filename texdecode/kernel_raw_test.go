package texdecode_test

import (
	"bytes"
	"testing"

	"github.com/texdecode/texdecode/texdecode"
)

func TestDecodeRawRedAsLuminance(t *testing.T) {
	data := []byte{10, 20, 30, 40}
	opts := texdecode.DefaultDecoderOptions()
	opts.RedAsLuminance = true
	img, err := texdecode.DecodeRaw(texdecode.FormatR, data, 4, 1, opts)
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	want := []texdecode.ColorRgba32{
		{R: 10, G: 10, B: 10, A: 255},
		{R: 20, G: 20, B: 20, A: 255},
		{R: 30, G: 30, B: 30, A: 255},
		{R: 40, G: 40, B: 40, A: 255},
	}
	for x, w := range want {
		if got := img.At(x, 0); got != w {
			t.Fatalf("pixel %d = %+v, want %+v", x, got, w)
		}
	}
}

func TestDecodeRawRgbaIsIdentity(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	img, err := texdecode.DecodeRaw(texdecode.FormatRgba, data, 2, 1, texdecode.DefaultDecoderOptions())
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	if got := img.At(0, 0); got != (texdecode.ColorRgba32{R: 1, G: 2, B: 3, A: 4}) {
		t.Fatalf("pixel 0 = %+v", got)
	}
	if got := img.At(1, 0); got != (texdecode.ColorRgba32{R: 5, G: 6, B: 7, A: 8}) {
		t.Fatalf("pixel 1 = %+v", got)
	}
}

func TestDecodeRawBgraSwapsRedAndBlue(t *testing.T) {
	data := []byte{1, 2, 3, 4} // B,G,R,A on the wire
	img, err := texdecode.DecodeRaw(texdecode.FormatBgra, data, 1, 1, texdecode.DefaultDecoderOptions())
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	want := texdecode.ColorRgba32{R: 3, G: 2, B: 1, A: 4}
	if got := img.At(0, 0); got != want {
		t.Fatalf("pixel 0 = %+v, want %+v", got, want)
	}
}

func TestDecodeRawLengthMismatch(t *testing.T) {
	_, err := texdecode.DecodeRaw(texdecode.FormatRgba, make([]byte, 3), 1, 1, texdecode.DefaultDecoderOptions())
	if texdecode.KindOf(err) != texdecode.KindLengthMismatch {
		t.Fatalf("got %v, want KindLengthMismatch", err)
	}
}

func TestDecodeBlockBufferDecodesEachBlockIndependently(t *testing.T) {
	blocks := append(bc1Block(0xFFFF, 0x0000, 0), bc1Block(0x0000, 0xFFFF, 0)...)
	out, err := texdecode.DecodeBlockBuffer(texdecode.FormatBc1, blocks, texdecode.DefaultDecoderOptions())
	if err != nil {
		t.Fatalf("DecodeBlockBuffer: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d blocks, want 2", len(out))
	}
	if out[0][0] == out[1][0] {
		t.Fatalf("blocks decoded identically, want distinct endpoints reflected")
	}
}

func TestDecodeBlockBufferLengthMismatch(t *testing.T) {
	_, err := texdecode.DecodeBlockBuffer(texdecode.FormatBc1, make([]byte, 5), texdecode.DefaultDecoderOptions())
	if texdecode.KindOf(err) != texdecode.KindLengthMismatch {
		t.Fatalf("got %v, want KindLengthMismatch", err)
	}
}

func newBlockGrid() *texdecode.DecodedImage {
	img, err := texdecode.DecodeRaw(texdecode.FormatRgba, make([]byte, 4*4*4), 4, 4, texdecode.DefaultDecoderOptions())
	if err != nil {
		panic(err)
	}
	return img
}

func TestDecodeBlockStreamReadsOneBlockPerCall(t *testing.T) {
	blocks := append(bc1Block(0xFFFF, 0x0000, 0), bc1Block(0x0000, 0xFFFF, 0)...)
	r := bytes.NewReader(blocks)
	grid := newBlockGrid()

	n, err := texdecode.DecodeBlockStream(texdecode.FormatBc1, r, grid, texdecode.DefaultDecoderOptions())
	if err != nil {
		t.Fatalf("DecodeBlockStream: %v", err)
	}
	if n != 8 {
		t.Fatalf("consumed %d bytes, want 8", n)
	}
	first := grid.At(0, 0)

	n, err = texdecode.DecodeBlockStream(texdecode.FormatBc1, r, grid, texdecode.DefaultDecoderOptions())
	if err != nil {
		t.Fatalf("DecodeBlockStream second call: %v", err)
	}
	if n != 8 {
		t.Fatalf("consumed %d bytes, want 8", n)
	}
	second := grid.At(0, 0)
	if first == second {
		t.Fatalf("second block decoded identically to first, want distinct endpoints reflected")
	}

	n, err = texdecode.DecodeBlockStream(texdecode.FormatBc1, r, grid, texdecode.DefaultDecoderOptions())
	if err != nil {
		t.Fatalf("DecodeBlockStream at EOF: %v", err)
	}
	if n != 0 {
		t.Fatalf("consumed %d bytes at EOF, want 0", n)
	}
}

func TestDecodeBlockStreamTruncatedIsKindTruncated(t *testing.T) {
	r := bytes.NewReader(make([]byte, 5))
	grid := newBlockGrid()
	_, err := texdecode.DecodeBlockStream(texdecode.FormatBc1, r, grid, texdecode.DefaultDecoderOptions())
	if texdecode.KindOf(err) != texdecode.KindTruncated {
		t.Fatalf("got %v, want KindTruncated", err)
	}
}

func TestDecodeBlockStreamInvalidShapeRejectsNon4x4Grid(t *testing.T) {
	img, err := texdecode.DecodeRaw(texdecode.FormatRgba, make([]byte, 3*4*4), 3, 4, texdecode.DefaultDecoderOptions())
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	r := bytes.NewReader(bc1Block(0xFFFF, 0x0000, 0))
	_, err = texdecode.DecodeBlockStream(texdecode.FormatBc1, r, img, texdecode.DefaultDecoderOptions())
	if texdecode.KindOf(err) != texdecode.KindInvalidShape {
		t.Fatalf("got %v, want KindInvalidShape", err)
	}
}

func TestDecodeRawStreamReadsExactBufferSize(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	img, err := texdecode.DecodeRawStream(texdecode.FormatRgba, bytes.NewReader(data), 2, 1, texdecode.DefaultDecoderOptions())
	if err != nil {
		t.Fatalf("DecodeRawStream: %v", err)
	}
	if got := img.At(1, 0); got != (texdecode.ColorRgba32{R: 5, G: 6, B: 7, A: 8}) {
		t.Fatalf("pixel 1 = %+v", got)
	}
}

func TestDecodeRawStreamTruncatedIsKindTruncated(t *testing.T) {
	_, err := texdecode.DecodeRawStream(texdecode.FormatRgba, bytes.NewReader([]byte{1, 2, 3}), 2, 1, texdecode.DefaultDecoderOptions())
	if texdecode.KindOf(err) != texdecode.KindTruncated {
		t.Fatalf("got %v, want KindTruncated", err)
	}
}
