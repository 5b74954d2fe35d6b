package texdecode_test

import (
	"encoding/binary"
	"testing"

	"github.com/texdecode/texdecode/texdecode"
)

func bc1Block(c0, c1 uint16, indices uint32) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint16(b[0:2], c0)
	binary.LittleEndian.PutUint16(b[2:4], c1)
	binary.LittleEndian.PutUint32(b[4:8], indices)
	return b
}

func TestBc1AllIndexZeroReturnsEndpoint0(t *testing.T) {
	// c0=0xFFFF (white in RGB565), c1=0x0000 (black), every index selects c0.
	block := bc1Block(0xFFFF, 0x0000, 0x00000000)
	got, err := texdecode.DecodeBlock(texdecode.FormatBc1, block, texdecode.DefaultDecoderOptions())
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	want := texdecode.ColorRgba32{R: 255, G: 255, B: 255, A: 255}
	for i, px := range got {
		if px != want {
			t.Fatalf("pixel %d = %+v, want %+v", i, px, want)
		}
	}
}

func TestBc1AlphaModeIndex3IsTransparentBlack(t *testing.T) {
	block := bc1Block(0x0000, 0xF800, 0xFFFFFFFF) // c0 black, c1 red, all index 3
	got, err := texdecode.DecodeBlock(texdecode.FormatBc1WithAlpha, block, texdecode.DefaultDecoderOptions())
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	want := texdecode.ColorRgba32{R: 0, G: 0, B: 0, A: 0}
	for i, px := range got {
		if px != want {
			t.Fatalf("pixel %d = %+v, want %+v", i, px, want)
		}
	}
}

func TestBc1NoAlphaForcesOpaquePaletteAtIndex3(t *testing.T) {
	block := bc1Block(0x0000, 0xF800, 0xFFFFFFFF) // same block, alpha-free format
	got, err := texdecode.DecodeBlock(texdecode.FormatBc1, block, texdecode.DefaultDecoderOptions())
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	want := texdecode.ColorRgba32{R: 170, G: 0, B: 0, A: 255}
	for i, px := range got {
		if px != want {
			t.Fatalf("pixel %d = %+v, want %+v", i, px, want)
		}
	}
}

func TestBc1BlockDecodeIsDeterministic(t *testing.T) {
	block := bc1Block(0x1234, 0x5678, 0xA5A5A5A5)
	opts := texdecode.DefaultDecoderOptions()
	a, err := texdecode.DecodeBlock(texdecode.FormatBc1, block, opts)
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	b, err := texdecode.DecodeBlock(texdecode.FormatBc1, block, opts)
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	if a != b {
		t.Fatalf("decode is not deterministic: %+v vs %+v", a, b)
	}
}

func TestDecodeBlockLengthMismatch(t *testing.T) {
	_, err := texdecode.DecodeBlock(texdecode.FormatBc1, make([]byte, 7), texdecode.DefaultDecoderOptions())
	if texdecode.KindOf(err) != texdecode.KindLengthMismatch {
		t.Fatalf("got %v, want KindLengthMismatch", err)
	}
}
