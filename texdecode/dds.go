package texdecode

import "encoding/binary"

// DDS header layout constants, named after the Microsoft DDS_HEADER fields,
// grounded on heisthecat31-evrFileTools/pkg/texture/texture.go's DDS
// constants and createDDSHeader byte offsets.
const (
	ddsMagic           = 0x20534444 // "DDS "
	ddsHeaderSize      = 124
	ddsPixelFormatSize = 32
	ddsFourCCDX10      = 0x30315844 // "DX10"

	ddpfAlphaPixels = 0x1
	ddpfFourCC      = 0x4

	ddscapsMipmap = 0x400000
)

// DdsImage holds a parsed DDS file's shape and mipmap payloads, independent
// of whether its format came from a legacy FourCC or a DX10 extension
// header.
type DdsImage struct {
	Format CompressionFormat
	Width  int
	Height int
	Mips   []MipDescriptor
}

// ParseDDS parses a DDS file into its CompressionFormat, dimensions, and
// per-mip payload slices (aliasing data, no copy), per spec section 4.5 and
// invariant (v)'s BC1-alpha tie-break rule.
func ParseDDS(data []byte, opts DecoderOptions) (*DdsImage, error) {
	if len(data) < 4+ddsHeaderSize {
		return nil, newError(KindTruncated, "DDS header truncated")
	}
	if binary.LittleEndian.Uint32(data[0:4]) != ddsMagic {
		return nil, newError(KindMalformedContainer, "not a DDS file")
	}

	h := data[4 : 4+ddsHeaderSize]
	height := int(binary.LittleEndian.Uint32(h[8:12]))
	width := int(binary.LittleEndian.Uint32(h[12:16]))
	caps := binary.LittleEndian.Uint32(h[104:108])
	mipCount := int(binary.LittleEndian.Uint32(h[24:28]))
	if mipCount == 0 {
		mipCount = 1
	}
	if caps&ddscapsMipmap == 0 {
		mipCount = 1
	}

	pf := h[72:104]
	pfFlags := binary.LittleEndian.Uint32(pf[4:8])
	fourCC := binary.LittleEndian.Uint32(pf[8:12])
	alphaFlag := pfFlags&ddpfAlphaPixels != 0

	offset := 4 + ddsHeaderSize
	var format CompressionFormat
	var err error

	if pfFlags&ddpfFourCC != 0 && fourCC == ddsFourCCDX10 {
		if len(data) < offset+20 {
			return nil, newError(KindTruncated, "DDS DX10 extension header truncated")
		}
		dxgi := binary.LittleEndian.Uint32(data[offset : offset+4])
		offset += 20
		format, err = dxgiFormatToCompressionFormat(dxgi, alphaFlag, opts)
	} else {
		format, err = legacyFourCCToFormat(fourCC, alphaFlag, opts)
	}
	if err != nil {
		return nil, err
	}

	mips, err := sliceMips(data[offset:], format, width, height, mipCount)
	if err != nil {
		return nil, err
	}

	return &DdsImage{Format: format, Width: width, Height: height, Mips: mips}, nil
}

// legacyFourCCToFormat maps the pre-DX10 FourCC codes ("DXT1".."DXT5") to a
// CompressionFormat, applying the same BC1 alpha tie-break DX10 paths use.
func legacyFourCCToFormat(fourCC uint32, alphaFlag bool, opts DecoderOptions) (CompressionFormat, error) {
	switch fourCC {
	case fourCCCode("DXT1"):
		if alphaFlag || opts.DdsBc1ExpectAlpha {
			return FormatBc1WithAlpha, nil
		}
		return FormatBc1, nil
	case fourCCCode("DXT2"), fourCCCode("DXT3"):
		return FormatBc2, nil
	case fourCCCode("DXT4"), fourCCCode("DXT5"):
		return FormatBc3, nil
	case fourCCCode("ATI1"), fourCCCode("BC4U"):
		return FormatBc4, nil
	case fourCCCode("ATI2"), fourCCCode("BC5U"):
		return FormatBc5, nil
	default:
		return 0, newError(KindUnsupportedFormat, "unrecognized DDS FourCC")
	}
}

func fourCCCode(s string) uint32 {
	return uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
}

// sliceMips carves mipCount successively-halved-dimension payloads out of a
// flat DDS data region, per spec section 4.4's mip-chain layout.
func sliceMips(data []byte, format CompressionFormat, width, height, mipCount int) ([]MipDescriptor, error) {
	mips := make([]MipDescriptor, 0, mipCount)
	offset := 0
	w, h := width, height
	for i := 0; i < mipCount; i++ {
		size, err := GetBufferSize(format, w, h)
		if err != nil {
			return nil, err
		}
		if offset+size > len(data) {
			return nil, newError(KindTruncated, "DDS mip payload truncated")
		}
		mips = append(mips, MipDescriptor{Width: w, Height: h, Data: data[offset : offset+size]})
		offset += size
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}
	return mips, nil
}
