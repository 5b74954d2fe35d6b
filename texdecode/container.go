package texdecode

// DXGI_FORMAT values this package recognizes, named the way
// heisthecat31's texture package names the DirectX constants it reads out
// of DDS DX10 extension headers.
const (
	dxgiFormatUnknown        = 0
	dxgiFormatR8G8B8A8Unorm  = 28
	dxgiFormatBc1Unorm       = 71
	dxgiFormatBc1UnormSRGB   = 72
	dxgiFormatBc2Unorm       = 74
	dxgiFormatBc2UnormSRGB   = 75
	dxgiFormatBc3Unorm       = 77
	dxgiFormatBc3UnormSRGB   = 78
	dxgiFormatBc4Unorm       = 80
	dxgiFormatBc4Snorm       = 81
	dxgiFormatBc5Unorm       = 83
	dxgiFormatBc5Snorm       = 84
	dxgiFormatBc7Unorm       = 98
	dxgiFormatBc7UnormSRGB   = 99
	dxgiFormatB8G8R8A8Unorm  = 87
)

// glInternalFormatToCompressionFormat maps the Khronos GL compressed
// internal-format enums a KTX file stores (plus the GL_RGB, GL_RGBA and
// GL_RGBA8 enums for uncompressed KTX payloads) to CompressionFormat.
var glInternalFormatToCompressionFormat = map[uint32]CompressionFormat{
	0x83F0: FormatBc1,          // GL_COMPRESSED_RGB_S3TC_DXT1_EXT
	0x83F1: FormatBc1WithAlpha, // GL_COMPRESSED_RGBA_S3TC_DXT1_EXT
	0x83F2: FormatBc2,          // GL_COMPRESSED_RGBA_S3TC_DXT3_EXT
	0x83F3: FormatBc3,          // GL_COMPRESSED_RGBA_S3TC_DXT5_EXT
	0x8DBB: FormatBc4,          // GL_COMPRESSED_RED_RGTC1
	0x8DBD: FormatBc5,          // GL_COMPRESSED_RED_GREEN_RGTC2
	0x8E8C: FormatBc7,          // GL_COMPRESSED_RGBA_BPTC_UNORM
	0x8C92: FormatAtc,                         // GL_ATC_RGB_AMD
	0x8C93: FormatAtcExplicitAlpha,             // GL_ATC_RGBA_EXPLICIT_ALPHA_AMD
	0x87EE: FormatAtcInterpolatedAlpha,         // GL_ATC_RGBA_INTERPOLATED_ALPHA_AMD
	0x1907: FormatRgb,  // GL_RGB
	0x1908: FormatRgba, // GL_RGBA
	0x8059: FormatRgba, // GL_RGBA8 (treated the same, byte layout is identical)
}

func dxgiFormatToCompressionFormat(dxgi uint32, ddsAlphaFlag bool, opts DecoderOptions) (CompressionFormat, error) {
	switch dxgi {
	case dxgiFormatBc1Unorm, dxgiFormatBc1UnormSRGB:
		if ddsAlphaFlag || opts.DdsBc1ExpectAlpha {
			return FormatBc1WithAlpha, nil
		}
		return FormatBc1, nil
	case dxgiFormatBc2Unorm, dxgiFormatBc2UnormSRGB:
		return FormatBc2, nil
	case dxgiFormatBc3Unorm, dxgiFormatBc3UnormSRGB:
		return FormatBc3, nil
	case dxgiFormatBc4Unorm, dxgiFormatBc4Snorm:
		return FormatBc4, nil
	case dxgiFormatBc5Unorm, dxgiFormatBc5Snorm:
		return FormatBc5, nil
	case dxgiFormatBc7Unorm, dxgiFormatBc7UnormSRGB:
		return FormatBc7, nil
	case dxgiFormatR8G8B8A8Unorm:
		return FormatRgba, nil
	case dxgiFormatB8G8R8A8Unorm:
		return FormatBgra, nil
	default:
		return 0, newError(KindUnsupportedFormat, "unrecognized DXGI format")
	}
}

func glInternalFormatToFormat(glFormat uint32) (CompressionFormat, error) {
	f, ok := glInternalFormatToCompressionFormat[glFormat]
	if !ok {
		return 0, newError(KindUnsupportedFormat, "unrecognized GL internal format")
	}
	return f, nil
}
