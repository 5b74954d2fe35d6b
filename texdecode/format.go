package texdecode

// CompressionFormat is a neutral tag identifying an encoded payload kind,
// independent of whichever container (KTX's GL internal format, DDS's
// DXGI format) named it.
type CompressionFormat uint8

const (
	FormatR CompressionFormat = iota
	FormatRg
	FormatRgb
	FormatRgba
	FormatBgra
	FormatBc1
	FormatBc1WithAlpha
	FormatBc2
	FormatBc3
	FormatBc4
	FormatBc5
	FormatBc7
	FormatAtc
	FormatAtcExplicitAlpha
	FormatAtcInterpolatedAlpha

	formatCount
)

func (f CompressionFormat) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatRg:
		return "RG"
	case FormatRgb:
		return "RGB"
	case FormatRgba:
		return "RGBA"
	case FormatBgra:
		return "BGRA"
	case FormatBc1:
		return "BC1"
	case FormatBc1WithAlpha:
		return "BC1A"
	case FormatBc2:
		return "BC2"
	case FormatBc3:
		return "BC3"
	case FormatBc4:
		return "BC4"
	case FormatBc5:
		return "BC5"
	case FormatBc7:
		return "BC7"
	case FormatAtc:
		return "ATC"
	case FormatAtcExplicitAlpha:
		return "ATC_EXPLICIT_ALPHA"
	case FormatAtcInterpolatedAlpha:
		return "ATC_INTERPOLATED_ALPHA"
	default:
		return "unknown"
	}
}

// formatInfo is the registry's single source of truth for a format's
// block-level layout: whether it is block-compressed, the block's byte
// size on the wire, and the block's pixel footprint (always 4x4 for
// compressed formats, 1x1 for raw formats decoded per-pixel).
type formatInfo struct {
	compressed   bool
	blockBytes   int
	blockW       int
	blockH       int
	bytesPerPel  int // raw formats only
	decodeBlock  func(block []byte, opts DecoderOptions) RawBlock4x4
	decodeRawRow func(row []byte, out []ColorRgba32, opts DecoderOptions)
}

var formatRegistry = [formatCount]formatInfo{
	FormatR:    {compressed: false, blockW: 1, blockH: 1, bytesPerPel: 1, decodeRawRow: decodeRawRowR},
	FormatRg:   {compressed: false, blockW: 1, blockH: 1, bytesPerPel: 2, decodeRawRow: decodeRawRowRg},
	FormatRgb:  {compressed: false, blockW: 1, blockH: 1, bytesPerPel: 3, decodeRawRow: decodeRawRowRgb},
	FormatRgba: {compressed: false, blockW: 1, blockH: 1, bytesPerPel: 4, decodeRawRow: decodeRawRowRgba},
	FormatBgra: {compressed: false, blockW: 1, blockH: 1, bytesPerPel: 4, decodeRawRow: decodeRawRowBgra},

	FormatBc1:          {compressed: true, blockBytes: 8, blockW: 4, blockH: 4, decodeBlock: decodeBlockBc1},
	FormatBc1WithAlpha: {compressed: true, blockBytes: 8, blockW: 4, blockH: 4, decodeBlock: decodeBlockBc1Alpha},
	FormatBc2:          {compressed: true, blockBytes: 16, blockW: 4, blockH: 4, decodeBlock: decodeBlockBc2},
	FormatBc3:          {compressed: true, blockBytes: 16, blockW: 4, blockH: 4, decodeBlock: decodeBlockBc3},
	FormatBc4:          {compressed: true, blockBytes: 8, blockW: 4, blockH: 4, decodeBlock: decodeBlockBc4},
	FormatBc5:          {compressed: true, blockBytes: 16, blockW: 4, blockH: 4, decodeBlock: decodeBlockBc5},
	FormatBc7:          {compressed: true, blockBytes: 16, blockW: 4, blockH: 4, decodeBlock: decodeBlockBc7},

	FormatAtc:                  {compressed: true, blockBytes: 8, blockW: 4, blockH: 4, decodeBlock: decodeBlockAtc},
	FormatAtcExplicitAlpha:     {compressed: true, blockBytes: 16, blockW: 4, blockH: 4, decodeBlock: decodeBlockAtcExplicitAlpha},
	FormatAtcInterpolatedAlpha: {compressed: true, blockBytes: 16, blockW: 4, blockH: 4, decodeBlock: decodeBlockAtcInterpolatedAlpha},
}

func lookupFormat(f CompressionFormat) (formatInfo, error) {
	if f >= formatCount {
		return formatInfo{}, newError(KindUnsupportedFormat, "unknown compression format")
	}
	info := formatRegistry[f]
	if !info.compressed && info.decodeRawRow == nil {
		return formatInfo{}, newError(KindUnsupportedFormat, "unknown compression format")
	}
	return info, nil
}

// BlockSize returns the block byte size for a compressed format, or the
// bytes-per-pixel for a raw format.
func BlockSize(f CompressionFormat) (int, error) {
	info, err := lookupFormat(f)
	if err != nil {
		return 0, err
	}
	if info.compressed {
		return info.blockBytes, nil
	}
	return info.bytesPerPel, nil
}

// BlockCount returns the number of 4x4 blocks needed to cover a W x H
// image; both dimensions round up, per spec section 4.1.
func BlockCount(width, height int) (blocksX, blocksY, total int) {
	blocksX = (width + 3) / 4
	blocksY = (height + 3) / 4
	return blocksX, blocksY, blocksX * blocksY
}

// GetBufferSize returns the exact encoded byte length of a W x H payload:
// bytes-per-pixel * W * H for a raw format, or block bytes times the block
// count for a compressed format, per spec section 4.1.
func GetBufferSize(f CompressionFormat, width, height int) (int, error) {
	info, err := lookupFormat(f)
	if err != nil {
		return 0, err
	}
	if !info.compressed {
		return info.bytesPerPel * width * height, nil
	}
	_, _, total := BlockCount(width, height)
	return total * info.blockBytes, nil
}

// IsCompressed reports whether f is a block-compressed format.
func IsCompressed(f CompressionFormat) (bool, error) {
	info, err := lookupFormat(f)
	if err != nil {
		return false, err
	}
	return info.compressed, nil
}
