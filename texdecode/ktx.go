package texdecode

import (
	"bytes"
	"encoding/binary"
)

var ktx1Identifier = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x31, 0x31, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}
var ktx2Identifier = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

// VK_FORMAT values used by the KTX2 level index this package understands.
const (
	vkFormatR8G8B8A8Unorm  = 37
	vkFormatB8G8R8A8Unorm  = 44
	vkFormatBc1RGBUnorm    = 131
	vkFormatBc1RGBAUnorm   = 133
	vkFormatBc2Unorm       = 135
	vkFormatBc3Unorm       = 137
	vkFormatBc4Unorm       = 139
	vkFormatBc5Unorm       = 141
	vkFormatBc7Unorm       = 145
)

const (
	ktx2SupercompressionNone   = 0
	ktx2SupercompressionBasis  = 1
	ktx2SupercompressionZstd   = 2
	ktx2SupercompressionZlib   = 3
)

// KtxImage holds a parsed KTX1 or KTX2 file's shape and mipmap payloads for
// face 0, array element 0, per spec section 4.5 (multi-face/array KTX files
// are out of scope, matching the Non-goals on cubemap/array handling).
type KtxImage struct {
	Format CompressionFormat
	Width  int
	Height int
	Mips   []MipDescriptor
}

// ParseKTX dispatches on the 12-byte file identifier to parseKTX1 or
// parseKTX2.
func ParseKTX(data []byte, opts DecoderOptions) (*KtxImage, error) {
	if len(data) < 12 {
		return nil, newError(KindTruncated, "KTX identifier truncated")
	}
	switch {
	case bytes.Equal(data[:12], ktx1Identifier[:]):
		return parseKTX1(data)
	case bytes.Equal(data[:12], ktx2Identifier[:]):
		return parseKTX2(data)
	default:
		return nil, newError(KindMalformedContainer, "not a KTX file")
	}
}

func parseKTX1(data []byte) (*KtxImage, error) {
	const headerSize = 12 + 13*4
	if len(data) < headerSize {
		return nil, newError(KindTruncated, "KTX1 header truncated")
	}
	// Fields, in order: endianness, glType, glTypeSize, glFormat,
	// glInternalFormat, glBaseInternalFormat, pixelWidth, pixelHeight,
	// pixelDepth, numberOfArrayElements, numberOfFaces,
	// numberOfMipmapLevels, bytesOfKeyValueData.
	h := data[12:headerSize]
	glType := binary.LittleEndian.Uint32(h[4:8])
	glFormat := binary.LittleEndian.Uint32(h[12:16])
	glInternalFormat := binary.LittleEndian.Uint32(h[16:20])
	width := int(binary.LittleEndian.Uint32(h[24:28]))
	height := int(binary.LittleEndian.Uint32(h[28:32]))
	numberOfMipmapLevels := int(binary.LittleEndian.Uint32(h[44:48]))
	bytesOfKeyValueData := int(binary.LittleEndian.Uint32(h[48:52]))
	if numberOfMipmapLevels == 0 {
		numberOfMipmapLevels = 1
	}

	lookupFmt := glInternalFormat
	if glType != 0 {
		// An uncompressed KTX1 stores glFormat (e.g. GL_RGBA), not glInternalFormat.
		lookupFmt = glFormat
	}
	format, err := glInternalFormatToFormat(lookupFmt)
	if err != nil {
		return nil, err
	}

	offset := headerSize + bytesOfKeyValueData
	mips := make([]MipDescriptor, 0, numberOfMipmapLevels)
	w, h2 := width, height
	for i := 0; i < numberOfMipmapLevels; i++ {
		if offset+4 > len(data) {
			return nil, newError(KindTruncated, "KTX1 level truncated")
		}
		imageSize := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
		offset += 4
		if offset+imageSize > len(data) {
			return nil, newError(KindTruncated, "KTX1 level data truncated")
		}
		mips = append(mips, MipDescriptor{Width: w, Height: h2, Data: data[offset : offset+imageSize]})
		offset += imageSize
		if pad := imageSize % 4; pad != 0 {
			offset += 4 - pad
		}
		if w > 1 {
			w /= 2
		}
		if h2 > 1 {
			h2 /= 2
		}
	}

	return &KtxImage{Format: format, Width: width, Height: height, Mips: mips}, nil
}

func vkFormatToCompressionFormat(vk uint32) (CompressionFormat, error) {
	switch vk {
	case vkFormatBc1RGBUnorm:
		return FormatBc1, nil
	case vkFormatBc1RGBAUnorm:
		return FormatBc1WithAlpha, nil
	case vkFormatBc2Unorm:
		return FormatBc2, nil
	case vkFormatBc3Unorm:
		return FormatBc3, nil
	case vkFormatBc4Unorm:
		return FormatBc4, nil
	case vkFormatBc5Unorm:
		return FormatBc5, nil
	case vkFormatBc7Unorm:
		return FormatBc7, nil
	case vkFormatR8G8B8A8Unorm:
		return FormatRgba, nil
	case vkFormatB8G8R8A8Unorm:
		return FormatBgra, nil
	default:
		return 0, newError(KindUnsupportedFormat, "unrecognized VkFormat")
	}
}

func parseKTX2(data []byte) (*KtxImage, error) {
	const headerSize = 12 + 9*4 + 4*4 + 2*8
	if len(data) < headerSize {
		return nil, newError(KindTruncated, "KTX2 header truncated")
	}
	// Fields, in order: vkFormat, typeSize, pixelWidth, pixelHeight,
	// pixelDepth, layerCount, faceCount, levelCount, supercompressionScheme.
	h := data[12:]
	vkFormat := binary.LittleEndian.Uint32(h[0:4])
	width := int(binary.LittleEndian.Uint32(h[8:12]))
	height := int(binary.LittleEndian.Uint32(h[12:16]))
	levelCount := int(binary.LittleEndian.Uint32(h[28:32]))
	supercompressionScheme := binary.LittleEndian.Uint32(h[32:36])
	if levelCount == 0 {
		levelCount = 1
	}

	format, err := vkFormatToCompressionFormat(vkFormat)
	if err != nil {
		return nil, err
	}

	const levelIndexOffset = 12 + 9*4 + 4*4 + 2*8
	const levelEntrySize = 24
	need := levelIndexOffset + levelCount*levelEntrySize
	if len(data) < need {
		return nil, newError(KindTruncated, "KTX2 level index truncated")
	}

	w, h2 := width, height
	mips := make([]MipDescriptor, 0, levelCount)
	for i := 0; i < levelCount; i++ {
		e := data[levelIndexOffset+i*levelEntrySize : levelIndexOffset+(i+1)*levelEntrySize]
		byteOffset := binary.LittleEndian.Uint64(e[0:8])
		byteLength := binary.LittleEndian.Uint64(e[8:16])
		uncompressedLength := binary.LittleEndian.Uint64(e[16:24])

		if byteOffset+byteLength > uint64(len(data)) {
			return nil, newError(KindTruncated, "KTX2 level data truncated")
		}
		levelData := data[byteOffset : byteOffset+byteLength]

		if supercompressionScheme == ktx2SupercompressionZstd {
			decompressed, err := zstdDecompress(levelData, int(uncompressedLength))
			if err != nil {
				return nil, err
			}
			levelData = decompressed
		} else if supercompressionScheme != ktx2SupercompressionNone {
			return nil, newError(KindUnsupportedFormat, "unsupported KTX2 supercompression scheme")
		}

		mips = append(mips, MipDescriptor{Width: w, Height: h2, Data: levelData})
		if w > 1 {
			w /= 2
		}
		if h2 > 1 {
			h2 /= 2
		}
	}
	// KTX2 stores levels from the largest mip to the smallest in reverse
	// byteOffset order on disk, but the level index itself is already in
	// level-0-first order, matching the mip ordering DecodeAllMipmaps expects.

	return &KtxImage{Format: format, Width: width, Height: height, Mips: mips}, nil
}
