package texdecode

// bc7ModeInfo describes one of BC7's eight partitioned modes, per spec
// 4.2.6. The fields correspond to the canonical BC7 format reference's NS
// (subsets), PB (partitionBits), RB (rotationBits), ISB (hasIndexSelect,
// mode 4's index-selection bit), CB/AB (colorBits/alphaBits per endpoint
// channel), EPB/SPB (hasEndpointPBit/hasSharedPBit) and IB/IB2
// (indexBits/indexBits2, the primary and secondary index bit widths).
type bc7ModeInfo struct {
	subsets         int
	partitionBits   int
	rotationBits    int
	hasIndexSelect  bool
	colorBits       int
	alphaBits       int
	hasEndpointPBit bool
	hasSharedPBit   bool
	indexBits       int
	indexBits2      int
}

var bc7Modes = [8]bc7ModeInfo{
	0: {subsets: 3, partitionBits: 4, colorBits: 4, hasEndpointPBit: true, indexBits: 3},
	1: {subsets: 2, partitionBits: 6, colorBits: 6, hasSharedPBit: true, indexBits: 3},
	2: {subsets: 3, partitionBits: 6, colorBits: 5, indexBits: 2},
	3: {subsets: 2, partitionBits: 6, colorBits: 7, hasEndpointPBit: true, indexBits: 2},
	4: {subsets: 1, rotationBits: 2, hasIndexSelect: true, colorBits: 5, alphaBits: 6, indexBits: 2, indexBits2: 3},
	5: {subsets: 1, rotationBits: 2, colorBits: 7, alphaBits: 8, indexBits: 2, indexBits2: 2},
	6: {subsets: 1, colorBits: 7, alphaBits: 7, hasEndpointPBit: true, indexBits: 4},
	7: {subsets: 2, partitionBits: 6, colorBits: 5, alphaBits: 5, hasEndpointPBit: true, indexBits: 2},
}

// bc7Weights2/3/4 are the canonical BC7 interpolation weight tables for
// 2/3/4-bit indices, expressed out of 64 (matching BC6H/BC7's shared
// interpolation math: value = round(e0*(64-w) + e1*w) / 64).
var (
	bc7Weights2 = [4]uint32{0, 21, 43, 64}
	bc7Weights3 = [8]uint32{0, 9, 18, 27, 37, 46, 55, 64}
	bc7Weights4 = [16]uint32{0, 4, 9, 13, 17, 21, 26, 30, 34, 38, 43, 47, 51, 55, 60, 64}
)

func bc7WeightTable(bits int) []uint32 {
	switch bits {
	case 2:
		return bc7Weights2[:]
	case 3:
		return bc7Weights3[:]
	case 4:
		return bc7Weights4[:]
	default:
		return bc7Weights4[:]
	}
}

// bc7PartitionTable2 packs the 64 canonical two-subset partitions as one
// bit per texel (bit i of the pattern gives texel i's subset, 0 or 1),
// texel index = y*4+x. This is the standard packed representation shared
// by widely deployed BC7 software decoders.
var bc7PartitionTable2 = [64]uint16{
	0xcccc, 0x8888, 0xeeee, 0xecc8,
	0xc880, 0xfeec, 0xfec8, 0xec80,
	0xc800, 0xffec, 0xfe80, 0xe800,
	0xffe8, 0xff00, 0xfff0, 0xf000,
	0xf710, 0x008e, 0x7100, 0x08ce,
	0x008c, 0x7310, 0x3100, 0x8cce,
	0x088c, 0x3110, 0x6666, 0x366c,
	0x17e8, 0x0ff0, 0x718e, 0x399c,
	0xaaaa, 0xf0f0, 0x5a5a, 0x33cc,
	0x3c3c, 0x55aa, 0x9696, 0xa55a,
	0x73ce, 0x13c8, 0x324c, 0x3bdc,
	0x6996, 0xc33c, 0x9966, 0x0660,
	0x0272, 0x04e4, 0x4e40, 0x2720,
	0xc936, 0x936c, 0x39c6, 0x639c,
	0x9336, 0x9cc6, 0x817e, 0xe718,
	0xccf0, 0x0fcc, 0x7744, 0xee22,
}

// bc7AnchorTable2 gives, for each of the 64 two-subset partitions, the
// texel index whose subset-1 index MSB is implicit (subset 0's anchor is
// always texel 0).
var bc7AnchorTable2 = [64]uint8{
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 2, 8, 2, 2, 8, 8, 15,
	2, 8, 2, 2, 8, 8, 2, 2,
	15, 15, 6, 8, 2, 8, 15, 15,
	2, 8, 2, 2, 2, 15, 15, 6,
	6, 2, 6, 8, 15, 15, 2, 2,
	15, 15, 15, 15, 15, 2, 2, 15,
}

// bc7PartitionTable3 gives, for each of the 64 canonical three-subset
// partitions, the subset (0,1,2) of each of the 16 texels.
var bc7PartitionTable3 = [64][16]uint8{
	{0, 0, 1, 1, 0, 0, 1, 1, 0, 2, 2, 1, 2, 2, 2, 2},
	{0, 0, 0, 1, 0, 0, 1, 1, 2, 2, 1, 1, 2, 2, 2, 1},
	{0, 0, 0, 0, 2, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 1},
	{0, 2, 2, 2, 0, 0, 2, 2, 0, 0, 1, 1, 0, 1, 1, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 2, 2, 1, 1, 2, 2},
	{0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 2, 2, 0, 0, 2, 2},
	{0, 0, 2, 2, 0, 0, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1},
	{0, 0, 1, 1, 0, 0, 1, 1, 2, 2, 1, 1, 2, 2, 1, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2},
	{0, 1, 1, 2, 0, 1, 1, 2, 0, 1, 1, 2, 0, 1, 1, 2},
	{0, 1, 2, 2, 0, 1, 2, 2, 0, 1, 2, 2, 0, 1, 2, 2},
	{0, 0, 1, 1, 0, 1, 1, 2, 1, 1, 2, 2, 1, 2, 2, 2},
	{0, 0, 1, 1, 2, 0, 0, 1, 2, 2, 0, 0, 2, 2, 2, 0},
	{0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 1, 2, 1, 1, 2, 2},
	{0, 1, 1, 1, 0, 0, 1, 1, 2, 0, 0, 1, 2, 2, 0, 0},
	{0, 0, 0, 0, 1, 1, 2, 2, 1, 1, 2, 2, 1, 1, 2, 2},
	{0, 0, 2, 2, 0, 0, 2, 2, 0, 0, 2, 2, 1, 1, 1, 1},
	{0, 1, 1, 1, 0, 1, 1, 1, 0, 2, 2, 2, 0, 2, 2, 2},
	{0, 0, 0, 1, 0, 0, 0, 1, 2, 2, 2, 1, 2, 2, 2, 1},
	{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2},
	{0, 0, 0, 0, 1, 1, 1, 2, 1, 1, 1, 2, 1, 1, 1, 2},
	{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2},
	{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 2, 2, 2, 2},
	{0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 2, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 2, 2, 2, 2, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2},
	{0, 1, 2, 2, 0, 1, 2, 2, 0, 0, 1, 1, 0, 0, 0, 0},
	{0, 0, 1, 2, 0, 0, 1, 2, 1, 1, 2, 2, 2, 2, 2, 2},
	{0, 1, 1, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 1, 1, 0},
	{0, 0, 0, 0, 0, 1, 1, 0, 1, 2, 2, 1, 1, 2, 2, 1},
	{0, 0, 2, 2, 1, 1, 0, 2, 1, 1, 0, 2, 0, 0, 2, 2},
	{0, 1, 1, 0, 0, 1, 1, 0, 2, 0, 0, 2, 2, 2, 2, 2},
	{0, 0, 1, 1, 0, 1, 2, 2, 0, 1, 2, 2, 0, 0, 1, 1},
	{0, 0, 0, 0, 2, 0, 0, 0, 2, 2, 1, 1, 2, 2, 2, 1},
	{0, 0, 0, 0, 0, 0, 0, 2, 1, 1, 2, 2, 1, 2, 2, 2},
	{0, 2, 2, 2, 0, 0, 2, 2, 0, 0, 1, 2, 0, 0, 1, 1},
	{0, 0, 1, 1, 0, 0, 1, 2, 0, 0, 2, 2, 0, 2, 2, 2},
	{0, 1, 2, 0, 0, 1, 2, 0, 0, 1, 2, 0, 0, 1, 2, 0},
	{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 0, 0, 0, 0},
	{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0},
	{0, 1, 2, 0, 2, 0, 1, 2, 1, 2, 0, 1, 0, 1, 2, 0},
	{0, 0, 1, 1, 2, 2, 0, 0, 1, 1, 2, 2, 0, 0, 1, 1},
	{0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 0, 0, 0, 0, 1, 1},
	{0, 1, 0, 1, 0, 1, 0, 1, 2, 2, 2, 2, 2, 2, 2, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 2, 1, 2, 1, 2, 1, 2, 1},
	{0, 0, 2, 2, 1, 1, 2, 2, 0, 0, 2, 2, 1, 1, 2, 2},
	{0, 0, 2, 2, 0, 0, 1, 1, 0, 0, 2, 2, 0, 0, 1, 1},
	{0, 2, 2, 0, 1, 2, 2, 1, 0, 2, 2, 0, 1, 2, 2, 1},
	{0, 1, 0, 1, 2, 2, 2, 2, 2, 2, 2, 2, 0, 1, 0, 1},
	{0, 0, 0, 0, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1},
	{0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 2, 2, 2, 2},
	{0, 2, 2, 2, 0, 1, 1, 1, 0, 2, 2, 2, 0, 1, 1, 1},
	{0, 0, 0, 2, 1, 1, 1, 2, 0, 0, 0, 2, 1, 1, 1, 2},
	{0, 0, 0, 0, 2, 1, 1, 2, 2, 1, 1, 2, 2, 1, 1, 2},
	{0, 2, 2, 2, 0, 1, 1, 1, 0, 1, 1, 1, 0, 2, 2, 2},
	{0, 0, 0, 2, 1, 1, 1, 2, 1, 1, 1, 2, 0, 0, 0, 2},
	{0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 2, 2, 2, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 2, 2, 2, 2},
	{0, 1, 1, 0, 2, 2, 2, 2, 2, 2, 2, 2, 0, 1, 1, 0},
	{0, 0, 2, 2, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 2, 2},
	{0, 0, 2, 2, 1, 1, 2, 2, 1, 1, 2, 2, 0, 0, 2, 2},
	{0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 2, 0, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 2, 0, 0, 0, 2, 0},
	{0, 1, 1, 0, 0, 1, 1, 0, 2, 0, 0, 2, 2, 2, 2, 2},
}

// bc7AnchorTable3 gives, for each of the 64 three-subset partitions, the
// texel indices whose subset-1 and subset-2 index MSBs are implicit
// (subset 0's anchor is always texel 0).
var bc7AnchorTable3 = [64][2]uint8{
	{3, 15}, {3, 8}, {15, 8}, {15, 3}, {8, 15}, {3, 15}, {15, 3}, {15, 8},
	{8, 15}, {9, 15}, {5, 15}, {6, 15}, {7, 14}, {6, 15}, {3, 13}, {4, 7},
	{12, 11}, {3, 9}, {7, 14}, {7, 8}, {4, 15}, {4, 12}, {7, 15}, {12, 7},
	{12, 8}, {8, 15}, {10, 6}, {6, 10}, {8, 10}, {5, 14}, {9, 11}, {6, 8},
	{9, 11}, {15, 4}, {8, 15}, {10, 11}, {6, 10}, {9, 10}, {7, 9}, {13, 11},
	{13, 7}, {3, 11}, {15, 8}, {5, 15}, {15, 8}, {13, 6}, {15, 3}, {15, 9},
	{3, 11}, {15, 4}, {5, 15}, {5, 11}, {5, 15}, {9, 15}, {5, 15}, {10, 15},
	{5, 15}, {10, 15}, {13, 11}, {11, 15}, {9, 3}, {12, 10}, {4, 14}, {2, 8},
}
