package texdecode

import "github.com/DataDog/zstd"

// zstdDecompress inflates a single KTX2 supercompressed level payload.
// Grounded on heisthecat31-evrFileTools/pkg/archive/reader.go's use of the
// same library for its archive format's compressed blocks; that package
// wraps a streaming zstd.NewReader, but a KTX2 level is a single bounded
// blob with a known output size, so the one-shot Decompress fits better.
func zstdDecompress(src []byte, uncompressedSize int) ([]byte, error) {
	dst := make([]byte, 0, uncompressedSize)
	out, err := zstd.Decompress(dst, src)
	if err != nil {
		return nil, newError(KindMalformedContainer, "zstd: "+err.Error())
	}
	return out, nil
}
