package pedigree

import "strings"

// Compression indicates how (and whether) a pedigree dataset file is compressed
type Compression uint32

const (
	CompressionDisabled Compression = iota
	CompressionGZIP
	CompressionZStandard
)

// DetectCompression infers the dataset's compression from its file
// extension.
func DetectCompression(path string) Compression {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return CompressionGZIP
	case strings.HasSuffix(path, ".zst"):
		return CompressionZStandard
	}

	return CompressionDisabled
}
