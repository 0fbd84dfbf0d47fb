package filestore

import "bytes"

// binarySample is how much of a file IsBinary inspects.
const binarySample = 8192

// IsBinary reports whether content looks like binary data: it contains a
// NUL byte, or more than 10% of the sampled bytes are control characters
// other than tab, line feed and carriage return.
func IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}

	sample := content[:min(len(content), binarySample)]
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	nonText := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			nonText++
		}
	}
	return nonText*10 > len(sample)
}
