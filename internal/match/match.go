// Package match implements the duplicate tests against the raw store text.
//
// The store text is treated as a single opaque blob, not parsed into lines.
// A needle matches wherever it appears, which means a match can in principle
// span the boundary between two stored entries. That is accepted behavior of
// the flat-file design.
package match

import (
	"iter"
	"strings"
)

// ExistsExact reports whether encoded occurs verbatim as a contiguous
// substring of storeText. Containment is a plain literal search, so base64
// characters like '+' and '/' carry no special meaning.
func ExistsExact(encoded, storeText string) bool {
	return strings.Contains(storeText, encoded)
}

// ExistsPartial reports whether at least one chunk occurs in storeText.
// Chunks are tested in sequence order and the scan stops at the first hit.
func ExistsPartial(chunks iter.Seq[string], storeText string) bool {
	for chunk := range chunks {
		if strings.Contains(storeText, chunk) {
			return true
		}
	}
	return false
}
