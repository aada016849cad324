// Package encode turns image files into the base64 strings the store compares.
package encode

import (
	"encoding/base64"
	"fmt"
	"iter"
	"os"
)

// Image is the encoded form of one input file. It is created once per file
// and never modified afterwards.
type Image struct {
	Path   string
	Base64 string
}

// ReadFile reads the file at path and returns its standard base64 encoding
// with no line wrapping. The same bytes always produce the same string.
func ReadFile(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Image{Path: path, Base64: base64.StdEncoding.EncodeToString(data)}, nil
}

// Chunks yields s left to right as substrings of length n; the final chunk
// holds whatever remains and may be shorter. An empty s yields nothing.
// The sequence is restartable and supports early exit.
//
// n must be positive; chunk length is validated when configuration is loaded.
func Chunks(s string, n int) iter.Seq[string] {
	if n <= 0 {
		panic("encode: chunk length must be positive")
	}
	return func(yield func(string) bool) {
		for i := 0; i < len(s); i += n {
			end := i + n
			if end > len(s) {
				end = len(s)
			}
			if !yield(s[i:end]) {
				return
			}
		}
	}
}
