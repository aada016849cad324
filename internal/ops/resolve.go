package ops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacksmith/imgdup/internal/cli"
	"github.com/jacksmith/imgdup/internal/encode"
)

// ResolveImages expands target into encoded images. A file target is
// encoded as-is regardless of extension; a directory target includes the
// entries whose suffix is in exts (case-insensitive, not recursive).
// A directory with no accepted files is a validation error.
func ResolveImages(target string, exts []string) ([]encode.Image, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", target, err)
	}

	if !info.IsDir() {
		img, err := encode.ReadFile(target)
		if err != nil {
			return nil, err
		}
		return []encode.Image{img}, nil
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", target, err)
	}

	var images []encode.Image
	for _, entry := range entries {
		if entry.IsDir() || !hasAcceptedExtension(entry.Name(), exts) {
			continue
		}
		img, err := encode.ReadFile(filepath.Join(target, entry.Name()))
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	if len(images) == 0 {
		return nil, &cli.ValidationError{
			Message: fmt.Sprintf("no files matching %s in %s", strings.Join(exts, "|"), target),
		}
	}

	return images, nil
}

// hasAcceptedExtension reports whether name ends in one of the accepted
// suffixes. Extensions are compared without a leading dot.
func hasAcceptedExtension(name string, exts []string) bool {
	suffix := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if suffix == "" {
		return false
	}
	for _, ext := range exts {
		if suffix == strings.ToLower(strings.TrimPrefix(ext, ".")) {
			return true
		}
	}
	return false
}
