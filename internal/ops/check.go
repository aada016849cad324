package ops

import (
	"github.com/jacksmith/imgdup/internal/cli"
	"github.com/jacksmith/imgdup/internal/encode"
	"github.com/jacksmith/imgdup/internal/match"
)

// CheckResult describes the outcome of checking one image.
type CheckResult struct {
	Path    string
	Found   bool
	Partial bool // true when only a chunk matched, not the full encoding
}

// CheckOptions controls a check batch.
type CheckOptions struct {
	// Partial enables chunk-based matching in addition to exact matching.
	Partial bool
	// ChunkLength is the chunk size for partial matching. Must be positive
	// when Partial is set.
	ChunkLength int
	// Progress, if set, is called after each processed image.
	Progress func()
}

// CheckImages tests each image against the store. An image is found when
// its full encoding occurs in the store text, or, with partial matching
// enabled, when any chunk of it does. The store is loaded once and never
// mutated.
func CheckImages(s Store, log Logger, images []encode.Image, opts CheckOptions) ([]CheckResult, Stats, error) {
	if opts.Partial && opts.ChunkLength <= 0 {
		return nil, Stats{}, &cli.ValidationError{Field: "chunk-length", Message: "must be positive"}
	}

	storeText, err := s.LoadStore()
	if err != nil {
		log.Errorf(err, "failed to load store")
		return nil, Stats{}, err
	}

	results := make([]CheckResult, 0, len(images))
	stats := Stats{Total: len(images)}

	for _, img := range images {
		r := CheckResult{Path: img.Path}
		if match.ExistsExact(img.Base64, storeText) {
			r.Found = true
		} else if opts.Partial && match.ExistsPartial(encode.Chunks(img.Base64, opts.ChunkLength), storeText) {
			r.Found = true
			r.Partial = true
		}

		if r.Found {
			log.Infof("found: %s", img.Path)
			stats.Matched++
		} else {
			log.Infof("not found: %s", img.Path)
		}
		results = append(results, r)

		if opts.Progress != nil {
			opts.Progress()
		}
	}

	return results, stats, nil
}
