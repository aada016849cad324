package ops

import (
	"github.com/jacksmith/imgdup/internal/encode"
	"github.com/jacksmith/imgdup/internal/match"
)

// FlagResult describes the outcome of flagging one image.
type FlagResult struct {
	Path   string
	Stored bool // false when the encoding was already present
}

// FlagOptions controls a flag batch.
type FlagOptions struct {
	// Progress, if set, is called after each processed image.
	Progress func()
}

// FlagImages records each image's encoding in the store unless an exact
// duplicate is already present. The store text is loaded once up front;
// each successful append is mirrored into the in-memory snapshot so
// identical images within one batch are caught too. A failed append aborts
// the batch immediately, returning the results accumulated so far.
func FlagImages(s Store, log Logger, images []encode.Image, opts FlagOptions) ([]FlagResult, Stats, error) {
	storeText, err := s.LoadStore()
	if err != nil {
		log.Errorf(err, "failed to load store")
		return nil, Stats{}, err
	}

	results := make([]FlagResult, 0, len(images))
	stats := Stats{Total: len(images)}

	for _, img := range images {
		if match.ExistsExact(img.Base64, storeText) {
			log.Infof("already exists: %s", img.Path)
			results = append(results, FlagResult{Path: img.Path})
		} else {
			if err := s.AppendEntry(img.Base64); err != nil {
				log.Errorf(err, "failed to store %s", img.Path)
				return results, stats, err
			}
			storeText += img.Base64 + "\n"
			log.Infof("stored: %s", img.Path)
			results = append(results, FlagResult{Path: img.Path, Stored: true})
			stats.Matched++
		}
		if opts.Progress != nil {
			opts.Progress()
		}
	}

	return results, stats, nil
}
