package search

import "github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"

// FilterOptions controls the result filter pipeline. AudioOnly and
// VideoOnly are mutually exclusive; GUIAvailable only matters when neither
// is requested.
type FilterOptions struct {
	MinScore     float64
	AudioOnly    bool
	VideoOnly    bool
	GUIAvailable bool
}

// Filter applies the fixed filter pipeline to the collected results:
//
//  1. drop results below the confidence floor
//  2. audio-only: force audio playback on every survivor (no dropping)
//  3. video-only: force video playback on video media, then drop everything
//     that is not video playback
//  4. otherwise, without a display, drop everything that is not audio
//
// The input slice is never mutated; filtering an already-filtered list is a
// no-op. An empty return value means "no eligible results", not an error.
func Filter(results []media.Result, opts FilterOptions) []media.Result {
	filtered := make([]media.Result, 0, len(results))
	for _, r := range results {
		if r.MatchConfidence < opts.MinScore {
			continue
		}
		filtered = append(filtered, r)
	}

	switch {
	case opts.AudioOnly:
		for i := range filtered {
			filtered[i].Playback = media.PlaybackAudio
		}

	case opts.VideoOnly:
		for i := range filtered {
			if filtered[i].MediaType == media.Video {
				filtered[i].Playback = media.PlaybackVideo
			}
		}
		kept := filtered[:0]
		for _, r := range filtered {
			if r.Playback == media.PlaybackVideo {
				kept = append(kept, r)
			}
		}
		filtered = kept

	case !opts.GUIAvailable:
		kept := filtered[:0]
		for _, r := range filtered {
			if r.Playback == media.PlaybackAudio {
				kept = append(kept, r)
			}
		}
		filtered = kept
	}

	return filtered
}
