package search

import (
	"math/rand/v2"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
)

// Select picks the winning result: the highest match confidence, with a
// uniformly random choice among exact-confidence ties. Randomness between
// equally-good providers is deliberate fairness, not instability. When
// preferVideo is set and the tie set contains video results, the random
// choice is restricted to that subset.
//
// Returns nil for an empty input list.
func Select(results []media.Result, preferVideo bool) *media.Result {
	if len(results) == 0 {
		return nil
	}

	// Single pass: running maximum plus the set tied at it. Ties use exact
	// floating equality; providers are assumed to emit identical values for
	// genuine ties.
	best := results[0].MatchConfidence
	ties := []media.Result{results[0]}
	for _, r := range results[1:] {
		switch {
		case r.MatchConfidence > best:
			best = r.MatchConfidence
			ties = []media.Result{r}
		case r.MatchConfidence == best:
			ties = append(ties, r)
		}
	}

	if len(ties) == 1 {
		selected := ties[0]
		return &selected
	}

	pool := ties
	if preferVideo {
		var videoTies []media.Result
		for _, r := range ties {
			if r.Playback == media.PlaybackVideo {
				videoTies = append(videoTies, r)
			}
		}
		if len(videoTies) > 0 {
			pool = videoTies
		}
	}

	selected := pool[rand.IntN(len(pool))] //nolint:gosec // crypto not needed for tie-breaking
	return &selected
}
