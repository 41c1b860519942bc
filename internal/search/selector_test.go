package search

import (
	"testing"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
)

func TestSelect_EmptyList(t *testing.T) {
	if got := Select(nil, false); got != nil {
		t.Errorf("Select(nil) = %+v, want nil", got)
	}
}

func TestSelect_SingleMaximum(t *testing.T) {
	results := []media.Result{
		{ProviderID: "a", MatchConfidence: 0.5},
		{ProviderID: "b", MatchConfidence: 0.9},
		{ProviderID: "c", MatchConfidence: 0.7},
	}

	// A unique maximum is deterministic; repeat to make sure no randomness
	// sneaks in.
	for i := 0; i < 50; i++ {
		got := Select(results, false)
		if got == nil || got.ProviderID != "b" {
			t.Fatalf("Select() = %+v, want provider b", got)
		}
	}
}

func TestSelect_TiesAreFair(t *testing.T) {
	results := []media.Result{
		{ProviderID: "a", MatchConfidence: 0.9},
		{ProviderID: "b", MatchConfidence: 0.9},
		{ProviderID: "c", MatchConfidence: 0.9},
		{ProviderID: "low", MatchConfidence: 0.5},
	}

	counts := map[string]int{}
	for i := 0; i < 600; i++ {
		got := Select(results, false)
		if got == nil {
			t.Fatal("Select() = nil, want a result")
		}
		counts[got.ProviderID]++
	}

	if counts["low"] != 0 {
		t.Errorf("Select() returned a non-maximal result %d times", counts["low"])
	}
	for _, id := range []string{"a", "b", "c"} {
		if counts[id] == 0 {
			t.Errorf("provider %s never selected across 600 trials", id)
		}
	}
}

func TestSelect_PreferVideoRestrictsTieSet(t *testing.T) {
	results := []media.Result{
		{ProviderID: "audio", MatchConfidence: 0.9, Playback: media.PlaybackAudio},
		{ProviderID: "video", MatchConfidence: 0.9, Playback: media.PlaybackVideo},
		{ProviderID: "low", MatchConfidence: 0.5, Playback: media.PlaybackAudio},
	}

	for i := 0; i < 100; i++ {
		got := Select(results, true)
		if got == nil || got.ProviderID != "video" {
			t.Fatalf("Select(preferVideo) = %+v, want the video result", got)
		}
	}
}

func TestSelect_PreferVideoWithoutVideoTies(t *testing.T) {
	results := []media.Result{
		{ProviderID: "a", MatchConfidence: 0.9, Playback: media.PlaybackAudio},
		{ProviderID: "b", MatchConfidence: 0.9, Playback: media.PlaybackAudio},
		// video exists but below the maximum: preference must not rescue it
		{ProviderID: "v", MatchConfidence: 0.8, Playback: media.PlaybackVideo},
	}

	for i := 0; i < 100; i++ {
		got := Select(results, true)
		if got == nil {
			t.Fatal("Select() = nil, want a result")
		}
		if got.ProviderID == "v" {
			t.Fatal("Select() returned a non-maximal video result")
		}
	}
}

func TestSelect_ExactTieEquality(t *testing.T) {
	// Near-equal confidences are not ties.
	results := []media.Result{
		{ProviderID: "a", MatchConfidence: 0.9},
		{ProviderID: "b", MatchConfidence: 0.9000001},
	}

	for i := 0; i < 50; i++ {
		got := Select(results, false)
		if got == nil || got.ProviderID != "b" {
			t.Fatalf("Select() = %+v, want provider b", got)
		}
	}
}
