package media

import (
	"encoding/json"
	"testing"
)

func TestMediaType_String(t *testing.T) {
	tests := []struct {
		mediaType MediaType
		want      string
	}{
		{Generic, "generic"},
		{Music, "music"},
		{Video, "video"},
		{BlackWhiteMovie, "bw_movie"},
		{BehindTheScenes, "behind_the_scenes"},
		{MediaType(999), "generic"},
	}
	for _, tt := range tests {
		if got := tt.mediaType.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.mediaType, got, tt.want)
		}
	}
}

func TestParseMediaType(t *testing.T) {
	// Every named type must round-trip through its wire name.
	for mediaType, name := range mediaTypeNames {
		if got := ParseMediaType(name); got != mediaType {
			t.Errorf("ParseMediaType(%q) = %v, want %v", name, got, mediaType)
		}
	}

	if got := ParseMediaType("not a media type"); got != Generic {
		t.Errorf("ParseMediaType(unknown) = %v, want Generic", got)
	}
}

func TestResult_JSON(t *testing.T) {
	raw := `{"skill_id":"skill-news","match_confidence":0.8,"media_type":"news","playback":"audio","uri":"https://example.org/stream"}`

	var r Result
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if r.ProviderID != "skill-news" {
		t.Errorf("ProviderID = %q, want %q", r.ProviderID, "skill-news")
	}
	if r.MatchConfidence != 0.8 {
		t.Errorf("MatchConfidence = %v, want 0.8", r.MatchConfidence)
	}
	if r.MediaType != News {
		t.Errorf("MediaType = %v, want News", r.MediaType)
	}
	if r.Playback != PlaybackAudio {
		t.Errorf("Playback = %v, want PlaybackAudio", r.Playback)
	}
}
