package classifier

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/voc"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeLocaleFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("could not write %s: %v", name, err)
	}
}

func testClassifier(t *testing.T) *Classifier {
	t.Helper()
	dir := t.TempDir()
	writeLocaleFile(t, dir, "music.intent", "play {query} music\nplay the song {query}\n")
	writeLocaleFile(t, dir, "video.intent", "play {query} video\n")
	writeLocaleFile(t, dir, "news.intent", "play the news\n")
	writeLocaleFile(t, dir, "audio_only.voc", "audio only\nno video\n")
	writeLocaleFile(t, dir, "video_only.voc", "video only\n")

	return New(NewTemplateMatcher(), voc.Load(dir), dir, discardLogger())
}

func TestNew_SkipsMissingIntentFiles(t *testing.T) {
	c := testClassifier(t)

	// Only the three categories with files are active.
	if len(c.intents) != 3 {
		t.Errorf("active intents = %d, want 3", len(c.intents))
	}
	if _, ok := c.intents["podcast"]; ok {
		t.Error("podcast registered without a resource file")
	}
}

func TestClassify(t *testing.T) {
	c := testClassifier(t)

	tests := []struct {
		utterance string
		want      media.MediaType
	}{
		{"play thriller music", media.Music},
		{"play the song bohemian rhapsody", media.Music},
		{"play despacito video", media.Video},
		{"play the news", media.News},
		{"play something", media.Generic},
		{"tell me a joke", media.Generic},
		{"", media.Generic},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.utterance); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.utterance, got, tt.want)
		}
	}
}

func TestClassify_StripsAudioOnlyMarker(t *testing.T) {
	c := testClassifier(t)

	// "audio only" removal must not confuse template alignment.
	if got := c.Classify("play thriller music audio only"); got != media.Music {
		t.Errorf("Classify() = %v, want Music", got)
	}
	if got := c.Classify("audio only play thriller music"); got != media.Music {
		t.Errorf("Classify() = %v, want Music", got)
	}
}

func TestClassify_StripsVideoOnlyMarker(t *testing.T) {
	c := testClassifier(t)

	if got := c.Classify("play despacito video only"); got != media.Generic {
		// "video only" is removed before scoring, so the video template's
		// literal token is gone and classification degrades to Generic.
		t.Errorf("Classify() = %v, want Generic", got)
	}
	if got := c.Classify("play despacito video video only"); got != media.Video {
		t.Errorf("Classify() = %v, want Video", got)
	}
}

func TestClassify_NoResources(t *testing.T) {
	dir := t.TempDir()
	c := New(NewTemplateMatcher(), voc.Load(dir), dir, discardLogger())

	if got := c.Classify("play thriller music"); got != media.Generic {
		t.Errorf("Classify() without resources = %v, want Generic", got)
	}
}
