// Package classifier maps free-text playback requests to a media type
// category by scoring them against per-locale sample templates.
package classifier

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/voc"
)

// intentMedia maps intent resource names to media type categories.
var intentMedia = map[string]media.MediaType{
	"music":         media.Music,
	"video":         media.Video,
	"audiobook":     media.Audiobook,
	"radio":         media.Radio,
	"radio_drama":   media.RadioTheatre,
	"game":          media.Game,
	"tv":            media.TV,
	"podcast":       media.Podcast,
	"news":          media.News,
	"movie":         media.Movie,
	"short_movie":   media.ShortFilm,
	"silent_movie":  media.SilentMovie,
	"bw_movie":      media.BlackWhiteMovie,
	"documentaries": media.Documentary,
	"comic":         media.VisualStory,
	"movietrailer":  media.Trailer,
	"behind_scenes": media.BehindTheScenes,
	"porn":          media.Adult,
}

// Classifier scores utterances against the locale's intent templates.
type Classifier struct {
	matcher Matcher
	voc     *voc.Vocabulary
	intents map[string][]string
	log     *slog.Logger
}

// New loads the per-category intent templates from localeDir and returns a
// ready classifier. A category without a template file is simply omitted
// from the active set.
func New(matcher Matcher, vocabulary *voc.Vocabulary, localeDir string, log *slog.Logger) *Classifier {
	c := &Classifier{
		matcher: matcher,
		voc:     vocabulary,
		intents: make(map[string][]string),
		log:     log,
	}

	for name := range intentMedia {
		path := filepath.Join(localeDir, name+".intent")
		samples := readTemplates(path)
		if len(samples) == 0 {
			continue
		}
		c.log.Debug("registering media type intent", "intent", name, "samples", len(samples))
		c.intents[name] = samples
	}

	return c
}

// readTemplates reads one template per line, skipping blanks and # comments.
// Double braces are collapsed to single ones for template slot syntax.
func readTemplates(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var samples []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.ReplaceAll(line, "{{", "{")
		line = strings.ReplaceAll(line, "}}", "}")
		samples = append(samples, line)
	}
	return samples
}

// Classify determines the media type category of an utterance. Unmatched
// input degrades to Generic; it never fails.
//
// Audio-only markers are stripped and the remainder trimmed before scoring.
// Video-only markers are stripped without trimming, preserving the exact
// behavior of the reference implementation.
func (c *Classifier) Classify(utterance string) media.MediaType {
	if c.voc.Match(utterance, "audio_only") {
		utterance = strings.TrimSpace(c.voc.Remove(utterance, "audio_only"))
	} else if c.voc.Match(utterance, "video_only") {
		utterance = c.voc.Remove(utterance, "video_only")
	}

	label, confidence, ok := c.matcher.Match(utterance, c.intents)
	c.log.Info("media type prediction", "utterance", utterance, "label", label, "confidence", confidence, "matched", ok)

	if ok {
		if mediaType, known := intentMedia[label]; known {
			return mediaType
		}
	}

	c.log.Debug("generic media query", "utterance", utterance)
	return media.Generic
}
