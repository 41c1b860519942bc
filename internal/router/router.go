// Package router maps recognized playback intents to engine operations,
// running the classify/broadcast/filter/select pipeline for play requests.
package router

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/classifier"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/config"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/playback"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/search"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/voc"
)

// Dialog is the spoken-dialog/prompting collaborator. Speak reports a
// keyed message to the user; GetResponse asks a clarifying question and
// returns the reply (empty when the user gave none).
type Dialog interface {
	Speak(key string, data map[string]string)
	GetResponse(key string) string
}

// Command is one recognized inbound intent payload.
type Command struct {
	Utterance string
	Query     string // pre-parsed query, overrides Utterance as search phrase
	Number    string // pre-parsed number, appended to the phrase
}

// ErrNotPlaying is returned when a transport command requires active
// playback.
var ErrNotPlaying = errors.New("no active playback")

// Router routes intents to the playback engine and owns the resolution
// flow for play requests.
type Router struct {
	classifier  *classifier.Classifier
	broadcaster *search.Broadcaster
	engine      playback.Service
	dialog      Dialog
	voc         *voc.Vocabulary

	// settings yields an immutable per-request snapshot; gui reports
	// display availability at request time.
	settings func() config.Settings
	gui      func() bool

	log *slog.Logger
}

// New wires a router over its collaborators.
func New(
	c *classifier.Classifier,
	b *search.Broadcaster,
	engine playback.Service,
	dialog Dialog,
	vocabulary *voc.Vocabulary,
	settings func() config.Settings,
	gui func() bool,
	log *slog.Logger,
) *Router {
	return &Router{
		classifier:  c,
		broadcaster: b,
		engine:      engine,
		dialog:      dialog,
		voc:         vocabulary,
		settings:    settings,
		gui:         gui,
		log:         log,
	}
}

// HandleNext skips to the next candidate. Valid only while playing.
func (r *Router) HandleNext() error {
	if r.engine.State() != media.PlayerPlaying {
		return ErrNotPlaying
	}
	return r.engine.Next()
}

// HandlePrev returns to the previous candidate. Valid only while playing.
func (r *Router) HandlePrev() error {
	if r.engine.State() != media.PlayerPlaying {
		return ErrNotPlaying
	}
	return r.engine.Previous()
}

// HandlePause pauses playback. Valid only while playing.
func (r *Router) HandlePause() error {
	if r.engine.State() != media.PlayerPlaying {
		return ErrNotPlaying
	}
	return r.engine.Pause()
}

// HandleResume resumes paused playback. When nothing is paused it is
// treated as a fresh play request: the user is prompted for a query.
func (r *Router) HandleResume(ctx context.Context) error {
	if r.engine.State() == media.PlayerPaused {
		return r.engine.Resume()
	}

	query := r.dialog.GetResponse("play.what")
	if query == "" {
		return nil
	}
	return r.HandlePlay(ctx, Command{Utterance: query})
}

// HandleStop stops playback unconditionally. Failures are swallowed;
// stopping must never surface an error to the user.
func (r *Router) HandleStop() {
	if err := r.engine.Stop(); err != nil {
		r.log.Debug("stop failed", "error", err)
	}
}

// HandlePlay resolves a play request end to end: resume short-circuit,
// query prompting, classification, provider broadcast, filtering and
// selection, then hand-off to the playback engine.
func (r *Router) HandlePlay(ctx context.Context, cmd Command) error {
	settings := r.settings()

	utterance := cmd.Utterance
	phrase := cmd.Query
	if phrase == "" {
		phrase = utterance
	}
	if cmd.Number != "" {
		phrase += " " + cmd.Number
	}

	// While paused, an empty phrase or a bare resume/play marker means
	// "continue playback", not a new search.
	if r.shouldResume(phrase) {
		return r.engine.Resume()
	}

	if phrase == "" {
		phrase = r.dialog.GetResponse("play.what")
		if phrase == "" {
			r.HandleStop()
			return nil
		}
		utterance = phrase
	}

	r.engine.Reset()
	r.dialog.Speak("just.one.moment", nil)

	mediaType := r.classifier.Classify(utterance)
	results := r.searchResults(ctx, phrase, utterance, mediaType, settings)

	if len(results) == 0 {
		r.dialog.Speak("cant.play", map[string]string{
			"phrase":     phrase,
			"media_type": mediaType.String(),
		})
		return nil
	}

	best := search.Select(results, settings.PreferVideo)
	r.log.Debug("selected result", "provider", best.ProviderID, "confidence", best.MatchConfidence)

	return r.engine.Play(*best, results)
}

// searchResults broadcasts the query and filters the collected candidates
// under the request's capability constraints.
func (r *Router) searchResults(ctx context.Context, phrase, utterance string, mediaType media.MediaType, settings config.Settings) []media.Result {
	audioOnly := false
	videoOnly := false

	// capability markers are stripped from the search phrase itself
	if r.voc.Match(phrase, "audio_only") {
		audioOnly = true
		phrase = r.voc.Remove(phrase, "audio_only")
	} else if r.voc.Match(phrase, "video_only") {
		videoOnly = true
		phrase = r.voc.Remove(phrase, "video_only")
	}

	if strings.TrimSpace(phrase) == "" {
		phrase = utterance
	}

	collected := r.broadcaster.Broadcast(ctx, phrase, mediaType)

	if audioOnly {
		r.log.Info("audio only requested, forcing audio playback unconditionally")
	} else if videoOnly {
		r.log.Info("video only requested, filtering non-video results")
	}

	guiAvailable := r.gui()
	if !audioOnly && !videoOnly && !guiAvailable {
		r.log.Info("unable to use GUI, filtering non-audio results")
	}

	return search.Filter(collected, search.FilterOptions{
		MinScore:     settings.MinScore,
		AudioOnly:    audioOnly,
		VideoOnly:    videoOnly,
		GUIAvailable: guiAvailable,
	})
}

// shouldResume reports whether a play phrase should continue paused
// playback instead of starting a new search.
func (r *Router) shouldResume(phrase string) bool {
	if r.engine.State() != media.PlayerPaused {
		return false
	}
	if strings.TrimSpace(phrase) == "" {
		return true
	}
	return r.voc.MatchExact(phrase, "resume") || r.voc.MatchExact(phrase, "play")
}
