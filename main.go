package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/classifier"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/config"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/logging"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/mpris"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/notify"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/playback"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/provider"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/provider/library"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/provider/remote"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/router"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/search"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/voc"
)

// consoleDialog renders locale dialog templates on stdout and reads user
// replies from stdin. Spoken lines are mirrored as desktop notifications
// when a notifier is available.
type consoleDialog struct {
	localeDir string
	in        *bufio.Reader
	notifier  notify.Notifier
}

func newConsoleDialog(localeDir string, notifier notify.Notifier) *consoleDialog {
	return &consoleDialog{
		localeDir: localeDir,
		in:        bufio.NewReader(os.Stdin),
		notifier:  notifier,
	}
}

// Speak renders the named dialog template with data substituted into
// {placeholders}. An unknown key falls back to printing the key itself.
func (d *consoleDialog) Speak(key string, data map[string]string) {
	line := key
	if raw, err := os.ReadFile(filepath.Join(d.localeDir, key+".dialog")); err == nil {
		for _, candidate := range strings.Split(string(raw), "\n") {
			candidate = strings.TrimSpace(candidate)
			if candidate != "" && !strings.HasPrefix(candidate, "#") {
				line = candidate
				break
			}
		}
	}
	for k, v := range data {
		line = strings.ReplaceAll(line, "{"+k+"}", v)
	}
	fmt.Println(line)

	if d.notifier != nil {
		_, _ = d.notifier.Notify(notify.Notification{
			Title:   "OCP",
			Body:    line,
			Timeout: 5000,
			Urgency: notify.UrgencyLow,
		})
	}
}

// GetResponse speaks the prompt then reads one reply line.
func (d *consoleDialog) GetResponse(key string) string {
	d.Speak(key, nil)
	fmt.Print("> ")
	reply, err := d.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(reply)
}

// guiDetector resolves display availability: config override first, then
// environment probing.
func guiDetector(cfg *config.Config) func() bool {
	if forced, ok := cfg.GUIOverride(); ok {
		return func() bool { return forced }
	}
	return func() bool {
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
}

func buildProviders(cfg *config.Config) ([]provider.Provider, func(), error) {
	var providers []provider.Provider
	var closers []func()

	if cfg.Library.Enabled {
		lib, err := library.Open(cfg.Library.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open library: %w", err)
		}
		providers = append(providers, lib)
		closers = append(closers, func() { _ = lib.Close() })
	}

	for _, rc := range cfg.Remote {
		if rc.URL == "" {
			continue
		}
		name := rc.Name
		if name == "" {
			name = rc.URL
		}
		providers = append(providers, remote.New(name, rc.URL, rc.APIKey))
	}

	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}
	return providers, cleanup, nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(os.Stderr, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return err
	}

	localeDir := filepath.Join(cfg.GetLocaleDir(), cfg.GetLang())
	vocabulary := voc.Load(localeDir)
	c := classifier.New(classifier.NewTemplateMatcher(), vocabulary, localeDir, log)

	providers, cleanup, err := buildProviders(cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	if len(providers) == 0 {
		log.Warn("no providers configured, every request will come back empty")
	}

	settings := cfg.GetSettings()
	broadcaster := search.NewBroadcaster(settings.Timeout, log, providers...)

	engine := playback.NewMPV(log)
	defer func() { _ = engine.Stop() }()

	notifier, err := notify.New()
	if err != nil {
		log.Debug("notifications unavailable", "error", err)
	}

	dialog := newConsoleDialog(localeDir, notifier)
	r := router.New(c, broadcaster, engine, dialog, vocabulary,
		cfg.GetSettings, guiDetector(cfg), log)

	if adapter, err := mpris.New(engine); err == nil {
		defer func() { _ = adapter.Close() }()
	} else {
		log.Debug("mpris unavailable", "error", err)
	}

	return commandLoop(r, engine, notifier, log)
}

// commandLoop reads line commands from stdin until quit or EOF.
func commandLoop(r *router.Router, engine playback.Service, notifier notify.Notifier, log *slog.Logger) error {
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	var lastNotification uint32

	fmt.Println("ocp ready. commands: play <phrase>, pause, resume, next, prev, stop, quit")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		var err error
		switch strings.ToLower(cmd) {
		case "play":
			err = r.HandlePlay(ctx, router.Command{Utterance: rest})
		case "pause":
			err = r.HandlePause()
		case "resume":
			err = r.HandleResume(ctx)
		case "next":
			err = r.HandleNext()
		case "prev", "previous":
			err = r.HandlePrev()
		case "stop":
			r.HandleStop()
		case "quit", "exit":
			r.HandleStop()
			return nil
		default:
			// anything else is treated as a play request phrase
			err = r.HandlePlay(ctx, router.Command{Utterance: line})
		}

		if err != nil {
			if errors.Is(err, router.ErrNotPlaying) {
				fmt.Println("nothing is playing")
			} else {
				log.Error("command failed", "command", cmd, "error", err)
			}
			continue
		}

		if notifier != nil && engine.State() == media.PlayerPlaying {
			if current := engine.Current(); current != nil {
				if id, nerr := notifier.Notify(notify.NowPlaying(*current, lastNotification)); nerr == nil {
					lastNotification = id
				}
			}
		}
	}

	return scanner.Err()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
