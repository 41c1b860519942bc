//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/playback"
)

// Adapter exposes the playback engine as an MPRIS player over D-Bus so
// desktop media keys and widgets can control resolved streams.
type Adapter struct {
	engine playback.Service
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(engine playback.Service) (*Adapter, error) {
	a := &Adapter{engine: engine}

	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{engine: engine}

	a.server = server.NewServer("ocp", rootAdapter, playerAdapter)

	// Serve in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil // Track list interface not implemented
}

func (r *rootAdapter) Identity() (string, error) {
	return "OCP", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg", "video/mp4"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	engine playback.Service
}

func (p *playerAdapter) Next() error {
	return p.engine.Next()
}

func (p *playerAdapter) Previous() error {
	return p.engine.Previous()
}

func (p *playerAdapter) Pause() error {
	return p.engine.Pause()
}

func (p *playerAdapter) PlayPause() error {
	switch p.engine.State() {
	case media.PlayerPlaying:
		return p.engine.Pause()
	case media.PlayerPaused:
		return p.engine.Resume()
	}
	return nil
}

func (p *playerAdapter) Stop() error {
	return p.engine.Stop()
}

func (p *playerAdapter) Play() error {
	if p.engine.State() == media.PlayerPaused {
		return p.engine.Resume()
	}
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported, streams come from voice requests
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.engine.State() {
	case media.PlayerPlaying:
		return types.PlaybackStatusPlaying, nil
	case media.PlayerPaused:
		return types.PlaybackStatusPaused, nil
	case media.PlayerStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	current := p.engine.Current()
	if current == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(current.URI)),
		Title:   current.Title,
		Artist:  []string{current.ProviderID},
		Genre:   []string{current.MediaType.String()},
		Url:     current.URI,
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil // Volume control not exposed via engine
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil // Position tracking not exposed via engine
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.engine.State().IsActive(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.engine.State().IsActive(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.engine.Current() != nil, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(uri string) string {
	h := fnv.New64a()
	h.Write([]byte(uri))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
