package media

import (
	"encoding/json"
	"fmt"
)

// PlaybackMode says whether a result is rendered as audio only or with video.
type PlaybackMode int

const (
	PlaybackUndefined PlaybackMode = iota
	PlaybackAudio
	PlaybackVideo
)

// String returns the playback mode name.
func (m PlaybackMode) String() string {
	switch m {
	case PlaybackAudio:
		return "audio"
	case PlaybackVideo:
		return "video"
	default:
		return "undefined"
	}
}

// ParsePlaybackMode resolves a wire name back to a PlaybackMode.
func ParsePlaybackMode(name string) PlaybackMode {
	switch name {
	case "audio":
		return PlaybackAudio
	case "video":
		return PlaybackVideo
	default:
		return PlaybackUndefined
	}
}

// MarshalJSON encodes the playback mode as its wire name.
func (m PlaybackMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a playback mode from its wire name.
func (m *PlaybackMode) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("playback mode: %w", err)
	}
	*m = ParsePlaybackMode(name)
	return nil
}

// PlayerState represents the playback engine state. It is owned by the
// engine; this core only reads it.
type PlayerState int

const (
	PlayerStopped PlayerState = iota
	PlayerPlaying
	PlayerPaused
)

// String returns the state name.
func (s PlayerState) String() string {
	switch s {
	case PlayerStopped:
		return "Stopped"
	case PlayerPlaying:
		return "Playing"
	case PlayerPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (playing or paused).
func (s PlayerState) IsActive() bool {
	return s == PlayerPlaying || s == PlayerPaused
}
