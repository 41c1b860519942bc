// Package playback defines the contract of the external playback engine
// and ships an mpv-backed implementation plus a test double.
package playback

import "github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"

// Service defines the playback engine contract. The resolution core only
// drives the engine and reads its state; it never manages device state
// itself.
type Service interface {
	// Play starts the selected result. candidates carries the full
	// filtered list so the engine can fall back to another provider's
	// result when the winner fails to stream.
	Play(selected media.Result, candidates []media.Result) error
	Stop() error
	Pause() error
	Resume() error
	Next() error
	Previous() error

	// State queries
	State() media.PlayerState
	Current() *media.Result

	// Reset clears any prior playback context before a new search.
	Reset()
}
