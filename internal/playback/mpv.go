package playback

import (
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"syscall"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
)

// MPV drives playback by spawning mpv per stream. Audio results run with
// video disabled; video results get a window.
type MPV struct {
	mu sync.Mutex

	cmd        *exec.Cmd
	state      media.PlayerState
	current    *media.Result
	candidates []media.Result
	index      int

	log *slog.Logger
}

// NewMPV creates an mpv-backed playback engine.
func NewMPV(log *slog.Logger) *MPV {
	return &MPV{
		state: media.PlayerStopped,
		log:   log,
	}
}

// Verify MPV implements Service at compile time.
var _ Service = (*MPV)(nil)

// Play starts the selected result and remembers the candidate list for
// Next/Previous navigation.
func (m *MPV) Play(selected media.Result, candidates []media.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked()

	if err := m.startLocked(selected); err != nil {
		return err
	}

	m.candidates = candidates
	m.index = 0
	for i, c := range candidates {
		if c.URI == selected.URI {
			m.index = i
			break
		}
	}
	return nil
}

// startLocked spawns mpv for one result. Callers hold m.mu.
func (m *MPV) startLocked(r media.Result) error {
	args := []string{
		"--no-terminal",
		"--really-quiet",
	}
	if r.Playback != media.PlaybackVideo {
		args = append(args, "--no-video")
	}
	args = append(args, r.URI)

	cmd := exec.Command("mpv", args...)
	// own process group so stop can kill mpv and any children it spawns
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	m.cmd = cmd
	m.state = media.PlayerPlaying
	result := r
	m.current = &result
	m.log.Info("playback started", "provider", r.ProviderID, "uri", r.URI, "playback", r.Playback.String())

	go func() {
		_ = cmd.Wait()
		m.mu.Lock()
		defer m.mu.Unlock()
		// only clear state if another Play has not replaced the process
		if m.cmd == cmd {
			m.state = media.PlayerStopped
			m.current = nil
			m.cmd = nil
		}
	}()

	return nil
}

// Stop terminates the mpv process group. Best effort; stopping never
// surfaces a user-visible failure.
func (m *MPV) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
	return nil
}

func (m *MPV) stopLocked() {
	if m.cmd == nil || m.cmd.Process == nil {
		m.state = media.PlayerStopped
		return
	}
	if pgid, err := syscall.Getpgid(m.cmd.Process.Pid); err == nil {
		_ = syscall.Kill(-pgid, syscall.SIGTERM)
	}
	_ = m.cmd.Process.Kill()
	m.cmd = nil
	m.current = nil
	m.state = media.PlayerStopped
}

// Pause suspends the mpv process.
func (m *MPV) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != media.PlayerPlaying || m.cmd == nil || m.cmd.Process == nil {
		return fmt.Errorf("pause: not playing")
	}
	if err := m.signalLocked(syscall.SIGSTOP); err != nil {
		return err
	}
	m.state = media.PlayerPaused
	return nil
}

// Resume continues a paused mpv process.
func (m *MPV) Resume() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != media.PlayerPaused || m.cmd == nil || m.cmd.Process == nil {
		return fmt.Errorf("resume: not paused")
	}
	if err := m.signalLocked(syscall.SIGCONT); err != nil {
		return err
	}
	m.state = media.PlayerPlaying
	return nil
}

func (m *MPV) signalLocked(sig syscall.Signal) error {
	pgid, err := syscall.Getpgid(m.cmd.Process.Pid)
	if err != nil {
		return err
	}
	return syscall.Kill(-pgid, sig)
}

// Next plays the following candidate from the last search.
func (m *MPV) Next() error {
	return m.jump(1)
}

// Previous plays the preceding candidate from the last search.
func (m *MPV) Previous() error {
	return m.jump(-1)
}

func (m *MPV) jump(delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	target := m.index + delta
	if target < 0 || target >= len(m.candidates) {
		return fmt.Errorf("no candidate at position %d", target)
	}

	m.stopLocked()
	if err := m.startLocked(m.candidates[target]); err != nil {
		return err
	}
	m.index = target
	return nil
}

// State returns the current engine state.
func (m *MPV) State() media.PlayerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Current returns the currently loaded result, or nil.
func (m *MPV) Current() *media.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Reset clears the playback context from the previous search.
func (m *MPV) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidates = nil
	m.index = 0
}
