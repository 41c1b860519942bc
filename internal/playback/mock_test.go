package playback

import (
	"testing"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
)

func TestMock_PlayTransitions(t *testing.T) {
	m := NewMock()

	if m.State() != media.PlayerStopped {
		t.Fatalf("initial state = %v, want Stopped", m.State())
	}

	selected := media.Result{ProviderID: "a", URI: "file:///x.mp3"}
	if err := m.Play(selected, []media.Result{selected}); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if m.State() != media.PlayerPlaying {
		t.Errorf("state after Play = %v, want Playing", m.State())
	}
	if m.Current() == nil || m.Current().ProviderID != "a" {
		t.Errorf("Current() = %+v, want provider a", m.Current())
	}
}

func TestMock_PauseResume(t *testing.T) {
	m := NewMock()
	_ = m.Play(media.Result{URI: "u"}, nil)

	_ = m.Pause()
	if m.State() != media.PlayerPaused {
		t.Errorf("state after Pause = %v, want Paused", m.State())
	}

	_ = m.Resume()
	if m.State() != media.PlayerPlaying {
		t.Errorf("state after Resume = %v, want Playing", m.State())
	}
}

func TestMock_PauseWhenStoppedIsNoop(t *testing.T) {
	m := NewMock()
	_ = m.Pause()
	if m.State() != media.PlayerStopped {
		t.Errorf("state = %v, want Stopped", m.State())
	}
}

func TestMock_StopClearsCurrent(t *testing.T) {
	m := NewMock()
	_ = m.Play(media.Result{URI: "u"}, nil)
	_ = m.Stop()

	if m.State() != media.PlayerStopped {
		t.Errorf("state = %v, want Stopped", m.State())
	}
	if m.Current() != nil {
		t.Errorf("Current() = %+v, want nil", m.Current())
	}
}
