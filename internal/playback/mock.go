package playback

import "github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"

// Mock is a test double for the playback engine.
type Mock struct {
	state      media.PlayerState
	current    *media.Result
	candidates []media.Result

	playCalls   []media.Result
	stopCalls   int
	pauseCalls  int
	resumeCalls int
	nextCalls   int
	prevCalls   int
	resetCalls  int

	playErr error
	stopErr error
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{state: media.PlayerStopped}
}

func (m *Mock) Play(selected media.Result, candidates []media.Result) error {
	m.playCalls = append(m.playCalls, selected)
	if m.playErr != nil {
		return m.playErr
	}
	m.state = media.PlayerPlaying
	m.current = &selected
	m.candidates = candidates
	return nil
}

func (m *Mock) Stop() error {
	m.stopCalls++
	if m.stopErr != nil {
		return m.stopErr
	}
	m.state = media.PlayerStopped
	m.current = nil
	return nil
}

func (m *Mock) Pause() error {
	m.pauseCalls++
	if m.state == media.PlayerPlaying {
		m.state = media.PlayerPaused
	}
	return nil
}

func (m *Mock) Resume() error {
	m.resumeCalls++
	if m.state == media.PlayerPaused {
		m.state = media.PlayerPlaying
	}
	return nil
}

func (m *Mock) Next() error {
	m.nextCalls++
	return nil
}

func (m *Mock) Previous() error {
	m.prevCalls++
	return nil
}

func (m *Mock) State() media.PlayerState { return m.state }

func (m *Mock) Current() *media.Result { return m.current }

func (m *Mock) Reset() {
	m.resetCalls++
	m.current = nil
	m.candidates = nil
}

// Test helpers

func (m *Mock) SetState(s media.PlayerState) { m.state = s }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) SetStopError(err error) { m.stopErr = err }

func (m *Mock) PlayCalls() []media.Result { return m.playCalls }

func (m *Mock) Candidates() []media.Result { return m.candidates }

func (m *Mock) StopCalls() int { return m.stopCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) ResumeCalls() int { return m.resumeCalls }

func (m *Mock) NextCalls() int { return m.nextCalls }

func (m *Mock) PrevCalls() int { return m.prevCalls }

func (m *Mock) ResetCalls() int { return m.resetCalls }

// Verify Mock implements Service at compile time.
var _ Service = (*Mock)(nil)
