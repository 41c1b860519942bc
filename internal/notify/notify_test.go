package notify

import (
	"testing"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
)

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestNotificationZeroValue(t *testing.T) {
	var n Notification
	if n.Urgency != UrgencyLow {
		t.Errorf("zero value Urgency = %d, want UrgencyLow (0)", n.Urgency)
	}
	if n.Timeout != 0 {
		t.Error("zero value Timeout should be 0 (never expire)")
	}
	if n.ReplacesID != 0 {
		t.Error("zero value ReplacesID should be 0 (new notification)")
	}
}

func TestNowPlaying(t *testing.T) {
	r := media.Result{
		ProviderID: "ocp-library",
		Title:      "Thriller",
		URI:        "file:///music/thriller.mp3",
		MediaType:  media.Music,
	}

	n := NowPlaying(r, 42)
	if n.Title != "Thriller" {
		t.Errorf("Title = %q, want Thriller", n.Title)
	}
	if n.Body != "music - ocp-library" {
		t.Errorf("Body = %q", n.Body)
	}
	if n.ReplacesID != 42 {
		t.Errorf("ReplacesID = %d, want 42", n.ReplacesID)
	}
}

func TestNowPlayingFallsBackToURI(t *testing.T) {
	r := media.Result{ProviderID: "remote", URI: "http://example.com/stream"}

	n := NowPlaying(r, 0)
	if n.Title != "http://example.com/stream" {
		t.Errorf("Title = %q, want stream URI", n.Title)
	}
}
