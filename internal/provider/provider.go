// Package provider defines the contract for search result providers.
package provider

import (
	"context"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
)

// Provider is an independently-scheduled responder capable of returning
// candidate playback items for a query. Implementations must honor ctx
// cancellation; the broadcaster abandons providers that outlive the
// collection window.
type Provider interface {
	ID() string
	Search(ctx context.Context, phrase string, mediaType media.MediaType) ([]media.Result, error)
}
