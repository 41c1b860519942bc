// Package search implements the resolution pipeline for playback requests:
// broadcasting a query to all registered providers, filtering the collected
// candidates and selecting a single winner.
package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/provider"
)

// Broadcaster fans a search request out to every registered provider and
// aggregates the batches that arrive within the collection window.
type Broadcaster struct {
	providers []provider.Provider
	timeout   time.Duration
	log       *slog.Logger
}

// NewBroadcaster creates a broadcaster over the given providers. timeout
// bounds the response-collection window of each broadcast.
func NewBroadcaster(timeout time.Duration, log *slog.Logger, providers ...provider.Provider) *Broadcaster {
	return &Broadcaster{
		providers: providers,
		timeout:   timeout,
		log:       log,
	}
}

// Broadcast sends one logical query to all providers and returns the flat
// list of results collected before the window closed. Providers answering
// late are dropped silently; a failing provider never fails the broadcast.
// Zero results is a valid outcome.
func (b *Broadcaster) Broadcast(ctx context.Context, phrase string, mediaType media.MediaType) []media.Result {
	if len(b.providers) == 0 {
		return nil
	}

	searchID := uuid.NewString()[:8]
	log := b.log.With("search", searchID)
	log.Debug("broadcasting query", "phrase", phrase, "media_type", mediaType.String(), "providers", len(b.providers))

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	// Buffered so providers finishing after the window never block or leak.
	batches := make(chan []media.Result, len(b.providers))

	for _, p := range b.providers {
		go func(p provider.Provider) {
			results, err := p.Search(ctx, phrase, mediaType)
			if err != nil {
				log.Debug("provider search failed", "provider", p.ID(), "error", err)
				batches <- nil
				return
			}
			batches <- results
		}(p)
	}

	// Results are only processed after the window closes or every provider
	// has reported; there is no partial aggregation.
	var collected []media.Result
	for range b.providers {
		select {
		case batch := <-batches:
			collected = append(collected, batch...)
		case <-ctx.Done():
			log.Debug("collection window closed", "results", len(collected))
			return collected
		}
	}

	log.Debug("all providers answered", "results", len(collected))
	return collected
}
