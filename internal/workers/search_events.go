// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/search-visuals/internal/events"
	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/models"
)

// drainTimeout bounds how long buffered events are still forwarded after
// shutdown has started.
const drainTimeout = 5 * time.Second

type searchEventWorker struct {
	events <-chan models.SearchEvent
	sender events.Sender
	logger *logger.Logger
}

// NewSearchEventWorker forwards queued search events to sender until the
// queue is closed or ctx is cancelled. On cancellation the events already
// queued are still sent, within drainTimeout.
func NewSearchEventWorker(queue <-chan models.SearchEvent, sender events.Sender, log *logger.Logger) Worker {
	return &searchEventWorker{events: queue, sender: sender, logger: log}
}

func (w *searchEventWorker) Run(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.events:
			if !ok {
				return
			}
			w.send(ctx, event)
		case <-ctx.Done():
			w.drain()
			return
		}
	}
}

func (w *searchEventWorker) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case event, ok := <-w.events:
			if !ok {
				return
			}
			w.send(ctx, event)
		case <-ctx.Done():
			w.logger.Warn().Str("func", "*searchEventWorker.drain").Msg("drain timeout reached, remaining search events dropped")
			return
		default:
			return
		}
	}
}

func (w *searchEventWorker) send(ctx context.Context, event models.SearchEvent) {
	if err := w.sender.Send(ctx, event); err != nil {
		w.logger.Err(err).
			Str("func", "*searchEventWorker.send").
			Int64("user_id", event.UserID).
			Msg("error sending search event")
	}
}
