// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"sync"

	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/models"
)

// NopPublisher discards every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.SearchEvent) {}

// QueuePublisher buffers events in a bounded channel for a worker to drain.
type QueuePublisher struct {
	queue  chan models.SearchEvent
	once   sync.Once
	mu     sync.RWMutex
	closed bool
}

// NewQueuePublisher creates a publisher holding at most size pending events.
func NewQueuePublisher(size int) *QueuePublisher {
	if size < 1 {
		size = 1
	}

	return &QueuePublisher{queue: make(chan models.SearchEvent, size)}
}

// Publish enqueues event, dropping it when the queue is full or closed.
func (p *QueuePublisher) Publish(ctx context.Context, event models.SearchEvent) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return
	}

	select {
	case p.queue <- event:
	default:
		logger.FromContext(ctx).Warn().
			Str("func", "*QueuePublisher.Publish").
			Str("media_type", event.MediaType.String()).
			Msg("search event queue is full, dropping event")
	}
}

// Events is the receiving end drained by the event worker.
func (p *QueuePublisher) Events() <-chan models.SearchEvent {
	return p.queue
}

// Close stops accepting events and closes the queue so the worker can
// finish draining. It is safe to call more than once.
func (p *QueuePublisher) Close() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()
	})
}
