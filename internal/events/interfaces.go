// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events carries search notifications from the request path to an
// optional message broker.
//
// Handlers never wait on the broker: [Publisher.Publish] only enqueues, and a
// background worker drains the queue into a [Sender]. When the queue is full
// the event is dropped and a warning is logged.
package events

import (
	"context"

	"github.com/MKhiriev/search-visuals/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/events_mock.go -package=mock

// Publisher accepts search events without blocking the caller.
type Publisher interface {
	Publish(ctx context.Context, event models.SearchEvent)
}

// Sender delivers a single event to the broker.
type Sender interface {
	Send(ctx context.Context, event models.SearchEvent) error
	Close() error
}
