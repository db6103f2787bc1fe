// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/search-visuals/internal/config"
	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(query string) models.SearchEvent {
	return models.SearchEvent{UserID: 1, Query: query, MediaType: models.Images, OccurredAt: time.Now()}
}

func TestQueuePublisher_PublishAndDrain(t *testing.T) {
	p := NewQueuePublisher(2)
	ctx := context.Background()

	p.Publish(ctx, testEvent("cats"))
	p.Publish(ctx, testEvent("dogs"))
	p.Close()

	var got []string
	for e := range p.Events() {
		got = append(got, e.Query)
	}

	assert.Equal(t, []string{"cats", "dogs"}, got)
}

func TestQueuePublisher_DropsWhenFull(t *testing.T) {
	p := NewQueuePublisher(1)
	ctx := context.Background()

	p.Publish(ctx, testEvent("kept"))
	p.Publish(ctx, testEvent("dropped"))

	require.Len(t, p.Events(), 1)
	assert.Equal(t, "kept", (<-p.Events()).Query)
}

func TestQueuePublisher_PublishAfterClose(t *testing.T) {
	p := NewQueuePublisher(1)
	p.Close()
	p.Close()

	assert.NotPanics(t, func() { p.Publish(context.Background(), testEvent("late")) })
}

func TestQueuePublisher_ConcurrentPublish(t *testing.T) {
	p := NewQueuePublisher(100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Publish(context.Background(), testEvent("q"))
		}()
	}
	wg.Wait()

	assert.Len(t, p.Events(), 50)
}

func TestNewQueuePublisher_MinimumSize(t *testing.T) {
	p := NewQueuePublisher(0)
	assert.Equal(t, 1, cap(p.Events()))
}

func TestNopPublisher(t *testing.T) {
	assert.NotPanics(t, func() { NopPublisher{}.Publish(context.Background(), testEvent("x")) })
}

func TestNewAMQPBroker_InvalidURL(t *testing.T) {
	_, err := NewAMQPBroker(config.Events{AMQPURL: "not-an-amqp-url", Queue: "q"}, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to broker")
}
