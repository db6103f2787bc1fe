// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/search-visuals/internal/config"
	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/models"
	amqp "github.com/streadway/amqp"
)

// AMQPBroker publishes search events to a durable queue on the default
// exchange.
type AMQPBroker struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *logger.Logger
}

// NewAMQPBroker dials cfg.AMQPURL, opens a channel and declares cfg.Queue.
func NewAMQPBroker(cfg config.Events, log *logger.Logger) (*AMQPBroker, error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", cfg.Queue, err)
	}

	log.Info().Str("func", "NewAMQPBroker").Str("queue", cfg.Queue).Msg("connected to search event broker")

	return &AMQPBroker{
		conn:    conn,
		channel: ch,
		queue:   cfg.Queue,
		logger:  log,
	}, nil
}

// Send implements [Sender].
func (b *AMQPBroker) Send(_ context.Context, event models.SearchEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal search event: %w", err)
	}

	err = b.channel.Publish(
		"",      // default exchange
		b.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		})
	if err != nil {
		return fmt.Errorf("failed to publish search event: %w", err)
	}

	return nil
}

// Close implements [Sender].
func (b *AMQPBroker) Close() error {
	var errs []error
	if b.channel != nil {
		if err := b.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if b.conn != nil {
		if err := b.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}

	return errors.Join(errs...)
}
