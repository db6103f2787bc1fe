// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/MKhiriev/search-visuals/internal/config"
	"github.com/MKhiriev/search-visuals/internal/handler"
	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	workersCtx  context.Context
	stopWorkers context.CancelFunc
	workersDone chan struct{}
	started     atomic.Bool
	shutdown    sync.Once

	logger *logger.Logger
}

// NewServer builds the HTTP server from handlers. background may be nil.
func NewServer(handlers *handler.Handlers, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	if background == nil {
		background = workers.NewWorkers()
	}

	workersCtx, stopWorkers := context.WithCancel(context.Background())

	return &server{
		httpServer:  newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:     background,
		workersCtx:  workersCtx,
		stopWorkers: stopWorkers,
		workersDone: make(chan struct{}),
		logger:      logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Shutdown stops the HTTP server first, then cancels the workers and waits
// for them so queued events are flushed. It is safe to call more than once.
func (s *server) Shutdown() {
	s.shutdown.Do(func() {
		s.httpServer.Shutdown()
		s.stopWorkers()
		if s.started.Load() {
			<-s.workersDone
		}
		s.logger.Info().Msg("server Shutdown gracefully")
	})
}

// run serves until ctx is cancelled or the listener fails.
func (s *server) run(ctx context.Context) error {
	s.started.Store(true)
	go func() {
		defer close(s.workersDone)
		s.workers.Run(s.workersCtx)
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	s.Shutdown()
	return err
}
