// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server together with
// its background workers.
//
// It provides startup, signal handling, and graceful shutdown: on SIGTERM,
// SIGINT or SIGQUIT the HTTP server stops accepting requests, in-flight
// requests are drained, and the workers are cancelled and awaited.
package server
