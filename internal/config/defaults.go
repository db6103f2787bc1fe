// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress      = ":5000"
	defaultOpenverseBaseURL = "https://api.openverse.engineering/v1"
	defaultPexelsVideoURL   = "https://api.pexels.com/videos/search"
	defaultTokenIssuer      = "search-visuals"
	defaultTokenDuration    = 24 * time.Hour
	defaultLogLevel         = "debug"
	defaultMaxOpenConns     = 10
	defaultMaxIdleConns     = 4
	defaultEventsQueue      = "search_events"
	defaultEventsBufferSize = 100
)

var defaultAllowedOrigins = []string{
	"https://madegun1537.github.io",
	"http://localhost:8080",
}

// Defaults returns the values used for every field no source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Credentials:   CredentialsPlain,
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			LogLevel:      defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: defaultMaxOpenConns,
				MaxIdleConns: defaultMaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			AllowedOrigins: append([]string(nil), defaultAllowedOrigins...),
		},
		Adapter: Adapter{
			OpenverseBaseURL: defaultOpenverseBaseURL,
			PexelsVideoURL:   defaultPexelsVideoURL,
		},
		Events: Events{
			Queue:      defaultEventsQueue,
			BufferSize: defaultEventsBufferSize,
		},
	}
}
