// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}

	if !isAbsoluteURL(cfg.Adapter.OpenverseBaseURL) || !isAbsoluteURL(cfg.Adapter.PexelsVideoURL) {
		return fmt.Errorf("%w: provider URLs must be absolute", ErrInvalidAdapterConfigs)
	}

	switch cfg.App.Credentials {
	case CredentialsPlain:
	case CredentialsJWT:
		if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
			return fmt.Errorf("%w: jwt credentials need a sign key and a positive duration", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported credentials %q", ErrInvalidAppConfigs, cfg.App.Credentials)
	}

	if cfg.Events.AMQPURL != "" && cfg.Events.Queue == "" {
		return fmt.Errorf("%w: empty queue name", ErrInvalidEventsConfigs)
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
