// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	goflags "github.com/jessevdk/go-flags"
)

// NetAddress holds structured network address data for host and port.
// It implements the go-flags Unmarshaler interface.
type NetAddress struct {
	Host string
	Port int
}

// commandLine mirrors the subset of [StructuredConfig] that can be set from
// the command line.
type commandLine struct {
	Address        NetAddress    `short:"a" long:"address" description:"Net address host:port"`
	RequestTimeout time.Duration `long:"request-timeout" description:"Inbound request timeout (e.g. 30s)"`
	AllowedOrigins []string      `long:"allowed-origin" description:"CORS allowed origin (repeatable)"`

	Driver string `long:"db-driver" choice:"pgx" choice:"sqlite3" description:"database/sql driver"`
	DSN    string `short:"d" long:"dsn" description:"Database DSN"`

	OpenverseBaseURL string        `long:"openverse-url" description:"Openverse API base URL"`
	PexelsVideoURL   string        `long:"pexels-url" description:"Pexels video search URL"`
	PexelsAPIKey     string        `long:"pexels-api-key" description:"Pexels API key"`
	AdapterTimeout   time.Duration `long:"adapter-timeout" description:"Outbound request timeout (e.g. 10s)"`

	Credentials   string        `long:"credentials" choice:"plain" choice:"jwt" description:"Credential scheme"`
	TokenSignKey  string        `long:"token-sign-key" description:"Token signing key"`
	TokenIssuer   string        `long:"token-issuer" description:"Token issuer"`
	TokenDuration time.Duration `long:"token-duration" description:"Token duration (e.g. 1h, 30m)"`
	LogLevel      string        `long:"log-level" description:"Log level"`

	AMQPURL string `long:"amqp-url" description:"Search event broker URL"`

	JSONFilePath string `short:"c" long:"config" description:"JSON config file path"`
}

// ParseFlags parses args (without the program name) into a [StructuredConfig].
// Flags that are not given leave their fields zero so lower-priority
// sources can fill them in.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var opts commandLine

	parser := goflags.NewParser(&opts, goflags.HelpFlag|goflags.PassDoubleDash)
	parser.Name = "search-visuals"
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Credentials:   opts.Credentials,
			TokenSignKey:  opts.TokenSignKey,
			TokenIssuer:   opts.TokenIssuer,
			TokenDuration: opts.TokenDuration,
			LogLevel:      opts.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: opts.Driver,
				DSN:    opts.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    opts.Address.String(),
			RequestTimeout: opts.RequestTimeout,
			AllowedOrigins: opts.AllowedOrigins,
		},
		Adapter: Adapter{
			OpenverseBaseURL: opts.OpenverseBaseURL,
			PexelsVideoURL:   opts.PexelsVideoURL,
			PexelsAPIKey:     opts.PexelsAPIKey,
			RequestTimeout:   opts.AdapterTimeout,
		},
		Events: Events{
			AMQPURL: opts.AMQPURL,
		},
		JSONFilePath: opts.JSONFilePath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// UnmarshalFlag lets go-flags populate a NetAddress directly.
func (a *NetAddress) UnmarshalFlag(value string) error {
	return a.Set(value)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds every interface. Otherwise the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
