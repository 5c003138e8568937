// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// catalog client and the stub service. It aggregates all sub-configurations
// and is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the location of the Catalog & Execution Service as seen
	// by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds listen address, timeout and throttling settings of the
	// stub service.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the stub service catalog database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds log destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds client-side settings for the remote service.
type Adapter struct {
	// Address is the scheme://host[:port] of the service
	// (e.g. "http://127.0.0.1:8000").
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// BasePath is prefixed to every catalog and operation path (e.g. "/api").
	// Env: ADAPTER_BASE_PATH
	BasePath string `env:"BASE_PATH"`

	// RequestTimeout bounds a single catalog fetch or operation submission
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the stub service.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of operation submissions per second accepted
	// from one client address. Zero disables throttling.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size paired with RateLimit.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Storage groups the configuration for the stub's storage backend.
type Storage struct {
	// DB holds the catalog database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite catalog database.
type DB struct {
	// DSN is the SQLite data source name (e.g. "file:catalog.db?cache=shared").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds logging settings.
type Log struct {
	// File is the client log file. The stub always logs to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied before any other source.
const (
	DefaultAdapterAddress = "http://127.0.0.1:8000"
	DefaultAdapterBase    = "/api"
	DefaultRequestTimeout = 15 * time.Second
	DefaultServerAddress  = "127.0.0.1:8000"
	DefaultServerTimeout  = 30 * time.Second
	DefaultRateLimit      = 5
	DefaultRateBurst      = 10
	DefaultDSN            = "file:catalog.db?cache=shared"
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			Address:        DefaultAdapterAddress,
			BasePath:       DefaultAdapterBase,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerTimeout,
			RateLimit:      DefaultRateLimit,
			RateBurst:      DefaultRateBurst,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Log:     Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
