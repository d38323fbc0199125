// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging values from environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the bridge hash key,
	// the version string and the per-user data directory.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the notes file and the local
	// settings database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and limits for the host's bridge
	// endpoints.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the host's bridge endpoints.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs (debounced save).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used to sign save requests crossing the
	// bridge. Both processes must share it; empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the version string reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DataDir is the per-user data directory holding notes.json, the
	// settings database and the client log.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// LogLevel is the minimum zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all persistence backends.
type Storage struct {
	// Files holds the notes file location.
	Files Files `envPrefix:"FILES_"`

	// DB holds the local settings database connection settings.
	DB DB `envPrefix:"DB_"`
}

// Files holds file-system settings for the notes document.
type Files struct {
	// NotesFile is the path of the JSON document holding every note.
	// Defaults to <DataDir>/notes.json.
	// Env: STORAGE_FILES_NOTES_FILE
	NotesFile string `env:"NOTES_FILE"`
}

// DB holds connection settings for the client's SQLite settings database.
type DB struct {
	// DSN is the SQLite data source name. Defaults to <DataDir>/settings.db.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and limit settings for the host's bridge.
type Server struct {
	// HTTPAddress is the TCP address the HTTP bridge listens on,
	// in "host:port" format (e.g. "127.0.0.1:8089").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address the gRPC bridge listens on.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling of a single bridge request.
	// Zero means no timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the sustained number of bridge requests per second the
	// host accepts. Zero disables limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the burst size of the rate limiter.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Adapter holds the client's transport settings for reaching the host.
// When both addresses are empty the client embeds the notes gateway
// in-process.
type Adapter struct {
	// HTTPAddress is the host's HTTP bridge address.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host's gRPC bridge address. Takes precedence over
	// HTTPAddress when both are set.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single bridge call. Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SaveDebounce is the quiet period after the last note change before
	// the collection is flushed. Defaults to one second.
	// Env: WORKERS_SAVE_DEBOUNCE
	SaveDebounce time.Duration `env:"SAVE_DEBOUNCE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. args are the command-line arguments without the
// program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
