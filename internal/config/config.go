// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// ClientConfig is the top-level configuration container for the client. It
// is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type ClientConfig struct {
	// Relay holds the relay endpoint and outbound request settings.
	Relay Relay `envPrefix:"RELAY_"`

	// Storage holds the local session store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Rotation holds the transport-key rotation cadence settings.
	Rotation Rotation `envPrefix:"ROTATION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Relay holds the relay endpoint settings used by the client transport layer.
type Relay struct {
	// BaseURL is the relay's HTTP base URL (e.g. "https://relay.example.com").
	// Env: RELAY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound client requests
	// (e.g. "15s", "1m").
	// Env: RELAY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the local encrypted session store.
type Storage struct {
	// DSN is the SQLite connection string for the session store
	// (e.g. "file:ratchet.db"). Empty means an in-memory database that
	// does not survive restarts.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Rotation holds the transport-key rotation cadence settings.
type Rotation struct {
	// CheckInterval is how often the background job checks the key age
	// (e.g. "6h").
	// Env: ROTATION_CHECK_INTERVAL
	CheckInterval time.Duration `env:"CHECK_INTERVAL"`

	// Threshold is the key age past which the check triggers a rotation
	// (e.g. "720h" for 30 days).
	// Env: ROTATION_THRESHOLD
	Threshold time.Duration `env:"THRESHOLD"`
}

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *ClientConfig or an error if any source fails
// to load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
