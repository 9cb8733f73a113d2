// SPDX-License-Identifier: Apache-2.0

package config

import (
	"net/url"
	"time"
)

// validate checks the merged [ClientConfig] and fills defaults for fields
// left unset. The only hard failure is a relay URL that does not parse;
// everything else has a safe default.
func (cfg *ClientConfig) validate() error {
	if cfg.Relay.BaseURL == "" {
		cfg.Relay.BaseURL = "http://localhost:8080"
	}
	if _, err := url.ParseRequestURI(cfg.Relay.BaseURL); err != nil {
		return ErrInvalidRelayConfigs
	}

	if cfg.Relay.RequestTimeout <= 0 {
		cfg.Relay.RequestTimeout = 15 * time.Second
	}
	if cfg.Rotation.CheckInterval <= 0 {
		cfg.Rotation.CheckInterval = 6 * time.Hour
	}
	if cfg.Rotation.Threshold <= 0 {
		cfg.Rotation.Threshold = 30 * 24 * time.Hour
	}

	return nil
}
