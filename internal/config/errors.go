package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidRelayConfigs indicates an unparsable relay base URL.
	ErrInvalidRelayConfigs = errors.New("invalid relay configuration")
)
