package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-relay relay base URL
//	-d session store DSN
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-rotation-interval rotation check interval (e.g., "6h")
//	-rotation-threshold key age that triggers rotation (e.g., "720h")
func ParseFlags() *ClientConfig {
	var relayBaseURL string
	var storeDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var rotationInterval time.Duration
	var rotationThreshold time.Duration

	flag.StringVar(&relayBaseURL, "relay", "", "Relay base URL")
	flag.StringVar(&storeDSN, "d", "", "Session store DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&rotationInterval, "rotation-interval", 0, "Rotation check interval (e.g., 6h)")
	flag.DurationVar(&rotationThreshold, "rotation-threshold", 0, "Key age that triggers rotation (e.g., 720h)")

	flag.Parse()

	return &ClientConfig{
		Relay: Relay{
			BaseURL:        relayBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DSN: storeDSN,
		},
		Rotation: Rotation{
			CheckInterval: rotationInterval,
			Threshold:     rotationThreshold,
		},
		JSONFilePath: jsonConfigPath,
	}
}
