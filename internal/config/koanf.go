// BookingBoost - Hotel Revenue Analytics and Marketing Dashboard
// Copyright 2026 Stanley Cornelius (StanleyCornelius24)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/StanleyCornelius24/bookingboost-sub002

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/bookingboost/config.yaml",
	"/etc/bookingboost/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefix namespaces BookingBoost environment variables.
const envPrefix = "BB_"

// Load builds the configuration from defaults, an optional YAML file and
// BB_-prefixed environment variables, in increasing priority, then
// validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// BB_SERVER_PORT -> server.port, BB_AUTH_JWT_SECRET -> auth.jwt_secret
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// configSections are the top-level config keys, longest first so that
// multi-word sections match before their single-word prefixes.
var configSections = []string{
	"rate_limit", "server", "database", "auth", "oauth", "logging", "cors",
}

// envTransform maps BB_SECTION_SOME_KEY to the koanf path
// "section.some_key". Keys keep their underscores; nested provider keys
// use a second section segment (BB_OAUTH_GOOGLE_CLIENT_ID ->
// oauth.google.client_id).
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range configSections {
		if !strings.HasPrefix(s, section+"_") {
			continue
		}
		key := strings.TrimPrefix(s, section+"_")
		if section == "oauth" {
			// One more level: provider name, then key.
			if provParts := strings.SplitN(key, "_", 2); len(provParts) == 2 {
				return section + "." + provParts[0] + "." + provParts[1]
			}
		}
		return section + "." + key
	}
	return s
}

// findConfigFile returns the first existing config file path, honoring
// the CONFIG_PATH override. Empty means no file.
func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		return path
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
