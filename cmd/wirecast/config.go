package main

import (
	"fmt"
	"os"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds CLI configuration.
type Config struct {
	APIURL    string `koanf:"api_url"`
	Token     string `koanf:"token"`
	AllowList string `koanf:"allow_list"`
	Verbose   bool   `koanf:"verbose"`
}

const defaultAPIURL = "https://api.lumachat.dev/v1"

// loadConfig loads configuration. Precedence (highest to lowest):
// env vars (WIRECAST_ prefix) > config file > defaults.
func loadConfig(cfgFile string) (*Config, error) {
	k := koanf.New(".")

	// Defaults.
	cfg := Config{APIURL: defaultAPIURL}

	// Config file: explicit path, or wirecast.yaml in the working directory.
	if cfgFile == "" {
		for _, name := range []string{"wirecast.yaml", "wirecast.yml"} {
			if _, err := os.Stat(name); err == nil {
				cfgFile = name
				break
			}
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), kyaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// Environment variables: WIRECAST_API_URL -> api_url.
	if err := k.Load(env.Provider("WIRECAST_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "WIRECAST_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
