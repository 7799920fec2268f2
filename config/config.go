// Package config holds the runtime configuration for Convopdf.
// The link shape (service domain, share path prefix, token pattern) and the
// relay endpoint list are data, not code: they can be overridden from a YAML
// file so an upstream format change is a config edit.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes where share links live and how to fetch and render them.
type Config struct {
	// ServiceDomain is the host a share link must contain.
	ServiceDomain string `yaml:"service_domain"`

	// SharePathPrefix is the required path prefix of a share link.
	SharePathPrefix string `yaml:"share_path_prefix"`

	// TokenPattern is the regular expression a conversation identifier
	// must match (anchored, case-insensitive hex with hyphens).
	TokenPattern string `yaml:"token_pattern"`

	// RelayEndpoints are URL templates tried after the direct fetch fails.
	// Each template receives the query-escaped share URL via %s.
	RelayEndpoints []string `yaml:"relay_endpoints"`

	// FetchTimeout bounds each individual endpoint request.
	FetchTimeout time.Duration `yaml:"-"`

	// RenderTimeout bounds the offscreen load-and-capture step.
	RenderTimeout time.Duration `yaml:"-"`

	// SettleDelay is the post-load wait before capture, allowing
	// asynchronous style application to finish.
	SettleDelay time.Duration `yaml:"-"`

	// ViewportWidth is the logical pixel width of the capture surface.
	ViewportWidth int64 `yaml:"-"`

	// ScaleFactor is the supersampling factor (device px per logical px).
	ScaleFactor float64 `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ServiceDomain:   "claude.ai",
		SharePathPrefix: "/share/",
		TokenPattern:    `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`,
		RelayEndpoints: []string{
			"https://api.allorigins.win/raw?url=%s",
			"https://corsproxy.io/?%s",
		},
		FetchTimeout:  15 * time.Second,
		RenderTimeout: 20 * time.Second,
		SettleDelay:   500 * time.Millisecond,
		ViewportWidth: 1280,
		ScaleFactor:   2.0,
	}
}

// Load reads a YAML file and overlays it on the defaults. Only the
// link-shape and endpoint fields are settable from the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.ServiceDomain == "" || cfg.SharePathPrefix == "" || cfg.TokenPattern == "" {
		return nil, fmt.Errorf("config %s: service_domain, share_path_prefix and token_pattern must be non-empty", path)
	}
	return cfg, nil
}
