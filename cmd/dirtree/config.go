package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hayeah/dirtree/tree"
)

// Config holds the settings read from the environment.
type Config struct {
	Style    tree.Style
	Sort     bool
	LogLevel slog.Level
}

// LoadConfig reads DIRTREE_* settings through lookup, starting from the
// defaults.
func LoadConfig(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		Style:    tree.DefaultStyle,
		LogLevel: slog.LevelWarn,
	}

	var err error
	if v, ok := lookup("DIRTREE_SPACING"); ok {
		if cfg.Style.Spacing, err = parseCount("DIRTREE_SPACING", v); err != nil {
			return nil, err
		}
	}
	if v, ok := lookup("DIRTREE_HYPHENS"); ok {
		if cfg.Style.Hyphens, err = parseCount("DIRTREE_HYPHENS", v); err != nil {
			return nil, err
		}
	}
	if v, ok := lookup("DIRTREE_SORT"); ok && strings.TrimSpace(v) != "" {
		if cfg.Sort, err = strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			return nil, fmt.Errorf("invalid DIRTREE_SORT %q: %w", v, err)
		}
	}
	if v, ok := lookup("DIRTREE_LOG_LEVEL"); ok && strings.TrimSpace(v) != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return nil, fmt.Errorf("invalid DIRTREE_LOG_LEVEL %q: %w", v, err)
		}
	}

	return cfg, nil
}

func parseCount(name, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", name, v)
	}
	return n, nil
}

// ProvideConfig reads the config from the process environment.
func ProvideConfig() (*Config, error) {
	return LoadConfig(os.LookupEnv)
}
