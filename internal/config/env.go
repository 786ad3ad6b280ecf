package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "LISTEN_"

// parseEnv overlays cfg with LISTEN_* variables. A .env file in the working
// directory is loaded first; it never overrides variables already set.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()

	strs := map[string]*string{
		"LOCAL_STORE":   &cfg.LocalStorePath,
		"SHARED_STORE":  &cfg.SharedStorePath,
		"WIDGET_SOCKET": &cfg.WidgetSocket,
		"WIDGET_KIND":   &cfg.WidgetKind,
		"LOG_LEVEL":     &cfg.LogLevel,
		"LOG_BACKEND":   &cfg.LogBackend,
		"LOG_FILE":      &cfg.LogFile,
		"PREFS_PATH":    &cfg.PrefsPath,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"RELOAD_TIMEOUT":     &cfg.ReloadTimeout,
		"REFRESH_INTERVAL":   &cfg.RefreshInterval,
		"IMMEDIATE_INTERVAL": &cfg.ImmediateRefreshInterval,
	}
	for key, dst := range durations {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*dst = d
	}

	if v, ok := lookup("HEADLESS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sHEADLESS: %w", envPrefix, err)
		}
		cfg.Headless = b
	}
	return nil
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(envPrefix + key))
	return v, v != ""
}
