package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/listen/internal/flagx"
	"github.com/dmitrijs2005/listen/internal/timex"
)

// JSONConfig is the on-disk form of Config. Absent fields keep the value
// from earlier sources.
type JSONConfig struct {
	LocalStorePath           *string         `json:"local_store_path"`
	SharedStorePath          *string         `json:"shared_store_path"`
	WidgetSocket             *string         `json:"widget_socket"`
	WidgetKind               *string         `json:"widget_kind"`
	ReloadTimeout            *timex.Duration `json:"reload_timeout"`
	RefreshInterval          *timex.Duration `json:"refresh_interval"`
	ImmediateRefreshInterval *timex.Duration `json:"immediate_refresh_interval"`
	LogLevel                 *string         `json:"log_level"`
	LogBackend               *string         `json:"log_backend"`
	LogFile                  *string         `json:"log_file"`
	PrefsPath                *string         `json:"prefs_path"`
	Headless                 *bool           `json:"headless"`
}

// parseJSON overlays cfg with the file named by -c or -config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.LocalStorePath, jc.LocalStorePath)
	setString(&cfg.SharedStorePath, jc.SharedStorePath)
	setString(&cfg.WidgetSocket, jc.WidgetSocket)
	setString(&cfg.WidgetKind, jc.WidgetKind)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)
	setString(&cfg.LogFile, jc.LogFile)
	setString(&cfg.PrefsPath, jc.PrefsPath)
	if jc.ReloadTimeout != nil {
		cfg.ReloadTimeout = jc.ReloadTimeout.Duration
	}
	if jc.RefreshInterval != nil {
		cfg.RefreshInterval = jc.RefreshInterval.Duration
	}
	if jc.ImmediateRefreshInterval != nil {
		cfg.ImmediateRefreshInterval = jc.ImmediateRefreshInterval.Duration
	}
	if jc.Headless != nil {
		cfg.Headless = *jc.Headless
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
