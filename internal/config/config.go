package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/listen/internal/common"
)

// Config holds the settings shared by both binaries.
//
// The two store paths and the widget socket must be the same for the
// journal and the widget host; they model the app-group container.
type Config struct {
	LocalStorePath  string
	SharedStorePath string
	WidgetSocket    string
	WidgetKind      string

	// ReloadTimeout bounds one widget reload request.
	ReloadTimeout time.Duration

	// RefreshInterval is the widget's passive refresh period;
	// ImmediateRefreshInterval replaces it once after an explicit reload.
	RefreshInterval          time.Duration
	ImmediateRefreshInterval time.Duration

	LogLevel   string
	LogBackend string
	// LogFile is empty for stderr.
	LogFile string

	PrefsPath string

	// Headless forces line output in the widget host.
	Headless bool
}

// LoadDefaults populates c with defaults under the user's home directory.
func (c *Config) LoadDefaults() {
	c.LocalStorePath = "~/.local/share/listen/listen.db"
	c.SharedStorePath = "~/.local/share/listen/group/shared.db"
	c.WidgetSocket = "~/.local/share/listen/group/widget.sock"
	c.WidgetKind = common.DefaultWidgetKind
	c.ReloadTimeout = 500 * time.Millisecond
	c.RefreshInterval = 2 * time.Minute
	c.ImmediateRefreshInterval = 30 * time.Second
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.LogFile = ""
	c.PrefsPath = "~/.config/listen/widget.toml"
	c.Headless = false
}

// Load builds a Config from defaults, the environment, an optional JSON
// file and args, in that order. args excludes the program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
