// Package config loads runtime configuration for the journal and the widget
// host.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and LISTEN_* environment
//     variables (see parseEnv).
//  3. Optional JSON file selected with -c or -config (see parseJSON).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// # JSON schema
//
// Intervals use timex.Duration, so they may be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "local_store_path": "~/.local/share/listen/listen.db",
//	  "shared_store_path": "~/.local/share/listen/group/shared.db",
//	  "widget_socket": "~/.local/share/listen/group/widget.sock",
//	  "widget_kind": "Info_Widget",
//	  "reload_timeout": "500ms",
//	  "refresh_interval": "2m",
//	  "immediate_refresh_interval": "30s",
//	  "log_level": "info",
//	  "log_backend": "slog",
//	  "log_file": "",
//	  "prefs_path": "~/.config/listen/widget.toml"
//	}
package config
