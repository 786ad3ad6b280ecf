package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/listen/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
//	-l string     local store path
//	-s string     shared store path
//	-w string     widget socket path
//	-k string     widget kind
//	-t duration   widget reload timeout
//	-r duration   widget passive refresh interval
//	-log string   log level
//	-headless     line output in the widget host
//
// Arguments that are not listed here are left for other parsers.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-l", "-s", "-w", "-k", "-t", "-r", "-log"}, "-headless")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.LocalStorePath, "l", cfg.LocalStorePath, "local store path")
	fs.StringVar(&cfg.SharedStorePath, "s", cfg.SharedStorePath, "shared store path")
	fs.StringVar(&cfg.WidgetSocket, "w", cfg.WidgetSocket, "widget socket path")
	fs.StringVar(&cfg.WidgetKind, "k", cfg.WidgetKind, "widget kind")
	fs.DurationVar(&cfg.ReloadTimeout, "t", cfg.ReloadTimeout, "widget reload timeout")
	fs.DurationVar(&cfg.RefreshInterval, "r", cfg.RefreshInterval, "widget refresh interval")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.Headless, "headless", cfg.Headless, "print one line per refresh")

	return fs.Parse(args)
}
