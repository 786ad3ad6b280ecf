// Package flagx lets several loaders share one command line: each one keeps
// only the flags it owns before handing them to a flag.FlagSet.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the arguments of args that belong to the allowed flags,
// in order. Two forms are recognised:
//
//	-c conf.json
//	-config=conf.json
//
// A value-taking flag consumes the next argument unless it starts with "-".
// Flags listed in boolFlags never consume a following argument.
func FilterArgs(args []string, allowed []string, boolFlags ...string) []string {
	names := make(map[string]bool, len(allowed)+len(boolFlags))
	for _, f := range allowed {
		names[f] = true
	}
	for _, f := range boolFlags {
		names[f] = false
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, known := names[name]; known {
				filtered = append(filtered, arg)
			}
			continue
		}

		takesValue, known := names[arg]
		if !known {
			continue
		}
		filtered = append(filtered, arg)
		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// ConfigFileFlag returns the JSON config path given with -c or -config, or
// an empty string. Other arguments are ignored.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
