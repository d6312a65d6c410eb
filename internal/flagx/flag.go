// Package flagx lets several independent flag sets share one command line.
// Each consumer filters os.Args down to the flags it owns before parsing,
// so unknown flags of other consumers never trip flag.ContinueOnError.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the flags named in names (without dashes) together
// with their values. Both "-x value" and "-x=value" forms are recognised, with
// one or two leading dashes. A following token that starts with '-' is never
// taken as a value.
func FilterArgs(args []string, names []string) []string {
	owned := make(map[string]bool, len(names))
	for _, n := range names {
		owned[strings.TrimLeft(n, "-")] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		name, hasValue, ok := flagName(args[i])
		if !ok || !owned[name] {
			continue
		}
		out = append(out, args[i])
		if hasValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// flagName splits "-name", "--name" or "-name=value" into the bare name and
// whether the value is inline.
func flagName(arg string) (name string, inline bool, ok bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false, false
	}
	body := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if body == "" {
		return "", false, false
	}
	name, _, inline = strings.Cut(body, "=")
	return name, inline, true
}

// ConfigFile returns the JSON config path given with -c or -config, or "" if
// neither is present. When both appear the last one wins.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"c", "config"}))

	return path
}
