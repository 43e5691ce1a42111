// Package flagx lets several packages read their own flags from the same
// command line without tripping over each other's unknown flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// flagName returns the bare name of a flag token ("-t", "--t", "-t=5" → "t")
// and whether the token looks like a flag at all.
func flagName(arg string) (string, bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false
	}
	name := strings.TrimLeft(arg, "-")
	if name == "" {
		return "", false
	}
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	return name, true
}

// FilterArgs keeps only the flags listed in allowed, together with their
// values. Names may be given with or without dashes; "-d", "--d" and "d" are
// equivalent, as they are for the standard flag package.
//
// A flag's value is taken from "-d=value" or from the next argument when that
// argument does not itself start with "-". The result is never nil.
func FilterArgs(args []string, allowed []string) []string {
	keep := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		keep[strings.TrimLeft(a, "-")] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		name, ok := flagName(args[i])
		if !ok {
			continue
		}
		if _, wanted := keep[name]; !wanted {
			continue
		}
		out = append(out, args[i])
		if strings.Contains(args[i], "=") {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigPath returns the JSON config file named by -c or -config on the
// process command line, or "" when neither is present. When both are given
// the last one wins.
func ConfigPath() string {
	var path string

	fs := flag.NewFlagSet("config-path", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"c", "config"}))

	return path
}
