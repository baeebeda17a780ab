// Package flagx holds flag-parsing helpers shared by binaries: filtering
// os.Args so independent flag sets do not trip over each other's flags,
// locating the optional JSON config file, and expanding "+file" argument
// files.
package flagx

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// FilterArgs returns the subset of args containing only the allowed flags
// (and their values).
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      --config=conf.json
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// JsonConfigFlags extracts the config file path given via -c or -config.
// Only these flags are inspected; everything else is ignored so that other
// packages can define their own flags without conflicts. Returns "" when
// neither flag is present.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}

// Positionals returns the non-flag arguments from args in order. Flags
// listed in flagsWithValue consume the following argument as their value, so
// that value is not mistaken for a positional. A lone "-" counts as a
// positional (conventionally: read stdin).
func Positionals(args []string, flagsWithValue []string) []string {
	withValue := make(map[string]struct{}, len(flagsWithValue))
	for _, f := range flagsWithValue {
		withValue[f] = struct{}{}
	}

	var pos []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") && arg != "-" {
			if !strings.Contains(arg, "=") {
				if _, ok := withValue[arg]; ok {
					i++ // skip this flag's value
				}
			}
			continue
		}
		pos = append(pos, arg)
	}
	return pos
}

// ExpandArgsFile replaces every argument of the form "+path" with the
// newline-separated arguments read from that file. Blank lines are skipped.
// Files are not expanded recursively: a "+file" line inside an argument file
// is passed through verbatim.
//
// This mirrors the "filebin +saved.args" replay convention: the CLI offers
// to save its arguments on first run, and a later invocation can point at
// the saved file instead of retyping the connection string.
func ExpandArgsFile(args []string) ([]string, error) {
	expanded := make([]string, 0, len(args))

	for _, arg := range args {
		if !strings.HasPrefix(arg, "+") || len(arg) == 1 {
			expanded = append(expanded, arg)
			continue
		}

		path := arg[1:]
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read args file %s: %w", path, err)
		}

		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimRight(line, "\r")
			if line == "" {
				continue
			}
			expanded = append(expanded, line)
		}
	}

	return expanded, nil
}
