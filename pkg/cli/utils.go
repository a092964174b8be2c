package cli

import "github.com/urfave/cli/v3"

// joinFlags concatenates per-concern flag sets for a command
func joinFlags(sets ...[]cli.Flag) []cli.Flag {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	flags := make([]cli.Flag, 0, n)
	for _, s := range sets {
		flags = append(flags, s...)
	}
	return flags
}
