package config

import (
	"flag"
	"os"

	"github.com/abitblue/filebin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-t string   database driver: sqlite or pgx (default from Config)
//	-d string   database DSN (default from Config)
//	-o string   assets directory (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-t", "-d", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDriver, "t", cfg.DatabaseDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.AssetsDir, "o", cfg.AssetsDir, "assets directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
