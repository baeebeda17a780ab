package config

import (
	"flag"
	"os"
	"time"

	"github.com/abitblue/filebin/internal/flagx"
)

// FlagsWithValue lists the client flags that consume the next argument,
// so positional-argument extraction can skip their values.
var FlagsWithValue = []string{"-i", "-l", "-e", "-r", "-T", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-i string   identity (private key) file
//	-l string   public link base URL
//	-e string   default extension for extensionless sources
//	-r string   remote request-name command
//	-T int      dial timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-i", "-l", "-e", "-r", "-T"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.IdentityFile, "i", cfg.IdentityFile, "identity (private key) file")
	fs.StringVar(&cfg.LinkBase, "l", cfg.LinkBase, "public link base URL")
	fs.StringVar(&cfg.DefaultExt, "e", cfg.DefaultExt, "default extension for extensionless sources")
	fs.StringVar(&cfg.RequestNameCmd, "r", cfg.RequestNameCmd, "remote request-name command")
	dialTimeout := fs.Int("T", int(cfg.DialTimeout.Seconds()), "dial timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.DialTimeout = time.Duration(*dialTimeout) * time.Second
}
