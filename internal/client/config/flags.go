package config

import (
	"flag"
	"os"
	"time"

	"github.com/vrocha/admincli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the administration API
//	-t int      request timeout in seconds
//	-d string   path to the credential database
//	-p int      page size for user listings
//
// The function filters os.Args to the flags it owns (flagx.FilterArgs) so it
// does not interfere with the JSON config flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the administration API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the credential database")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "page size for user listings")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
