package config

import (
	"flag"
	"os"
	"time"

	"github.com/prepshare/prepshare/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string      base URL of the backend API (default from Config)
//	-t int         request timeout in seconds (default from Config)
//	-cache string  path of the local cache database
//
// os.Args is filtered to only the flags handled here, via flagx.FilterArgs,
// to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-cache"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.CacheDSN, "cache", cfg.CacheDSN, "path of the local cache database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
