package config

import (
	"flag"
	"os"
	"time"

	"github.com/stitchdesk/stitchdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base REST API URL
//	-s string   base asset/storage URL
//	-t int      request timeout in seconds
//	-i int      online check interval in seconds
//	-f string   token file path
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-i", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseAPIURL, "a", cfg.BaseAPIURL, "base REST API URL")
	fs.StringVar(&cfg.BaseAssetURL, "s", cfg.BaseAssetURL, "base asset/storage URL")
	fs.StringVar(&cfg.TokenFile, "f", cfg.TokenFile, "token file path")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
