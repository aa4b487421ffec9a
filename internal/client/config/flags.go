package config

import (
	"flag"
	"os"

	"github.com/chandra/dmacli/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the DMA backend (default from Config)
//	-d string   path to the local session database (default from Config)
//
// Args are filtered through flagx.FilterArgs so this stage ignores flags
// owned by other stages (notably -c/-config).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the DMA backend")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
