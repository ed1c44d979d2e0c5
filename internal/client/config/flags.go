package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/popx/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   session database DSN
//	-w int      submit delay in milliseconds
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first, so -c/-config and any
// other flags are left to their own loaders.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-w", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.SessionDSN, "d", cfg.SessionDSN, "session database DSN")
	submitDelay := fs.Int64("w", cfg.SubmitDelay.Milliseconds(), "submit delay (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug|info|warn|error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SubmitDelay = time.Duration(*submitDelay) * time.Millisecond
}
