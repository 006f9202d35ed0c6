package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/carregistry/internal/flagx"
)

// parseFlags overrides cfg from -a (server host:port) and -r (per-request
// timeout, whole seconds). Anything else on the command line, including the
// config file flag, is left for other parsers. A malformed or non-positive -r
// panics. Without -r the timeout from defaults or JSON is kept as is, so a
// sub-second value from the file survives.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "registry server host:port")
	timeoutSec := fs.Int("r", int(cfg.RequestTimeout/time.Second), "per-request timeout, seconds")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name != "r" {
			return
		}
		if *timeoutSec <= 0 {
			panic(fmt.Sprintf("request timeout must be positive, got %d", *timeoutSec))
		}
		cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
	})
}
