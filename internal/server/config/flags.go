package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/itemkeeper/internal/flagx"
)

// parseFlags populates config from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":3000")
//	-g string   gRPC health bind address, "" disables
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-b int      bcrypt cost
//	-r int      rate limit: requests per window, 0 disables
//	-w int      rate limit window, minutes
//	-o string   allowed CORS origin
//	-l string   log level
//	-seed bool  preload demo data
//
// Arguments are filtered through flagx.FilterArgs first so that -c and -env
// (handled elsewhere) do not break parsing.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-s", "-t", "-b", "-r", "-w", "-o", "-l", "-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to run gRPC health server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.IntVar(&config.RateLimitMax, "r", config.RateLimitMax, "max requests per window per client")
	rateWindow := fs.Int("w", int(config.RateLimitWindow.Minutes()), "rate limit window (in minutes)")

	fs.StringVar(&config.CORSOrigin, "o", config.CORSOrigin, "allowed CORS origin")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.SeedDemoData, "seed", config.SeedDemoData, "preload demo users and items")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// durations set by earlier sources keep sub-minute precision unless overridden here
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
		case "w":
			config.RateLimitWindow = time.Duration(*rateWindow) * time.Minute
		}
	})
	return nil
}
