package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-l string   HTTP bind address (e.g., ":8080")
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   database DSN
//	-s string   access token HMAC secret key
//	-t int      access token validity, minutes
//	-u string   OpenAI-compatible base URL
//	-m string   model name
//	-z string   timezone
//	-w string   week start day
//	-v string   log level
//
// Only the flags listed above are picked out of os.Args, so other
// components may define their own.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-l", "-a", "-d", "-s", "-t", "-u", "-m", "-z", "-w", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "l", config.EndpointAddrHTTP, "HTTP address and port to listen on")
	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port to listen on")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.OpenAIBaseURL, "u", config.OpenAIBaseURL, "OpenAI base URL")
	fs.StringVar(&config.OpenAIModel, "m", config.OpenAIModel, "model name")
	fs.StringVar(&config.Timezone, "z", config.Timezone, "timezone (IANA name or Local)")
	fs.StringVar(&config.WeekStart, "w", config.WeekStart, "first day of the week")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
