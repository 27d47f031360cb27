package config

import (
	"flag"
	"os"

	"github.com/climatechart/server/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":9092")
//	-g string   AWS region
//	-e string   AWS endpoint override (LocalStack)
//	-p string   comma-separated public method list
//	-k string   comma-separated API-key-required method list
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components (-c/-config is
// owned by the JSON loader).
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-e", "-p", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.AWSRegion, "g", config.AWSRegion, "AWS region")
	fs.StringVar(&config.AWSEndpointURL, "e", config.AWSEndpointURL, "AWS endpoint override")
	fs.StringVar(&config.PublicMethods, "p", config.PublicMethods, "public methods (comma-separated)")
	fs.StringVar(&config.APIKeyMethods, "k", config.APIKeyMethods, "API-key-required methods (comma-separated)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
