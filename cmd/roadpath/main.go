// Command roadpath serves and runs path queries over a road-network dataset.
//
//	roadpath serve
//	roadpath query  -dataset graph.json -algorithm A* -from 27.95,-82.46 -to 28.54,-81.38
//	roadpath import -in florida.osm.pbf -out graph.json [-bbox 24,-88,31,-77]
//
// serve is configured through config.yaml and ROADPATH_* variables (a .env
// file in the working directory is honoured).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const usage = `usage: roadpath <command> [flags]

commands:
  serve    run the HTTP API
  query    run one query and print the result as JSON
  import   convert OSM XML/PBF into a dataset file
`

var errUsage = errors.New("roadpath: bad usage")

func main() {
	loadEnv(zerolog.New(os.Stderr).With().Timestamp().Logger(), ".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// loadEnv applies each env file in turn. A missing file is skipped
// silently; an unreadable or malformed one is logged and skipped.
func loadEnv(l zerolog.Logger, files ...string) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			l.Warn().Err(err).Str("file", f).Msg("env file not loaded")
		}
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}
	switch args[0] {
	case "serve":
		return serveCmd(ctx, args[1:], stderr)
	case "query":
		return queryCmd(ctx, args[1:], stdout, stderr)
	case "import":
		return importCmd(ctx, args[1:], stderr, zerolog.New(stderr).With().Timestamp().Logger())
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return nil
	}
	fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
	return errUsage
}
