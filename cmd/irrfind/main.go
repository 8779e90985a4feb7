// Command irrfind searches for irreducible binary polynomials. The field
// modulus frozen into the erasure codec's wire format was found with this
// search; the tool remains useful for sanity-checking that constant and
// for exploring moduli of other degrees.
//
// Usage:
//
//	irrfind [flags]
//
// Flags:
//
//	--degree     Degree of the irreducible to find (default: 32)
//	--list       Also log every irreducible up to --list degree (default: 0)
//	--verbosity  Log level: debug, info, warn, error (default: info)
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gf232/gf232/erasure"
	"github.com/gf232/gf232/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	fs := flag.NewFlagSet("irrfind", flag.ContinueOnError)
	degree := fs.Int("degree", 32, "degree of the irreducible to find")
	list := fs.Int("list", 0, "also log every irreducible up to this degree")
	verbosity := fs.String("verbosity", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log.SetDefault(log.New(parseLevel(*verbosity)))
	logger := log.Default().Module("irrfind")

	if *degree < 1 {
		logger.Error("degree must be at least 1", "degree", *degree)
		return 1
	}

	if *list > 0 {
		for _, p := range erasure.Irreducibles(*list) {
			logger.Info("irreducible", "degree", p.Degree(), "poly", p.String(),
				"bits", fmt.Sprintf("%#x", uint64(p)))
		}
	}

	logger.Info("searching", "degree", *degree)
	p := erasure.FindIrreducible(*degree)
	if p == 0 {
		logger.Error("no irreducible found", "degree", *degree)
		return 1
	}
	logger.Info("found", "degree", *degree, "poly", p.String(),
		"bits", fmt.Sprintf("%#x", uint64(p)))
	return 0
}

// parseLevel maps a verbosity flag value to a slog level. Unrecognised
// values fall back to info.
func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
