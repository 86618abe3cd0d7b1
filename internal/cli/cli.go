// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/dataset"
	"github.com/katalvlaran/citymap/internal/config"
	"github.com/katalvlaran/citymap/internal/ctxlog"
)

// Exit codes.
const (
	ExitRuntime = 1 // the query could not be answered
	ExitUsage   = 2 // bad flags, arguments or configuration
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageErr(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

func runtimeErr(format string, args ...any) error {
	return &ExitError{Code: ExitRuntime, Message: fmt.Sprintf(format, args...)}
}

const usageText = `
citymap - query a map of cities joined by straight roads.

Usage:
  citymap [options] <command> [arguments]

Commands:
  cities                    list cities in name order
  roads                     list roads in creation order
  route <from> <to>         shortest route between two cities
  hops <from> <to>          route with the fewest roads
  components                groups of cities connected by roads
  mst [-root R] [-method M] minimum spanning tree (prim or kruskal)
  nearest [-k N] <x> <y>    cities closest to a point
  distances <from>          distance from one city to every other
  export                    print the loaded map as TOML
  generate [-kind K] [-n N] print a synthetic map as TOML

Options:
`

// Parse processes the global options. It returns the effective
// configuration, the remaining arguments (command first), a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (config.Config, []string, bool, error) {
	flagSet := flag.NewFlagSet("citymap", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usageText)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a TOML configuration file.")
	mapFlag := flagSet.String("map", "", "Path to a .hcl or .toml map file. Default: built-in Bay Area map.")
	parallelFlag := flagSet.Bool("parallel-roads", false, "Keep repeated roads between the same cities as separate roads.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFileFlag := flagSet.String("log-file", "", "Write logs to this rotated file instead of stderr.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config.Config{}, nil, true, nil
		}
		return config.Config{}, nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return config.Config{}, nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		cfg = loaded
	}

	// Flags override the file.
	if *mapFlag != "" {
		cfg.Map.File = *mapFlag
	}
	if *parallelFlag {
		cfg.Map.ParallelRoads = true
	}
	if *logFormatFlag != "" {
		cfg.Log.Format = *logFormatFlag
	}
	if *logLevelFlag != "" {
		cfg.Log.Level = *logLevelFlag
	}
	if *logFileFlag != "" {
		cfg.Log.File = *logFileFlag
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return config.Config{}, nil, true, nil
	}

	return cfg, flagSet.Args(), false, nil
}

// Run parses args, loads the map and executes one command. Query output goes
// to stdout; logs go to stderr unless a log file is configured.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, rest, shouldExit, err := Parse(args, stdout)
	if err != nil || shouldExit {
		return err
	}

	logger, closer := cfg.Log.NewLogger(stderr)
	defer closer.Close()
	ctx = ctxlog.WithLogger(ctx, logger)

	name, cmdArgs := strings.ToLower(rest[0]), rest[1:]
	cmd, ok := commands[name]
	if !ok {
		return usageErr("unknown command %q (see citymap -h)", rest[0])
	}

	g, err := loadGraph(ctx, cfg.Map)
	if err != nil {
		return err
	}

	return execute(ctx, cmd, name, g, cmdArgs, stdout)
}

// loadGraph builds the configured map, or the built-in one.
func loadGraph(ctx context.Context, mc config.MapConfig) (*core.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	m := dataset.BayArea()
	source := "built-in"
	if mc.File != "" {
		loaded, err := dataset.LoadFile(ctx, mc.File)
		if err != nil {
			if errors.Is(err, dataset.ErrUnsupportedFormat) {
				return nil, usageErr("%v", err)
			}
			return nil, runtimeErr("%v", err)
		}
		m, source = loaded, mc.File
	}

	var opts []core.GraphOption
	if mc.ParallelRoads {
		opts = append(opts, core.WithParallelRoads())
	}
	g, rep := m.Build(opts...)
	if !rep.Clean() {
		logger.Warn("Map declarations ignored.",
			"source", source,
			"duplicate_cities", rep.DuplicateCities,
			"invalid_cities", rep.InvalidCities,
			"skipped_roads", len(rep.SkippedRoads),
			"repeated_roads", rep.RepeatedRoads,
		)
	}
	logger.Debug("Map loaded.", "source", source, "name", m.Name, "cities", rep.Cities, "roads", rep.Roads)

	return g, nil
}
