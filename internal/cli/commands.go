// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/katalvlaran/citymap/bfs"
	"github.com/katalvlaran/citymap/builder"
	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/dataset"
	"github.com/katalvlaran/citymap/dijkstra"
	"github.com/katalvlaran/citymap/internal/ctxlog"
	"github.com/katalvlaran/citymap/mst"
	"github.com/katalvlaran/citymap/spatial"
)

// command answers one query against a loaded map.
type command func(ctx context.Context, g *core.Graph, args []string, out io.Writer) error

var commands = map[string]command{
	"cities":     runCities,
	"roads":      runRoads,
	"route":      runRoute,
	"hops":       runHops,
	"components": runComponents,
	"mst":        runMST,
	"nearest":    runNearest,
	"distances":  runDistances,
	"export":     runExport,
	"generate":   runGenerate,
}

// execute runs cmd under a fresh query ID and logs its outcome.
func execute(ctx context.Context, cmd command, name string, g *core.Graph, args []string, out io.Writer) error {
	logger := ctxlog.FromContext(ctx).With("query_id", uuid.New().String(), "command", name)
	ctx = ctxlog.WithLogger(ctx, logger)

	start := time.Now()
	err := cmd(ctx, g, args, out)
	if err != nil {
		logger.Debug("Query rejected.", "error", err)
		return err
	}
	logger.Info("Query answered.", "args", args, "elapsed", time.Since(start))

	return nil
}

// formatDistance renders a road length with thousands separators and one
// decimal.
func formatDistance(d float64) string {
	return humanize.FormatFloat("#,###.#", d)
}

// newSubFlags returns a FlagSet for a subcommand that reports errors instead
// of exiting.
func newSubFlags(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	return fs
}

// parseSubFlags wraps FlagSet.Parse into the CLI's usage error.
func parseSubFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usageErr("%s: help requested", fs.Name())
		}
		return usageErr("%s: %v", fs.Name(), err)
	}

	return nil
}

// requireCity turns an unknown name into a usage error.
func requireCity(g *core.Graph, name string) error {
	if !g.HasCity(name) {
		return usageErr("unknown city %q", name)
	}

	return nil
}

func runCities(_ context.Context, g *core.Graph, args []string, out io.Writer) error {
	if len(args) != 0 {
		return usageErr("cities takes no arguments")
	}
	for _, c := range g.Cities() {
		fmt.Fprintf(out, "%-16s (%d, %d)\n", c.Name, c.X, c.Y)
	}
	fmt.Fprintf(out, "%d cities\n", g.CityCount())

	return nil
}

func runRoads(_ context.Context, g *core.Graph, args []string, out io.Writer) error {
	if len(args) != 0 {
		return usageErr("roads takes no arguments")
	}
	roads := g.Roads()
	total := 0.0
	for _, r := range roads {
		fmt.Fprintf(out, "%-4s %s - %s  %s\n", r.ID, r.From.Name, r.To.Name, formatDistance(r.Weight))
		total += r.Weight
	}
	fmt.Fprintf(out, "%d roads, total length %s\n", len(roads), formatDistance(total))

	return nil
}

func runRoute(ctx context.Context, g *core.Graph, args []string, out io.Writer) error {
	if len(args) != 2 {
		return usageErr("route needs <from> <to>")
	}
	from, to := args[0], args[1]
	if from == to {
		return usageErr("Please select two different cities.")
	}
	for _, name := range []string{from, to} {
		if err := requireCity(g, name); err != nil {
			return err
		}
	}

	p := dijkstra.ShortestPath(g, from, to)
	if !p.Reached() {
		ctxlog.FromContext(ctx).Debug("No route.", "from", from, "to", to)
		fmt.Fprintf(out, "No path found between %s and %s\n", from, to)
		return nil
	}
	fmt.Fprintf(out, "Route: %s\n", strings.Join(p.Cities(), " -> "))
	fmt.Fprintf(out, "Shortest distance: %.1f\n", p.Distance)

	return nil
}

func runHops(ctx context.Context, g *core.Graph, args []string, out io.Writer) error {
	if len(args) != 2 {
		return usageErr("hops needs <from> <to>")
	}
	from, to := args[0], args[1]
	if from == to {
		return usageErr("Please select two different cities.")
	}
	for _, name := range []string{from, to} {
		if err := requireCity(g, name); err != nil {
			return err
		}
	}

	res, err := bfs.BFS(g, from, bfs.WithContext(ctx))
	if err != nil {
		return runtimeErr("%v", err)
	}
	roads, ok := res.PathTo(to)
	if !ok {
		fmt.Fprintf(out, "No path found between %s and %s\n", from, to)
		return nil
	}
	names := []string{from}
	length := 0.0
	for _, r := range roads {
		names = append(names, r.To.Name)
		length += r.Weight
	}
	fmt.Fprintf(out, "Route: %s\n", strings.Join(names, " -> "))
	fmt.Fprintf(out, "Roads: %d, distance: %.1f\n", len(roads), length)

	return nil
}

func runComponents(_ context.Context, g *core.Graph, args []string, out io.Writer) error {
	if len(args) != 0 {
		return usageErr("components takes no arguments")
	}
	comps := bfs.Components(g)
	for i, c := range comps {
		fmt.Fprintf(out, "%d: %s\n", i+1, strings.Join(c, ", "))
	}
	fmt.Fprintf(out, "%d connected components\n", len(comps))

	return nil
}

func runMST(_ context.Context, g *core.Graph, args []string, out io.Writer) error {
	fs := newSubFlags("mst", out)
	root := fs.String("root", "", "Start city. Default: first city by name.")
	method := fs.String("method", mst.MethodPrim, "Algorithm: 'prim' or 'kruskal'.")
	if err := parseSubFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return usageErr("mst takes no positional arguments")
	}
	m := strings.ToLower(*method)
	if m != mst.MethodPrim && m != mst.MethodKruskal {
		return usageErr("mst: unknown method %q: must be 'prim' or 'kruskal'", *method)
	}
	if *root != "" {
		if err := requireCity(g, *root); err != nil {
			return err
		}
	}

	tree := mst.Compute(g, mst.WithMethod(m), mst.WithRoot(*root))
	for _, r := range tree.Roads {
		fmt.Fprintf(out, "%s - %s  %.1f\n", r.From.Name, r.To.Name, r.Weight)
	}
	fmt.Fprintf(out, "MST Total Weight: %.1f\n", tree.Weight)
	if spanned := len(tree.Cities()); m == mst.MethodPrim && spanned < g.CityCount() {
		fmt.Fprintf(out, "Spans %d of %d cities: the map is disconnected\n", spanned, g.CityCount())
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func runNearest(_ context.Context, g *core.Graph, args []string, out io.Writer) error {
	fs := newSubFlags("nearest", out)
	k := fs.Int("k", 1, "Number of cities to list.")
	if err := parseSubFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return usageErr("nearest needs <x> <y>")
	}
	if *k < 1 {
		return usageErr("nearest: -k must be at least 1")
	}
	x, errX := strconv.ParseFloat(fs.Arg(0), 64)
	y, errY := strconv.ParseFloat(fs.Arg(1), 64)
	if errX != nil || errY != nil || !finite(x) || !finite(y) {
		return usageErr("nearest: coordinates must be finite numbers, got %q %q", fs.Arg(0), fs.Arg(1))
	}

	matches := spatial.NewIndex(g).NearestN(x, y, *k)
	if len(matches) == 0 {
		fmt.Fprintln(out, "No cities on the map")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(out, "%-16s (%d, %d)  %s\n", m.City.Name, m.City.X, m.City.Y, formatDistance(m.Distance))
	}

	return nil
}

func runDistances(_ context.Context, g *core.Graph, args []string, out io.Writer) error {
	if len(args) != 1 {
		return usageErr("distances needs <from>")
	}
	from := args[0]
	if err := requireCity(g, from); err != nil {
		return err
	}

	dist := dijkstra.Distances(g, from)
	names := make([]string, 0, len(dist))
	for name := range dist {
		if name != from {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if dist[names[i]] != dist[names[j]] {
			return dist[names[i]] < dist[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		d := "unreachable"
		if dist[name] < dijkstra.Unreached {
			d = formatDistance(dist[name])
		}
		fmt.Fprintf(out, "%-16s %s\n", name, d)
	}

	return nil
}

func runExport(_ context.Context, g *core.Graph, args []string, out io.Writer) error {
	if len(args) != 0 {
		return usageErr("export takes no arguments")
	}
	if err := dataset.FromGraph("", g).EncodeTOML(out); err != nil {
		return runtimeErr("%v", err)
	}

	return nil
}

func runGenerate(_ context.Context, _ *core.Graph, args []string, out io.Writer) error {
	fs := newSubFlags("generate", out)
	kind := fs.String("kind", "random", "Layout: 'grid', 'ring', 'star' or 'random'.")
	n := fs.Int("n", 10, "Number of cities (grid: cities per side).")
	extra := fs.Int("extra", 0, "Extra random roads (random only).")
	seed := fs.Int64("seed", 1, "Random seed (random only).")
	spacing := fs.Int("spacing", 10, "Distance between neighbouring cities.")
	if err := parseSubFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return usageErr("generate takes no positional arguments")
	}
	if *spacing < 1 {
		return usageErr("generate: -spacing must be at least 1")
	}

	var cons builder.Constructor
	switch strings.ToLower(*kind) {
	case "grid":
		cons = builder.Grid(*n, *n)
	case "ring":
		cons = builder.Ring(*n)
	case "star":
		cons = builder.Star(*n)
	case "random":
		cons = builder.RandomSparse(*n, *extra)
	default:
		return usageErr("generate: unknown kind %q", *kind)
	}

	g, err := builder.BuildMap(nil,
		[]builder.BuilderOption{builder.WithSeed(*seed), builder.WithSpacing(*spacing)},
		cons,
	)
	if err != nil {
		if errors.Is(err, builder.ErrTooFewCities) {
			return usageErr("generate: %v", err)
		}
		return runtimeErr("generate: %v", err)
	}
	if err := dataset.FromGraph(*kind, g).EncodeTOML(out); err != nil {
		return runtimeErr("%v", err)
	}

	return nil
}
