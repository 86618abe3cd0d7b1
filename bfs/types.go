// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph city map.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartCityNotFound is returned when the start name is absent.
	ErrStartCityNotFound = errors.New("bfs: start city not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a city. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(name string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many roads.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterRoad can skip roads by returning false.
	// Called for each road leaving the current city.
	FilterRoad func(r core.Road) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all roads allowed)
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(string, int) error { return nil },
		MaxDepth:   0,
		FilterRoad: func(core.Road) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to d roads from the start
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterRoad skips roads when fn returns false.
func WithFilterRoad(fn func(r core.Road) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterRoad = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Start: the city the search began at.
//   - Order: cities visited, in visit sequence.
//   - Depth: map from city name to its distance (in roads) from the start.
//   - Parent: map from city name to the road that first reached it.
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]core.Road
}

// PathTo returns the fewest-roads route from the start to dest, in travel
// order. ok is false when dest was not reached; the start itself yields an
// empty route.
func (r *Result) PathTo(dest string) (roads []core.Road, ok bool) {
	if _, reached := r.Depth[dest]; !reached {
		return nil, false
	}
	// build reversed path
	path := []core.Road{}
	for cur := dest; cur != r.Start; {
		road := r.Parent[cur]
		path = append(path, road)
		cur = road.From.Name
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
