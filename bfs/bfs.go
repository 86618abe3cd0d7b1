// Package bfs provides breadth-first search over a core.Graph city map,
// returning road-count distances, parent roads, and visit order.
//
// BFS explores cities in increasing number of roads from a start city,
// with an optional visit hook, depth limiting, and road filtering.
package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/citymap/core"
)

// queueItem pairs a city name with its BFS depth.
type queueItem struct {
	name  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartCityNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start city
	if !g.HasCity(start) {
		return nil, ErrStartCityNotFound
	}

	// Prepare walker
	n := g.CityCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]core.Road, n),
		},
	}

	// Seed queue with the start city (no parent road)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// Components partitions the cities of g into connected components.
// Each component lists its cities by name; components are ordered by their
// first name. A nil or empty graph yields no components.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return [][]string{}
	}
	seen := make(map[string]bool, g.CityCount())
	out := make([][]string, 0)
	for _, name := range g.CityNames() {
		if seen[name] {
			continue
		}
		res, err := BFS(g, name)
		if err != nil {
			continue
		}
		comp := make([]string, 0, len(res.Order))
		for _, c := range res.Order {
			seen[c] = true
			comp = append(comp, c)
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out
}

// enqueue marks name visited at depth d, records the road that reached it,
// and adds it to the queue.
func (w *walker) enqueue(name string, d int, via *core.Road) {
	w.visited[name] = true
	w.res.Depth[name] = d
	if via != nil {
		w.res.Parent[name] = *via
	}
	w.queue = append(w.queue, queueItem{name: name, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the city in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.name)
	if err := w.opts.OnVisit(item.name, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.name, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in adjacency order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, road := range w.graph.Neighbors(item.name) {
		if !w.opts.FilterRoad(road) {
			continue
		}
		// first time seen?
		if !w.visited[road.To.Name] {
			w.enqueue(road.To.Name, nextDepth, &road)
		}
	}
}
