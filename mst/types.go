// SPDX-License-Identifier: MIT
//
// Package mst defines the result value and options of the spanning-tree solvers.
package mst

import "github.com/katalvlaran/citymap/core"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all roads and union-find).
const MethodKruskal = "kruskal"

// Tree is the immutable result of a spanning-tree query.
//
// Root is the city Prim grew the tree from ("" for Kruskal and for an empty
// graph). Roads lists the chosen connections in the order they were accepted,
// each oriented from the side already in the tree. Weight is their total.
type Tree struct {
	Root   string
	Roads  []core.Road
	Weight float64
}

// Cities returns the names of the cities spanned by the tree, Root first,
// then in acceptance order. A Kruskal forest lists each road's endpoints as
// they join.
func (t Tree) Cities() []string {
	seen := make(map[string]struct{}, len(t.Roads)+1)
	out := make([]string, 0, len(t.Roads)+1)
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	add(t.Root)
	for _, r := range t.Roads {
		add(r.From.Name)
		add(r.To.Name)
	}

	return out
}

// Options configures the spanning-tree computation.
//
// Method – MethodPrim (default) or MethodKruskal.
// Root   – start city for Prim; "" means the lexicographically first city.
// Ignored by Kruskal.
type Options struct {
	Method string
	Root   string
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot returns an Option that sets the starting city for Prim's algorithm.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns Options for Prim rooted at the first city name.
func DefaultOptions() Options {
	return Options{Method: MethodPrim}
}

// Compute selects and runs the algorithm named by the options.
// An unknown method falls back to Prim.
func Compute(g *core.Graph, opts ...Option) Tree {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Method == MethodKruskal {
		return Kruskal(g)
	}

	return Prim(g, WithRoot(cfg.Root))
}
