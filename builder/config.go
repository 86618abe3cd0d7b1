// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • name    = "C0", "C1", ...
//   • rng     = nil (pure/deterministic unless seeded)
//   • spacing = 10
//   • origin  = (0, 0)

package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/citymap/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	name    func(int) string // index -> city name
	rng     *rand.Rand       // nil means "no randomness"
	spacing int              // distance unit of the layouts
	originX int
	originY int
}

const defaultSpacing = 10

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		name:    defaultName,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// defaultName yields "C0", "C1", ...
func defaultName(i int) string { return "C" + strconv.Itoa(i) }

// place adds a city named name(i) at origin + (x, y). A name already on the
// map fails with ErrConstructFailed.
func (c builderConfig) place(g *core.Graph, method string, i, x, y int) (string, error) {
	name := c.name(i)
	if g.HasCity(name) {
		return "", wrapf(method, "AddCity("+strconv.Itoa(i)+")", fmt.Errorf("%w: name %q already taken", ErrConstructFailed, name))
	}
	if err := g.AddCity(name, c.originX+x, c.originY+y); err != nil {
		return "", wrapf(method, "AddCity("+strconv.Itoa(i)+")", fmt.Errorf("%w: %w", ErrConstructFailed, err))
	}

	return name, nil
}
