// SPDX-License-Identifier: MIT
//
// File: decode.go
// Role: HCL and TOML decoders for map files.
// Concurrency: stateless; each call owns its parser.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/katalvlaran/citymap/internal/ctxlog"
)

//go:embed bayarea.hcl
var bayAreaHCL []byte

// BayArea returns the built-in 20-city, 25-road Bay Area map.
// The embedded file is part of the build, so a decode failure is a bug and
// panics.
func BayArea() *Map {
	m, err := ParseHCL(bayAreaHCL, "bayarea.hcl")
	if err != nil {
		panic(fmt.Sprintf("dataset: built-in map: %v", err))
	}

	return m
}

// LoadFile reads and decodes the map file at path. The format follows the
// extension (case-insensitive): .hcl or .toml.
func LoadFile(ctx context.Context, path string) (*Map, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading map file.", "path", path)

	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	var m *Map
	switch format {
	case FormatHCL:
		m, err = ParseHCL(src, path)
	case FormatTOML:
		m, err = parseTOML(ctx, src, path)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Map file decoded.", "path", path, "cities_found", len(m.Cities), "roads_found", len(m.Roads))
	return m, nil
}

// ParseHCL decodes an HCL map. filename is used in diagnostics only.
func ParseHCL(src []byte, filename string) (*Map, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %s", ErrDecode, filename, diags.Error())
	}

	var m Map
	diags = gohcl.DecodeBody(file.Body, nil, &m)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %s", ErrDecode, filename, diags.Error())
	}

	return &m, nil
}

// ParseTOML decodes a TOML map. Unknown keys are ignored.
func ParseTOML(src []byte) (*Map, error) {
	return parseTOML(context.Background(), src, "<toml>")
}

func parseTOML(ctx context.Context, src []byte, filename string) (*Map, error) {
	var m Map
	md, err := toml.Decode(string(src), &m)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, filename, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		ctxlog.FromContext(ctx).Warn("Ignoring unknown keys in map file.", "path", filename, "keys", keys)
	}

	return &m, nil
}

// EncodeTOML writes m as a TOML map file.
func (m *Map) EncodeTOML(w io.Writer) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return fmt.Errorf("dataset: encode: %w", err)
	}
	_, err := w.Write(buf.Bytes())

	return err
}

// formatOf maps a file extension to a supported format.
func formatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case FormatHCL, FormatTOML:
		return ext, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
