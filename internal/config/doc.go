// Package config holds the citymap CLI settings: which map to load and how to
// log. Settings come from an optional TOML file; command-line flags override
// them.
//
//	[map]
//	file = "bayarea.hcl"    # empty: built-in Bay Area map
//	parallel_roads = false
//
//	[log]
//	level = "info"          # debug, info, warn, error
//	format = "text"         # text, json
//	file = ""               # empty: stderr; otherwise a rotated file
//	max_size = 10           # megabytes before rotation
//	max_age = 7             # days to keep old files
package config
