// Package dataset loads city maps from HCL or TOML files and builds them into
// a core.Graph.
//
// HCL layout:
//
//	name = "Bay Area"
//
//	city "Cupertino" {
//	  x = 150
//	  y = 250
//	}
//
//	road "Cupertino" "San Jose" {}
//
// TOML layout:
//
//	name = "Bay Area"
//
//	[[city]]
//	name = "Cupertino"
//	x = 150
//	y = 250
//
//	[[road]]
//	from = "Cupertino"
//	to = "San Jose"
//
// Decoding fails only on syntax or schema errors. Semantic problems (unknown
// road endpoints, duplicate cities) are left to Map.Build, which follows the
// graph store's rules and reports what it ignored in a BuildReport.
//
// BayArea returns the built-in demo map, embedded in the binary.
package dataset
