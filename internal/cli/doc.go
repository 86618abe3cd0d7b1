// Package cli implements the citymap command line: flag parsing, map loading
// and the query subcommands. Run is the single entry point; it returns an
// *ExitError carrying the process exit code on failure.
package cli
