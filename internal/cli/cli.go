// Package cli implements the aquarelle command-line interface.
//
// # Commands
//
//   - generate: build a painting from a seed and write PNG/SVG/JSON output
//   - render: re-render a previously exported scene file
//   - serve: HTTP preview server with a render cache
//   - palette: list the color families and their literal colors
//   - completion: shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context so every command shares one
// configured instance.
package cli
