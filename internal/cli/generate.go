package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hselder/aquarelle/pkg/config"
	"github.com/hselder/aquarelle/pkg/render"
	"github.com/hselder/aquarelle/pkg/scene"
	"github.com/hselder/aquarelle/pkg/sceneio"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output        string   // output file path or base path for multiple formats
	formats       []string // output formats: png, svg, json
	seed          int64
	sizeMult      float64
	lineThickness float64
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"png": true, "svg": true, "json": true}

func parseFormats(s string) []string {
	if s == "" {
		return []string{"png"}
	}
	return strings.Split(s, ",")
}

func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'png', 'svg', or 'json')", f)
		}
	}
	return nil
}

// newGenerateCmd creates the generate command: build a scene from the
// seed and write it out in the requested formats.
func newGenerateCmd(configPath *string) *cobra.Command {
	var formatsStr string
	opts := generateOpts{seed: -1, sizeMult: -1, lineThickness: -1}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a painting and write PNG, SVG, or scene JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			applyConfig(&opts, cfg)
			return runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, json (comma-separated)")
	cmd.Flags().Int64Var(&opts.seed, "seed", -1, "random seed, 0-999999 (default from config)")
	cmd.Flags().Float64Var(&opts.sizeMult, "size", -1, "size multiplier for the 1200x600 base canvas (default from config)")
	cmd.Flags().Float64Var(&opts.lineThickness, "line-thickness", -1, "base grid stroke width (default from config)")

	return cmd
}

// applyConfig fills unset flags (-1 sentinels) from the config file.
func applyConfig(opts *generateOpts, cfg config.Config) {
	if opts.seed < 0 {
		opts.seed = cfg.Seed
	}
	if opts.sizeMult <= 0 {
		opts.sizeMult = cfg.SizeMultiplier
	}
	if opts.lineThickness <= 0 {
		opts.lineThickness = cfg.LineThickness
	}
}

func runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	width := int(float64(scene.BaseWidth) * opts.sizeMult)
	height := int(float64(scene.BaseHeight) * opts.sizeMult)
	logger.Infof("Generating %dx%d painting with seed %d", width, height, opts.seed)

	p := newProgress(logger)
	s, err := scene.Build(opts.seed, width, height)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Generated %d blocks, %d lines", len(s.Blocks), len(s.Lines)))

	base := opts.output
	if base == "" {
		base = fmt.Sprintf("aquarelle_%d", opts.seed)
	}
	return writeOutputs(cmd, s, base, opts.formats, opts.lineThickness)
}

// writeOutputs renders the scene into every requested format. With one
// format, base is used as-is when it already carries the extension.
func writeOutputs(cmd *cobra.Command, s *scene.Scene, base string, formats []string, thickness float64) error {
	logger := loggerFromContext(cmd.Context())
	renderOpts := render.Options{LineThickness: thickness}

	for _, format := range formats {
		path := outputPath(base, format, len(formats) == 1)

		p := newProgress(logger)
		switch format {
		case "json":
			if err := sceneio.Export(path, s); err != nil {
				return err
			}
		case "svg":
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			if err := render.SVG(f, s, renderOpts); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		case "png":
			data, err := render.PNG(s, renderOpts)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
		p.done("Wrote " + path)
	}
	return nil
}

// outputPath derives the file path for one format. A single-format run
// keeps an explicit extension on the base path; otherwise the format's
// extension is appended.
func outputPath(base, format string, single bool) string {
	if single && strings.TrimPrefix(filepath.Ext(base), ".") == format {
		return base
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
}
