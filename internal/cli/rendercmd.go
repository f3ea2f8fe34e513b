package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hselder/aquarelle/pkg/config"
	"github.com/hselder/aquarelle/pkg/sceneio"
)

// newRenderCmd creates the render command: re-render a previously
// exported scene file. An imported scene is equivalent input to a fresh
// generation, including identical watercolor layers, so this reproduces
// a painting exactly across tools and machines.
func newRenderCmd(configPath *string) *cobra.Command {
	var (
		output        string
		formatsStr    string
		lineThickness float64
	)

	cmd := &cobra.Command{
		Use:   "render [scene.json]",
		Short: "Render a previously exported scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if lineThickness <= 0 {
				lineThickness = cfg.LineThickness
			}

			logger := loggerFromContext(cmd.Context())
			logger.Infof("Rendering %s", args[0])

			s, err := sceneio.Import(args[0])
			if err != nil {
				return err
			}
			logger.Infof("Loaded scene: seed %d, %dx%d, %d blocks, %d lines",
				s.Seed, s.Width, s.Height, len(s.Blocks), len(s.Lines))

			base := output
			if base == "" {
				base = strings.TrimSuffix(args[0], filepath.Ext(args[0]))
			}
			return writeOutputs(cmd, s, base, formats, lineThickness)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, json (comma-separated)")
	cmd.Flags().Float64Var(&lineThickness, "line-thickness", -1, "base grid stroke width (default from config)")

	return cmd
}
