package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hselder/aquarelle/pkg/buildinfo"
)

// Execute runs the aquarelle CLI and returns an error if any command
// fails. The root command wires the --verbose and --config persistent
// flags and attaches the logger to the command context.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "aquarelle",
		Short: "Aquarelle generates procedural Mondrian-style watercolor paintings",
		Long: `Aquarelle procedurally generates vector paintings in the style of
Mondrian's grid compositions, then simulates a watercolor paint bleed
over each colored region. The same seed always reproduces the same
painting, down to the pixel.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("aquarelle %s\n", buildinfo.String()))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(newGenerateCmd(&configPath))
	root.AddCommand(newRenderCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newPaletteCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
