package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hselder/aquarelle/pkg/scene"
)

var (
	styleFamily = lipgloss.NewStyle().Bold(true).Width(12)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// newPaletteCmd creates the palette command, which prints every color
// family with terminal swatches of its literal colors.
func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the color families and their literal colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, family := range scene.Families {
				line := styleFamily.Render(family)
				for _, c := range scene.Palettes[family] {
					hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
					swatch := lipgloss.NewStyle().
						Background(lipgloss.Color(hex)).
						Render("  ")
					line += fmt.Sprintf(" %s %s", swatch, hex)
				}
				if family == scene.FamilyWhite {
					line += styleDim.Render("  (reserved: no paint)")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
