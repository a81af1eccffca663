package cmd

import (
	"fmt"

	"github.com/ThatOtherAndrew/Scanline/internal/palette"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the colours selectable with the digit keys",
	Run:   listPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}

func listPalette(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Palette:")
	for i, c := range palette.Colors {
		marker := " "
		if i == settings.PaletteIndex {
			marker = "*"
		}
		fmt.Fprintf(out, " %s %d  #%02x%02x%02x  %s\n", marker, i, c.R, c.G, c.B, palette.Names[i])
	}
}
