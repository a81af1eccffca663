package cmd

import (
	"github.com/ThatOtherAndrew/Scanline/internal/controller"
	"github.com/ThatOtherAndrew/Scanline/internal/draw"
	"github.com/ThatOtherAndrew/Scanline/internal/palette"
	"github.com/spf13/cobra"
)

var circleCmd = &cobra.Command{
	Use:   "circle",
	Short: "Place and resize a Bresenham circle",
	Long: `Click to move the circle's center.

Keys:
  Up/Down  grow or shrink the radius by 2 (minimum 2)
  c        random colour
  0-9      palette colour
  Esc      quit`,
	Run: runCircle,
}

func init() {
	rootCmd.AddCommand(circleCmd)
}

func runCircle(cmd *cobra.Command, args []string) {
	settings := loadSettings()

	runWindow("Scanline - circle", settings, func(surface *draw.Surface) inputHandler {
		return controller.NewCircle(surface, controller.CircleOptions{
			Radius: settings.CircleRadius,
			Color:  palette.Color(settings.PaletteIndex),
		})
	})
}
