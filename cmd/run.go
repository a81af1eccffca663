package cmd

import (
	"log"

	"github.com/ThatOtherAndrew/Scanline/internal/controller"
	"github.com/ThatOtherAndrew/Scanline/internal/draw"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Draw lines and triangles by clicking",
	Long: `Click twice to draw a line, or three times in triangle mode.

Keys:
  l    line mode
  t    triangle mode
  c    colour select mode, then 0-9 to pick a palette colour
  s    thickness select mode, then 0-9 (x5) or +/- to change point size
  Esc  quit`,
	Run: Run,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func Run(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	log.Printf("Line mode: click two points to draw a line")

	style := settings.Style()
	runWindow("Scanline", settings, func(surface *draw.Surface) inputHandler {
		return controller.New(surface, controller.Options{
			Style:      &style,
			SeedOrigin: settings.SeedOrigin,
		})
	})
}
