package cmd

import (
	"log"
	"log/slog"
	"os"

	"github.com/ThatOtherAndrew/Scanline/internal/config"
	"github.com/ThatOtherAndrew/Scanline/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "scanline",
	Short: "Interactive Bresenham line, triangle and circle rasterizer",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	log.SetFlags(0)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every state change")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default ~/.config/scanline/settings.json)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSettings() *config.Settings {
	var (
		settings *config.Settings
		err      error
	)
	if configPath != "" {
		settings, err = config.LoadSettingsFrom(configPath)
	} else {
		settings, err = config.LoadSettings()
	}
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}
	return settings
}
