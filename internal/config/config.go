package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/ThatOtherAndrew/Scanline/internal/models"
	"github.com/ThatOtherAndrew/Scanline/internal/palette"
)

const (
	minWindowSide = 64
	maxWindowSide = 8192
)

type Settings struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Background   string  `json:"background"`
	PaletteIndex int     `json:"palette_index"`
	Thickness    float32 `json:"thickness"`
	CircleRadius int     `json:"circle_radius"`
	SeedOrigin   bool    `json:"seed_origin"`
}

func Default() *Settings {
	return &Settings{
		Width:        800,
		Height:       600,
		Background:   "#ffffff",
		PaletteIndex: models.DefaultPaletteIndex,
		Thickness:    models.DefaultThickness,
		CircleRadius: 50,
		SeedOrigin:   true,
	}
}

// Style is the initial drawing style described by the settings.
func (s *Settings) Style() models.Style {
	return models.Style{PaletteIndex: s.PaletteIndex, Thickness: s.Thickness}
}

// BackgroundColor parses Background, which is either #rrggbb or a colour
// name. It falls back to white.
func (s *Settings) BackgroundColor() color.RGBA {
	if c, err := ParseColor(s.Background); err == nil {
		return c
	}
	return color.RGBA{0xff, 0xff, 0xff, 0xff}
}

// ParseColor accepts #rrggbb or a colour name.
func ParseColor(s string) (color.RGBA, error) {
	if strings.HasPrefix(s, "#") {
		return ParseHexColor(s)
	}
	if c, ok := palette.Lookup(s); ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown colour %q: want #rrggbb or a colour name", s)
}

func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return c, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	c.R, c.G, c.B = uint8(v>>16), uint8(v>>8), uint8(v)
	return c, nil
}

func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "scanline")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(settingsPath)
}

// LoadSettingsFrom reads settings from path, writing a default file if
// none exists. Out-of-range values are replaced by their defaults.
func LoadSettingsFrom(settingsPath string) (*Settings, error) {
	defaultSettings := Default()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, err
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	validate(settings, defaultSettings)
	return settings, nil
}

func validate(settings, defaults *Settings) {
	if settings.Width < minWindowSide || settings.Width > maxWindowSide {
		log.Printf("Invalid width %d, must be between %d and %d, using default %d",
			settings.Width, minWindowSide, maxWindowSide, defaults.Width)
		settings.Width = defaults.Width
	}
	if settings.Height < minWindowSide || settings.Height > maxWindowSide {
		log.Printf("Invalid height %d, must be between %d and %d, using default %d",
			settings.Height, minWindowSide, maxWindowSide, defaults.Height)
		settings.Height = defaults.Height
	}
	if !palette.Valid(settings.PaletteIndex) {
		log.Printf("Invalid palette_index %d, must be between 0 and %d, using default %d",
			settings.PaletteIndex, palette.Len()-1, defaults.PaletteIndex)
		settings.PaletteIndex = defaults.PaletteIndex
	}
	if clamped := models.ClampThickness(settings.Thickness); clamped != settings.Thickness {
		log.Printf("Thickness %.1f out of range, clamping to %.1f", settings.Thickness, clamped)
		settings.Thickness = clamped
	}
	if settings.CircleRadius < 2 {
		log.Printf("Invalid circle_radius %d, must be at least 2, using default %d",
			settings.CircleRadius, defaults.CircleRadius)
		settings.CircleRadius = defaults.CircleRadius
	}
	if _, err := ParseColor(settings.Background); err != nil {
		log.Printf("Invalid background %q, using default %s", settings.Background, defaults.Background)
		settings.Background = defaults.Background
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			// Handle json tags like "field,omitempty"
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
