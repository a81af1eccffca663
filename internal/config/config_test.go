package config

import (
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMissingFileCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	got, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom() error = %v", err)
	}
	if *got != *Default() {
		t.Errorf("LoadSettingsFrom() = %+v, want defaults", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default settings file not written: %v", err)
	}
	var written Settings
	if err := json.Unmarshal(data, &written); err != nil {
		t.Fatalf("written settings are not valid JSON: %v", err)
	}
	if written != *Default() {
		t.Errorf("written settings = %+v, want defaults", written)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := writeSettings(t, `{"palette_index": 7, "seed_origin": false}`)
	got, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.PaletteIndex != 7 || got.SeedOrigin {
		t.Errorf("got %+v, want palette 7 and no seed", got)
	}
	if got.Width != 800 || got.Height != 600 || got.Thickness != 5 {
		t.Errorf("unset keys lost their defaults: %+v", got)
	}
}

func TestOutOfRangeValues(t *testing.T) {
	path := writeSettings(t, `{
		"width": 10,
		"height": 100000,
		"palette_index": 12,
		"thickness": 400,
		"circle_radius": 0,
		"background": "#nothex"
	}`)
	got, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Thickness = 100
	if *got != *want {
		t.Errorf("LoadSettingsFrom() = %+v, want %+v", got, want)
	}
}

func TestInvalidJSONFallsBack(t *testing.T) {
	path := writeSettings(t, `{not json`)
	got, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *Default() {
		t.Errorf("LoadSettingsFrom() = %+v, want defaults", got)
	}
}

func TestKnownKeys(t *testing.T) {
	keys := getKnownKeys(&Settings{})
	for _, k := range []string{"width", "height", "background", "palette_index", "thickness", "circle_radius", "seed_origin"} {
		if !keys[k] {
			t.Errorf("getKnownKeys missing %q", k)
		}
	}
	if keys["overlay_alpha"] {
		t.Error("getKnownKeys reported an unknown key")
	}
}

func TestBackgroundColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"#102030", color.RGBA{0x10, 0x20, 0x30, 255}},
		{"black", color.RGBA{0, 0, 0, 255}},
		{"bogus", color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		s := &Settings{Background: tt.in}
		if got := s.BackgroundColor(); got != tt.want {
			t.Errorf("BackgroundColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexColorErrors(t *testing.T) {
	for _, in := range []string{"", "fff", "#fff", "#12345g", "1234567"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q) succeeded, want error", in)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#00ff00", color.RGBA{0, 255, 0, 255}, false},
		{"orange", color.RGBA{255, 128, 0, 255}, false},
		{"navy", color.RGBA{0, 0, 128, 255}, false},
		{"nonsense", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, want error %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
