package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the spark components.
// Colors come from a platform preset and may be overridden by a theme file.
type Theme struct {
	AccentColor          sdl.Color // Current step indicator
	HighlightColor       sdl.Color // Drag target indicator
	CompletedColor       sdl.Color // Steps before the current one
	IndicatorColor       sdl.Color // Upcoming steps
	DisabledColor        sdl.Color // Every indicator while the tracker is disabled
	TextColor            sdl.Color // Labels
	HighlightedTextColor sdl.Color // Text drawn on top of a filled indicator
	HintColor            sdl.Color // Footer help text
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme = Theme{
	AccentColor:          HexToColor(0x4F3FD9),
	HighlightColor:       HexToColor(0x9B90F0),
	CompletedColor:       HexToColor(0x2E7D32),
	IndicatorColor:       HexToColor(0xB0B0B0),
	DisabledColor:        HexToColor(0x5A5A5A),
	TextColor:            HexToColor(0xFFFFFF),
	HighlightedTextColor: HexToColor(0x000000),
	HintColor:            HexToColor(0xB4B4B4),
	BackgroundColor:      HexToColor(0x000000),
}

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB into an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB".
func ParseHexColor(s string) (sdl.Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 {
		return sdl.Color{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexToColor(uint32(v)), nil
}

// themeFile is the TOML layout of a theme override file. Empty keys keep the
// base theme's value.
type themeFile struct {
	Accent          string `toml:"accent"`
	Highlight       string `toml:"highlight"`
	Completed       string `toml:"completed"`
	Indicator       string `toml:"indicator"`
	Disabled        string `toml:"disabled"`
	Text            string `toml:"text"`
	HighlightedText string `toml:"highlighted_text"`
	Hint            string `toml:"hint"`
	Background      string `toml:"background"`
	Font            string `toml:"font"`
	BackgroundImage string `toml:"background_image"`
}

// LoadThemeFile applies the overrides found in a TOML file on top of base.
func LoadThemeFile(path string, base Theme) (Theme, error) {
	var tf themeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return base, fmt.Errorf("theme %s: %w", path, err)
	}

	colors := []struct {
		raw string
		dst *sdl.Color
	}{
		{tf.Accent, &base.AccentColor},
		{tf.Highlight, &base.HighlightColor},
		{tf.Completed, &base.CompletedColor},
		{tf.Indicator, &base.IndicatorColor},
		{tf.Disabled, &base.DisabledColor},
		{tf.Text, &base.TextColor},
		{tf.HighlightedText, &base.HighlightedTextColor},
		{tf.Hint, &base.HintColor},
		{tf.Background, &base.BackgroundColor},
	}

	for _, c := range colors {
		if c.raw == "" {
			continue
		}
		parsed, err := ParseHexColor(c.raw)
		if err != nil {
			return base, fmt.Errorf("theme %s: %w", path, err)
		}
		*c.dst = parsed
	}

	if tf.Font != "" {
		base.FontPath = tf.Font
	}
	if tf.BackgroundImage != "" {
		base.BackgroundImagePath = tf.BackgroundImage
	}

	return base, nil
}
