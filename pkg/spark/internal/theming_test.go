package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#4F3FD9")
	require.NoError(t, err)
	assert.Equal(t, sdl.Color{R: 0x4F, G: 0x3F, B: 0xD9, A: 255}, c)

	c, err = ParseHexColor(" ffffff ")
	require.NoError(t, err)
	assert.Equal(t, HexToColor(0xFFFFFF), c)

	_, err = ParseHexColor("#fff")
	assert.Error(t, err)

	_, err = ParseHexColor("zzzzzz")
	assert.Error(t, err)
}

func TestLoadThemeFileOverridesOnlySetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
accent = "#FF0000"
font = "/fonts/Custom.ttf"
`), 0o644))

	base := GetTheme()
	theme, err := LoadThemeFile(path, base)
	require.NoError(t, err)

	assert.Equal(t, HexToColor(0xFF0000), theme.AccentColor)
	assert.Equal(t, "/fonts/Custom.ttf", theme.FontPath)
	assert.Equal(t, base.HighlightColor, theme.HighlightColor)
	assert.Equal(t, base.BackgroundColor, theme.BackgroundColor)
}

func TestLoadThemeFileRejectsBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`highlight = "blue"`), 0o644))

	_, err := LoadThemeFile(path, GetTheme())
	assert.ErrorContains(t, err, "invalid color")
}
