// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal"
)

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		AccentColor:          internal.HexToColor(0x008080),
		HighlightColor:       internal.HexToColor(0x66B2B2),
		CompletedColor:       internal.HexToColor(0x004C4C),
		IndicatorColor:       internal.HexToColor(0xC8C8C8),
		DisabledColor:        internal.HexToColor(0x8C8C8C),
		TextColor:            internal.HexToColor(0x000000),
		HighlightedTextColor: internal.HexToColor(0xFFFFFF),
		HintColor:            internal.HexToColor(0x000000),
		BackgroundColor:      internal.HexToColor(0xFFFFFF),
		FontPath:             fontPath,
	}
}
