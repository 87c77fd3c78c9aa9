// Package constants defines the shared input, environment and timing values
// used by the spark components.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the components.
const (
	EnvironmentEnvVar     = "ENVIRONMENT"
	WindowWidthEnvVar     = "WINDOW_WIDTH"  // Window width in development mode
	WindowHeightEnvVar    = "WINDOW_HEIGHT" // Window height in development mode
	TouchDeviceEnvVar     = "SPARK_TOUCH_DEVICE"
	LogLevelEnvVar        = "SPARK_LOG_LEVEL"
	BackgroundPathEnvVar  = "BACKGROUND_PATH"
	ThemePathEnvVar       = "SPARK_THEME"
	LocaleEnvVar          = "SPARK_LOCALE"
	ConfigPathEnvVar      = "SPARK_TRACKER_CONFIG"
	TouchSwapAxesEnvVar   = "SPARK_TOUCH_SWAP_XY"
	TouchInvertAxesEnvVar = "SPARK_TOUCH_INVERT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay             = 20 * time.Millisecond  // Debounce delay between input events
	DefaultRepeatDelay            = 300 * time.Millisecond // Hold time before a direction repeats
	DefaultRepeatInterval         = 120 * time.Millisecond // Time between repeats while held
	DefaultTitleSpacing     int32 = 5                      // Vertical spacing below title text
	DefaultIndicatorSpacing       = 8.0                    // Gap between step indicators
)
