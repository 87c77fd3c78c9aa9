// Package spark provides a touch-driven progress tracker for SDL applications
// on embedded Linux devices, particularly handhelds running custom firmware
// like Cannoli.
//
// The package handles SDL initialization, raw touchscreen input, theming and
// localization. The tracker state machine itself lives in package tracker and
// can be used without SDL.
package spark

import (
	"log/slog"
	"os"
	"strings"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/constants"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/locale"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/logging"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/platform/cannoli"
)

const defaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// WindowOptions selects the SDL window flags and size.
type WindowOptions = internal.WindowOptions

// Options configures the spark framework initialization.
type Options struct {
	WindowTitle          string        // Window title displayed in windowed mode
	ShowBackground       bool          // Whether to render the theme background
	WindowOptions        WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32        // Custom accent color
	IsCannoli            bool          // Enable Cannoli CFW theming
	FontPath             string        // Overrides the platform font
	ThemePath            string        // TOML theme overrides, also read from SPARK_THEME
	Locale               string        // BCP 47 tag for labels and help text, also read from SPARK_LOCALE
	TouchDevicePath      string        // evdev touchscreen, also read from SPARK_TOUCH_DEVICE
	TouchSwapAxes        bool          // Touch panel reports X and Y swapped
	TouchInvertX         bool
	TouchInvertY         bool
	LogPath              string // Full path for log file including filename (creates parent directories)
	LogLevel             string // Application log level, also read from SPARK_LOG_LEVEL
}

// Init initializes the SDL subsystems, theming, localization and input.
// Must be called before ProgressTracker.
func Init(options Options) error {
	if options.LogPath != "" {
		logging.SetLogPath(options.LogPath)
	}

	level := firstNonEmpty(options.LogLevel, os.Getenv(constants.LogLevelEnvVar))
	if level != "" {
		logging.SetRawLogLevel(level)
	}
	if constants.IsDevMode() {
		logging.SetInternalLogLevel(slog.LevelDebug)
	} else {
		logging.SetInternalLogLevel(slog.LevelError)
	}

	fontPath := firstNonEmpty(options.FontPath, defaultFontPath)
	theme := cannoli.InitCannoliTheme(fontPath)
	if !options.IsCannoli {
		theme = internal.GetTheme()
		theme.FontPath = fontPath
	}

	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}

	if bg := os.Getenv(constants.BackgroundPathEnvVar); bg != "" {
		theme.BackgroundImagePath = bg
	}

	if path := firstNonEmpty(options.ThemePath, os.Getenv(constants.ThemePathEnvVar)); path != "" {
		loaded, err := internal.LoadThemeFile(path, theme)
		if err != nil {
			return NewInfrastructureError("load_theme", err)
		}
		theme = loaded
	}
	internal.SetTheme(theme)

	if tag := firstNonEmpty(options.Locale, os.Getenv(constants.LocaleEnvVar)); tag != "" {
		if err := locale.SetLocale(tag); err != nil {
			return NewInfrastructureError("set_locale", err)
		}
	}

	touch := internal.TouchConfig{
		DevicePath: firstNonEmpty(options.TouchDevicePath, os.Getenv(constants.TouchDeviceEnvVar)),
		SwapXY:     options.TouchSwapAxes || envFlag(constants.TouchSwapAxesEnvVar),
		InvertX:    options.TouchInvertX,
		InvertY:    options.TouchInvertY,
	}
	switch strings.ToLower(os.Getenv(constants.TouchInvertAxesEnvVar)) {
	case "x":
		touch.InvertX = true
	case "y":
		touch.InvertY = true
	case "xy", "both":
		touch.InvertX, touch.InvertY = true, true
	}

	if err := internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, touch); err != nil {
		return NewInfrastructureError("init", err)
	}

	return nil
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	logging.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}

// SetLocale selects the language of labels and help text.
func SetLocale(tag string) error {
	return locale.SetLocale(tag)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func envFlag(name string) bool {
	switch strings.ToLower(os.Getenv(name)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
