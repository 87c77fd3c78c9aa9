package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/adevinta/spark-ios-sub000/pkg/spark"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/tracker"
)

type sdlFlags struct {
	width       int32
	height      int32
	fullscreen  bool
	cannoli     bool
	themePath   string
	fontPath    string
	touchDevice string
	swapAxes    bool
}

func newSDLCmd(root *rootFlags) *cobra.Command {
	flags := &sdlFlags{}

	cmd := &cobra.Command{
		Use:   "sdl",
		Short: "Show the tracker in an SDL window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSDL(cmd, root, flags)
		},
	}

	cmd.Flags().Int32Var(&flags.width, "width", 0, "Window width, zero for the display width")
	cmd.Flags().Int32Var(&flags.height, "height", 0, "Window height, zero for the display height")
	cmd.Flags().BoolVar(&flags.fullscreen, "fullscreen", false, "Open a borderless fullscreen window")
	cmd.Flags().BoolVar(&flags.cannoli, "cannoli", false, "Use the Cannoli theme")
	cmd.Flags().StringVar(&flags.themePath, "theme", "", "TOML theme overrides")
	cmd.Flags().StringVar(&flags.fontPath, "font", "", "TTF font used for all text")
	cmd.Flags().StringVar(&flags.touchDevice, "touch-device", "", "evdev touchscreen, e.g. /dev/input/event1")
	cmd.Flags().BoolVar(&flags.swapAxes, "touch-swap-axes", false, "Touch panel reports X and Y swapped")

	return cmd
}

func runSDL(cmd *cobra.Command, root *rootFlags, flags *sdlFlags) error {
	cfg, err := resolveConfig(cmd, root)
	if err != nil {
		return err
	}
	applyLogging(root)

	err = spark.Init(spark.Options{
		WindowTitle: root.title,
		WindowOptions: spark.WindowOptions{
			Width:      flags.width,
			Height:     flags.height,
			Resizable:  !flags.fullscreen,
			Borderless: flags.fullscreen,
			Fullscreen: flags.fullscreen,
		},
		IsCannoli:       flags.cannoli,
		FontPath:        flags.fontPath,
		ThemePath:       flags.themePath,
		Locale:          cfg.Locale,
		TouchDevicePath: flags.touchDevice,
		TouchSwapAxes:   flags.swapAxes,
		LogPath:         root.logPath,
		LogLevel:        root.logLevel,
	})
	if err != nil {
		return err
	}
	defer spark.Close()

	settings := cfg.Settings()
	steps := make([]spark.Step, cfg.Pages)
	for i := range steps {
		if i < len(cfg.Labels) {
			steps[i].Label = cfg.Labels[i]
		}
	}

	opts := spark.DefaultProgressTrackerSettings()
	opts.Policy = settings.Policy
	opts.Orientation = settings.Orientation
	opts.InitialPage = settings.CurrentPage
	opts.Disabled = settings.Disabled
	if cfg.Spacing > 0 {
		opts.Spacing = cfg.Spacing
	}

	res, err := spark.ProgressTracker(root.title, steps, opts)
	if errors.Is(err, spark.ErrCancelled) {
		spark.GetLogger().Info("Progress tracker cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), res.Page, labelFor(cfg, res.Page), res.Visited)
	return nil
}

func labelFor(cfg *tracker.Config, page int) string {
	if page >= 0 && page < len(cfg.Labels) {
		return cfg.Labels[page]
	}
	return ""
}
