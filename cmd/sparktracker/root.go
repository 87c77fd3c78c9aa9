package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/adevinta/spark-ios-sub000/pkg/spark"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/constants"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/tracker"
)

type rootFlags struct {
	configPath  string
	title       string
	policy      string
	pages       int
	currentPage int
	vertical    bool
	disabled    bool
	locale      string
	logLevel    string
	logPath     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "sparktracker",
		Short:         "Show a touch-driven progress tracker and print the chosen step",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", os.Getenv(constants.ConfigPathEnvVar), "Tracker config file (.toml, .yaml)")
	pf.StringVarP(&flags.title, "title", "t", "Progress", "Title shown above the tracker")
	pf.StringVarP(&flags.policy, "policy", "p", "", "Touch policy: none, discrete, continuous, independent")
	pf.IntVarP(&flags.pages, "pages", "n", 0, "Number of steps")
	pf.IntVar(&flags.currentPage, "current", 0, "Initially selected step (zero based)")
	pf.BoolVar(&flags.vertical, "vertical", false, "Lay the steps out vertically")
	pf.BoolVar(&flags.disabled, "disabled", false, "Ignore touches and navigation")
	pf.StringVar(&flags.locale, "locale", "", "Language of labels and help text (e.g. en, fr)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logPath, "log-file", "", "Write logs to this file as well as stdout")

	cmd.AddCommand(newSDLCmd(flags))
	cmd.AddCommand(newTermCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))

	return cmd
}

// resolveConfig loads the config file, if any, and applies the flags the user
// set explicitly on top of it.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (*tracker.Config, error) {
	cfg := tracker.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := tracker.LoadConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	changed := cmd.Flags().Changed
	if changed("policy") {
		cfg.Policy = flags.policy
	}
	if changed("pages") {
		cfg.Pages = flags.pages
		if len(cfg.Labels) > cfg.Pages {
			cfg.Labels = cfg.Labels[:max(cfg.Pages, 0)]
		}
	}
	if changed("current") {
		cfg.CurrentPage = flags.currentPage
	}
	if changed("vertical") {
		cfg.Orientation = tracker.OrientationHorizontal.String()
		if flags.vertical {
			cfg.Orientation = tracker.OrientationVertical.String()
		}
	}
	if changed("disabled") {
		cfg.Disabled = flags.disabled
	}
	if changed("locale") {
		cfg.Locale = flags.locale
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyLogging(flags *rootFlags) {
	if flags.logPath != "" {
		spark.SetLogPath(flags.logPath)
	}
	if flags.logLevel != "" {
		spark.SetRawLogLevel(flags.logLevel)
	}
}

func applyLocale(cfg *tracker.Config) error {
	if cfg.Locale == "" {
		return nil
	}
	return spark.SetLocale(cfg.Locale)
}

func printResult(w io.Writer, page int, label string, visited []int) {
	fmt.Fprintf(w, "page=%d label=%q visited=%v\n", page, label, visited)
}

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a tracker config and print the resolved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pages=%d current=%d policy=%s orientation=%s disabled=%t\n",
				cfg.Pages, cfg.CurrentPage, cfg.Policy, cfg.Orientation, cfg.Disabled)
			return nil
		},
	}
}
