package main

import (
	"github.com/spf13/cobra"

	"github.com/adevinta/spark-ios-sub000/pkg/spark"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/term"
)

func newTermCmd(root *rootFlags) *cobra.Command {
	var hidePosition bool

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Show the tracker in the terminal, driven by mouse and arrow keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, root)
			if err != nil {
				return err
			}
			applyLogging(root)
			if err := applyLocale(cfg); err != nil {
				return err
			}

			res, err := term.Run(term.Options{
				Title:        root.title,
				Settings:     cfg.Settings(),
				HidePosition: hidePosition,
			})
			if err != nil {
				return err
			}
			if !res.Confirmed {
				spark.GetLogger().Info("Progress tracker cancelled")
				return nil
			}

			printResult(cmd.OutOrStdout(), res.Page, labelFor(cfg, res.Page), res.Visited)
			return nil
		},
	}

	cmd.Flags().BoolVar(&hidePosition, "hide-position", false, "Hide the step position line")
	return cmd
}
