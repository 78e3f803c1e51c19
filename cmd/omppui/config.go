package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/omppui/internal/config"
	"github.com/jask/omppui/internal/format"
)

func newConfigCmd(cfg *config.Config) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, format.KeyValues(
				"file", config.Path(),
				"catalog.path", cfg.Catalog.Path,
				"ui.lang", cfg.UI.Lang,
				"ui.date_format", cfg.UI.DateFormat,
				"log.level", cfg.Log.Level,
			)); err != nil {
				return err
			}
			if !save {
				return nil
			}
			if err := config.Save(*cfg); err != nil {
				return err
			}
			_, err := fmt.Fprintf(out, "saved %s\n", config.Path())
			return err
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write the effective configuration to the config file")
	return cmd
}
