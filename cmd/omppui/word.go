package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/omppui/internal/catalog"
	"github.com/jask/omppui/internal/config"
	"github.com/jask/omppui/internal/session"
)

func newWordCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "word <model> <code>",
		Short: "Resolve a word code to its label for the model and language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := session.Start(ctx, nil)
			err := withCatalog(ctx, cfg, func(cat *catalog.Catalog) error {
				return cat.Load(ctx, s, catalog.Selection{Model: args[0], Run: -1, Workset: -1, Lang: cfg.UI.Lang})
			})
			if err == nil {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Store().WordByCode(args[1]))
			}
			if cerr := s.Close(); cerr != nil && err == nil {
				err = cerr
			}
			return err
		},
	}
}
