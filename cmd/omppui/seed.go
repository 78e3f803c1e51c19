package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/omppui/internal/catalog"
	"github.com/jask/omppui/internal/config"
	"github.com/jask/omppui/internal/logx"
)

func newSeedCmd(cfg *config.Config) *cobra.Command {
	var fixture string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create or update the catalog from the built-in or a YAML fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := catalog.DefaultFixture()
			if fixture != "" {
				fx, err = catalog.LoadFixture(fixture)
			}
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return withCatalog(ctx, cfg, func(cat *catalog.Catalog) error {
				if err := cat.Seed(ctx, fx); err != nil {
					return err
				}
				logx.Ctx(ctx).Info("catalog seeded", "path", cfg.Catalog.Path, "models", len(fx.Models))
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "seeded %d models into %s\n", len(fx.Models), cfg.Catalog.Path)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&fixture, "fixture", "", "YAML fixture file")
	return cmd
}
