package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	"github.com/jask/omppui/internal/config"
	"github.com/jask/omppui/internal/logx"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	cfg, cfgErr := config.Load()
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(logx.ApplyLevel(pslog.Options{Mode: pslog.ModeConsole}, cfg.Log.Level)),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	if cfgErr != nil {
		logger.With("err", cfgErr).Error("omppui config failed")
		return 1
	}

	root := newRootCmd(&cfg)
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("omppui command failed")
		return 1
	}
	return 0
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "omppui",
		Short:         "Browse openM++ models, runs and worksets from a local catalog",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&cfg.Catalog.Path, "catalog", cfg.Catalog.Path, "catalog database path")
	root.PersistentFlags().StringVar(&cfg.UI.Lang, "lang", cfg.UI.Lang, "language code, model default when empty")

	root.AddCommand(newSeedCmd(cfg))
	root.AddCommand(newModelsCmd(cfg))
	root.AddCommand(newSelectCmd(cfg))
	root.AddCommand(newRunsCmd(cfg))
	root.AddCommand(newWorksetsCmd(cfg))
	root.AddCommand(newParamsCmd(cfg))
	root.AddCommand(newTablesCmd(cfg))
	root.AddCommand(newWordCmd(cfg))
	root.AddCommand(newConfigCmd(cfg))
	root.AddCommand(newVersionCmd())

	return root
}
