package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/omppui/internal/catalog"
	"github.com/jask/omppui/internal/config"
	"github.com/jask/omppui/internal/format"
	"github.com/jask/omppui/internal/logx"
	"github.com/jask/omppui/internal/omdb"
	"github.com/jask/omppui/internal/session"
	"github.com/jask/omppui/internal/store"
)

func newSelectCmd(cfg *config.Config) *cobra.Command {
	var (
		runIdx       int
		worksetIdx   int
		fingerprints bool
	)
	cmd := &cobra.Command{
		Use:   "select <model>",
		Short: "Load a model with its runs and worksets and show the selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := session.Start(ctx, nil)
			ctx = logx.ContextWithSessionLogger(ctx, logx.WithSession(logx.Ctx(ctx), s.ID()), s.ID())
			defer func() {
				if err := s.Close(); err != nil {
					logx.Ctx(ctx).Warn("session close failed", "err", err)
				}
			}()

			sel := catalog.Selection{Model: args[0], Run: -1, Workset: -1, Lang: cfg.UI.Lang}
			if cmd.Flags().Changed("run") {
				sel.Run = runIdx
			}
			if cmd.Flags().Changed("workset") {
				sel.Workset = worksetIdx
			}
			err := withCatalog(ctx, cfg, func(cat *catalog.Catalog) error {
				return cat.Load(ctx, s, sel)
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, renderSelection(cfg, s.Store())); err != nil {
				return err
			}
			if fingerprints {
				pairs := make([]string, 0, 2*len(store.Fields))
				for _, f := range store.Fields {
					pairs = append(pairs, string(f), s.Store().Fingerprint(f))
				}
				if _, err := fmt.Fprintln(out, "\n"+format.KeyValues(pairs...)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&runIdx, "run", 0, "run list index")
	cmd.Flags().IntVar(&worksetIdx, "workset", 0, "workset list index")
	cmd.Flags().BoolVar(&fingerprints, "fingerprints", false, "print state fingerprints")
	return cmd
}

func renderSelection(cfg *config.Config, st *store.Store) string {
	md := st.CurrentModel()
	rt := st.CurrentRun()
	wt := st.CurrentWorkset()

	run, status, elapsed := "-", "-", "-"
	if omdb.IsNotEmptyRunText(rt) {
		run = rt.Name
		status = format.Status(rt.Status)
		elapsed = omdb.ToIntervalStr(rt.CreateDateTime, rt.UpdateDateTime)
	}
	ws := "-"
	if omdb.IsNotEmptyWorksetText(wt) {
		ws = wt.Name
		if wt.IsReadonly {
			ws += " (" + st.WordByCode("read-only") + ")"
		}
	}
	lang := st.UILang()
	if lang == "" {
		lang = md.Model.DefaultLangCode
	}

	var b strings.Builder
	b.WriteString(format.Title(omdb.ModelTitle(md)))
	b.WriteString("\n")
	b.WriteString(format.KeyValues(
		"model", md.Model.Name,
		"digest", md.Model.Digest,
		"created", displayTime(cfg, md.Model.CreateDateTime),
		"language", lang,
		"runs", fmt.Sprintf("%d", omdb.RunTextCount(st.RunList())),
		"run", run,
		"status", status,
		"elapsed", elapsed,
		"worksets", fmt.Sprintf("%d", omdb.WorksetTextCount(st.WorksetList())),
		"workset", ws,
		"parameters", fmt.Sprintf("%d", omdb.ParamCount(md)),
		"tables", fmt.Sprintf("%d", omdb.OutTableCount(md)),
	))
	return b.String()
}
