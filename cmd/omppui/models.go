package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jask/omppui/internal/catalog"
	"github.com/jask/omppui/internal/config"
	"github.com/jask/omppui/internal/format"
	"github.com/jask/omppui/internal/omdb"
)

func newModelsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List models with run and workset counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withCatalog(ctx, cfg, func(cat *catalog.Catalog) error {
				sums, err := cat.Summaries(ctx)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(sums))
				for _, s := range sums {
					rows = append(rows, []string{s.Name, s.Version, strconv.Itoa(s.RunCount), strconv.Itoa(s.WorksetCount), s.Digest, s.Descr})
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), format.Table([]string{"MODEL", "VERSION", "RUNS", "WORKSETS", "DIGEST", "DESCRIPTION"}, rows))
				return err
			})
		},
	}
}

func newRunsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "runs <model>",
		Short: "List model runs with status and elapsed time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withCatalog(ctx, cfg, func(cat *catalog.Catalog) error {
				rl, err := cat.RunList(ctx, args[0])
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(rl))
				for k, rt := range rl {
					rows = append(rows, []string{
						strconv.Itoa(k),
						rt.Name,
						format.Status(rt.Status),
						fmt.Sprintf("%d/%d", rt.SubCompleted, rt.SubCount),
						displayTime(cfg, rt.CreateDateTime),
						omdb.ToIntervalStr(rt.CreateDateTime, rt.UpdateDateTime),
						omdb.DescrOfTxt(rt.Txt),
					})
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), format.Table([]string{"#", "RUN", "STATUS", "SUB-VALUES", "CREATED", "ELAPSED", "DESCRIPTION"}, rows))
				return err
			})
		},
	}
}

func newWorksetsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "worksets <model>",
		Short: "List model worksets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withCatalog(ctx, cfg, func(cat *catalog.Catalog) error {
				wl, err := cat.WorksetList(ctx, args[0])
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(wl))
				for k, wt := range wl {
					ro := "no"
					if wt.IsReadonly {
						ro = "yes"
					}
					rows = append(rows, []string{
						strconv.Itoa(k),
						wt.Name,
						ro,
						strconv.Itoa(len(wt.Param)),
						displayTime(cfg, wt.UpdateDateTime),
						omdb.DescrOfTxt(wt.Txt),
					})
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), format.Table([]string{"#", "WORKSET", "READONLY", "PARAMS", "UPDATED", "DESCRIPTION"}, rows))
				return err
			})
		},
	}
}

func newParamsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "params <model>",
		Short: "List model parameters with type and size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withCatalog(ctx, cfg, func(cat *catalog.Catalog) error {
				md, err := cat.Model(ctx, args[0])
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(md.ParamTxt))
				for _, pt := range md.ParamTxt {
					size := omdb.ParamSizeByName(md, pt.Param.Name)
					typ := omdb.TypeTextByID(md, pt.Param.TypeID)
					rows = append(rows, []string{
						pt.Param.Name,
						typ.Type.Name,
						strconv.Itoa(size.Rank),
						dimString(size.DimSize),
						strconv.Itoa(size.DimTotal),
						omdb.DescrOfDescrNote(pt.DescrNote),
					})
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), format.Table([]string{"PARAMETER", "TYPE", "RANK", "DIMS", "SIZE", "DESCRIPTION"}, rows))
				return err
			})
		},
	}
}

func newTablesCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tables <model>",
		Short: "List output tables with dimensions, expressions and accumulators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withCatalog(ctx, cfg, func(cat *catalog.Catalog) error {
				md, err := cat.Model(ctx, args[0])
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(md.TableTxt))
				for _, tt := range md.TableTxt {
					size := omdb.TableSizeByName(md, tt.Table.Name)
					rows = append(rows, []string{
						tt.Table.Name,
						strconv.Itoa(size.Rank),
						dimString(size.DimSize),
						strconv.Itoa(size.ExprCount),
						fmt.Sprintf("%d/%d", size.AccCount, size.AllAccCount),
						tt.TableDescr,
					})
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), format.Table([]string{"TABLE", "RANK", "DIMS", "EXPRS", "ACCS", "DESCRIPTION"}, rows))
				return err
			})
		},
	}
}

func dimString(dims []int) string {
	if len(dims) == 0 {
		return "-"
	}
	s := ""
	for k, n := range dims {
		if k > 0 {
			s += "x"
		}
		s += strconv.Itoa(n)
	}
	return s
}
