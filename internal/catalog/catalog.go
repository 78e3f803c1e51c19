// Package catalog is an offline, read-mostly source of model metadata, runs,
// worksets and word lists kept in SQLite. It produces the same records a
// model service would send to the browser.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jask/omppui/internal/omdb"
)

// ErrNotFound is returned when a model is not in the catalog.
var ErrNotFound = errors.New("not found")

// Catalog reads model records from a catalog database.
type Catalog struct {
	db *sql.DB
}

func New(db *sql.DB) *Catalog {
	return &Catalog{db: db}
}

// ModelSummary is one row of the model list with its run and workset counts.
type ModelSummary struct {
	Name         string
	Digest       string
	Version      string
	Descr        string
	RunCount     int
	WorksetCount int
}

type modelRow struct {
	id   int
	dic  omdb.ModelDic
	text omdb.DescrNote
}

// Summaries lists models ordered by name.
func (c *Catalog) Summaries(ctx context.Context) ([]ModelSummary, error) {
	rows, err := c.db.QueryContext(ctx, `
	SELECT m.model_name, m.model_digest, m.model_ver, m.descr,
	 (SELECT COUNT(*) FROM run_lst r WHERE r.model_id = m.model_id),
	 (SELECT COUNT(*) FROM workset_lst w WHERE w.model_id = m.model_id)
	FROM model_dic m ORDER BY m.model_name, m.model_digest`)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer rows.Close()
	var out []ModelSummary
	for rows.Next() {
		var s ModelSummary
		if err := rows.Scan(&s.Name, &s.Digest, &s.Version, &s.Descr, &s.RunCount, &s.WorksetCount); err != nil {
			return nil, fmt.Errorf("scan model: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ModelNames returns all model names.
func (c *Catalog) ModelNames(ctx context.Context) ([]string, error) {
	sums, err := c.Summaries(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(sums))
	for _, s := range sums {
		names = append(names, s.Name)
	}
	return names, nil
}

// ModelList returns every model with its description and without metadata.
func (c *Catalog) ModelList(ctx context.Context) ([]omdb.ModelText, error) {
	rows, err := c.queryModels(ctx, `1 = 1`)
	if err != nil {
		return nil, err
	}
	out := make([]omdb.ModelText, 0, len(rows))
	for _, r := range rows {
		md := omdb.EmptyModel()
		md.Model = r.dic
		dn := r.text
		md.DescrNote = &dn
		out = append(out, md)
	}
	return out, nil
}

// Model returns the model with its type, parameter and table metadata.
// The model is found by name or digest. An unknown model gives ErrNotFound,
// wrapped with the closest model name when there is one.
func (c *Catalog) Model(ctx context.Context, nameOrDigest string) (omdb.ModelText, error) {
	r, err := c.findModel(ctx, nameOrDigest)
	if err != nil {
		return omdb.ModelText{}, err
	}
	md := omdb.EmptyModel()
	md.Model = r.dic
	dn := r.text
	md.DescrNote = &dn
	lang := r.dic.DefaultLangCode

	if md.TypeTxt, err = c.types(ctx, r.id, lang); err != nil {
		return omdb.ModelText{}, err
	}
	if md.ParamTxt, err = c.params(ctx, r.id, lang); err != nil {
		return omdb.ModelText{}, err
	}
	if md.TableTxt, err = c.tables(ctx, r.id, lang); err != nil {
		return omdb.ModelText{}, err
	}
	return md, nil
}

func (c *Catalog) queryModels(ctx context.Context, where string, args ...any) ([]modelRow, error) {
	rows, err := c.db.QueryContext(ctx, `
	SELECT model_id, model_name, model_digest, model_type, model_ver, create_dt, default_lang, descr, note
	FROM model_dic WHERE `+where+` ORDER BY model_name, model_digest`, args...)
	if err != nil {
		return nil, fmt.Errorf("query models: %w", err)
	}
	defer rows.Close()
	var out []modelRow
	for rows.Next() {
		var r modelRow
		if err := rows.Scan(&r.id, &r.dic.Name, &r.dic.Digest, &r.dic.Type, &r.dic.Version,
			&r.dic.CreateDateTime, &r.dic.DefaultLangCode, &r.text.Descr, &r.text.Note); err != nil {
			return nil, fmt.Errorf("scan model: %w", err)
		}
		r.dic.ModelID = r.id
		r.text.LangCode = r.dic.DefaultLangCode
		out = append(out, r)
	}
	return out, rows.Err()
}

func (c *Catalog) findModel(ctx context.Context, nameOrDigest string) (modelRow, error) {
	rows, err := c.queryModels(ctx, `model_digest = ? OR model_name = ?`, nameOrDigest, nameOrDigest)
	if err != nil {
		return modelRow{}, err
	}
	for _, r := range rows {
		if r.dic.Digest == nameOrDigest {
			return r, nil
		}
	}
	if len(rows) > 0 {
		return rows[0], nil
	}
	names, err := c.ModelNames(ctx)
	if err != nil {
		return modelRow{}, err
	}
	if hint := Suggest(nameOrDigest, names); hint != "" {
		return modelRow{}, fmt.Errorf("model %q: %w, did you mean %q?", nameOrDigest, ErrNotFound, hint)
	}
	return modelRow{}, fmt.Errorf("model %q: %w", nameOrDigest, ErrNotFound)
}

func descrNote(lang, descr, note string) *omdb.DescrNote {
	return &omdb.DescrNote{LangCode: lang, Descr: descr, Note: note}
}

func (c *Catalog) types(ctx context.Context, modelID int, lang string) ([]omdb.TypeText, error) {
	rows, err := c.db.QueryContext(ctx, `
	SELECT type_id, type_name, type_digest, dic_id, total_enum_id, descr
	FROM type_dic WHERE model_id = ? ORDER BY type_id`, modelID)
	if err != nil {
		return nil, fmt.Errorf("query types: %w", err)
	}
	out := []omdb.TypeText{}
	index := map[int]int{}
	for rows.Next() {
		tt := omdb.EmptyTypeText()
		var descr string
		if err := rows.Scan(&tt.Type.TypeID, &tt.Type.Name, &tt.Type.Digest, &tt.Type.DicID, &tt.Type.TotalEnumID, &descr); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan type: %w", err)
		}
		tt.DescrNote = descrNote(lang, descr, "")
		index[tt.Type.TypeID] = len(out)
		out = append(out, tt)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	enums, err := c.db.QueryContext(ctx, `
	SELECT type_id, enum_id, enum_name, descr FROM type_enum WHERE model_id = ? ORDER BY type_id, enum_id`, modelID)
	if err != nil {
		return nil, fmt.Errorf("query enums: %w", err)
	}
	defer enums.Close()
	for enums.Next() {
		var typeID int
		var e omdb.TypeEnum
		var descr string
		if err := enums.Scan(&typeID, &e.EnumID, &e.Name, &descr); err != nil {
			return nil, fmt.Errorf("scan enum: %w", err)
		}
		k, ok := index[typeID]
		if !ok {
			continue
		}
		enum := e
		out[k].TypeEnumTxt = append(out[k].TypeEnumTxt, omdb.TypeEnumText{Enum: &enum, DescrNote: descrNote(lang, descr, "")})
	}
	return out, enums.Err()
}

func (c *Catalog) params(ctx context.Context, modelID int, lang string) ([]omdb.ParamText, error) {
	rows, err := c.db.QueryContext(ctx, `
	SELECT parameter_id, parameter_name, digest, parameter_rank, type_id, is_hidden, descr, note
	FROM parameter_dic WHERE model_id = ? ORDER BY parameter_id`, modelID)
	if err != nil {
		return nil, fmt.Errorf("query parameters: %w", err)
	}
	out := []omdb.ParamText{}
	index := map[int]int{}
	for rows.Next() {
		pt := omdb.EmptyParamText()
		var descr, note string
		if err := rows.Scan(&pt.Param.ParamID, &pt.Param.Name, &pt.Param.Digest, &pt.Param.Rank,
			&pt.Param.TypeID, &pt.Param.IsHidden, &descr, &note); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan parameter: %w", err)
		}
		pt.DescrNote = descrNote(lang, descr, note)
		index[pt.Param.ParamID] = len(out)
		out = append(out, pt)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	dims, err := c.db.QueryContext(ctx, `
	SELECT parameter_id, dim_id, dim_name, type_id, descr
	FROM parameter_dims WHERE model_id = ? ORDER BY parameter_id, dim_id`, modelID)
	if err != nil {
		return nil, fmt.Errorf("query parameter dimensions: %w", err)
	}
	defer dims.Close()
	for dims.Next() {
		var paramID int
		var d omdb.ParamDim
		var descr string
		if err := dims.Scan(&paramID, &d.DimID, &d.Name, &d.TypeID, &descr); err != nil {
			return nil, fmt.Errorf("scan parameter dimension: %w", err)
		}
		if k, ok := index[paramID]; ok {
			dim := d
			out[k].ParamDimsTxt = append(out[k].ParamDimsTxt, omdb.ParamDimsText{Dim: &dim, DescrNote: descrNote(lang, descr, "")})
		}
	}
	return out, dims.Err()
}

func (c *Catalog) tables(ctx context.Context, modelID int, lang string) ([]omdb.TableText, error) {
	rows, err := c.db.QueryContext(ctx, `
	SELECT table_id, table_name, digest, table_rank, is_sparse, expr_pos, is_hidden, descr, note, expr_descr
	FROM table_dic WHERE model_id = ? ORDER BY table_id`, modelID)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	out := []omdb.TableText{}
	index := map[int]int{}
	for rows.Next() {
		tt := omdb.EmptyTableText()
		if err := rows.Scan(&tt.Table.TableID, &tt.Table.Name, &tt.Table.Digest, &tt.Table.Rank, &tt.Table.IsSparse,
			&tt.Table.ExprPos, &tt.Table.IsHidden, &tt.TableDescr, &tt.TableNote, &tt.ExprDescr); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tt.LangCode = lang
		index[tt.Table.TableID] = len(out)
		out = append(out, tt)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	if err := c.each(ctx, `
	SELECT table_id, dim_id, dim_name, type_id, is_total, dim_size, descr
	FROM table_dims WHERE model_id = ? ORDER BY table_id, dim_id`, []any{modelID}, func(rows *sql.Rows) error {
		var tableID int
		var d omdb.TableDim
		var descr string
		if err := rows.Scan(&tableID, &d.DimID, &d.Name, &d.TypeID, &d.IsTotal, &d.DimSize, &descr); err != nil {
			return fmt.Errorf("scan table dimension: %w", err)
		}
		if k, ok := index[tableID]; ok {
			out[k].TableDimsTxt = append(out[k].TableDimsTxt, omdb.TableDimsText{Dim: &d, DescrNote: descrNote(lang, descr, "")})
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := c.each(ctx, `
	SELECT table_id, expr_id, expr_name, expr_src, descr
	FROM table_expr WHERE model_id = ? ORDER BY table_id, expr_id`, []any{modelID}, func(rows *sql.Rows) error {
		var tableID int
		var e omdb.TableExpr
		var descr string
		if err := rows.Scan(&tableID, &e.ExprID, &e.Name, &e.SrcExpr, &descr); err != nil {
			return fmt.Errorf("scan table expression: %w", err)
		}
		if k, ok := index[tableID]; ok {
			out[k].TableExprTxt = append(out[k].TableExprTxt, omdb.TableExprText{Expr: &e, DescrNote: descrNote(lang, descr, "")})
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := c.each(ctx, `
	SELECT table_id, acc_id, acc_name, is_derived, acc_src, descr
	FROM table_acc WHERE model_id = ? ORDER BY table_id, acc_id`, []any{modelID}, func(rows *sql.Rows) error {
		var tableID int
		var a omdb.TableAcc
		var descr string
		if err := rows.Scan(&tableID, &a.AccID, &a.Name, &a.IsDerived, &a.SrcAcc, &descr); err != nil {
			return fmt.Errorf("scan table accumulator: %w", err)
		}
		if k, ok := index[tableID]; ok {
			out[k].TableAccTxt = append(out[k].TableAccTxt, omdb.TableAccText{Acc: &a, DescrNote: descrNote(lang, descr, "")})
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// RunList returns the runs of the model ordered by creation.
func (c *Catalog) RunList(ctx context.Context, nameOrDigest string) ([]omdb.RunText, error) {
	r, err := c.findModel(ctx, nameOrDigest)
	if err != nil {
		return nil, err
	}
	out := []omdb.RunText{}
	index := map[int64]int{}
	if err := c.each(ctx, `
	SELECT run_id, run_name, run_digest, sub_count, sub_started, sub_completed, create_dt, status, update_dt, descr, note
	FROM run_lst WHERE model_id = ? ORDER BY run_id`, []any{r.id}, func(rows *sql.Rows) error {
		rt := omdb.EmptyRunText()
		var id int64
		var descr, note string
		if err := rows.Scan(&id, &rt.Name, &rt.Digest, &rt.SubCount, &rt.SubStarted, &rt.SubCompleted,
			&rt.CreateDateTime, &rt.Status, &rt.UpdateDateTime, &descr, &note); err != nil {
			return fmt.Errorf("scan run: %w", err)
		}
		rt.ModelName = r.dic.Name
		rt.ModelDigest = r.dic.Digest
		if descr != "" || note != "" {
			rt.Txt = append(rt.Txt, *descrNote(r.dic.DefaultLangCode, descr, note))
		}
		index[id] = len(out)
		out = append(out, rt)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := c.each(ctx, `
	SELECT p.run_id, p.parameter_name, p.sub_count, p.note
	FROM run_parameter p JOIN run_lst r ON r.run_id = p.run_id
	WHERE r.model_id = ? ORDER BY p.run_id, p.rowid`, []any{r.id}, func(rows *sql.Rows) error {
		var id int64
		prs := omdb.EmptyParamRunSet()
		var note string
		if err := rows.Scan(&id, &prs.Name, &prs.SubCount, &note); err != nil {
			return fmt.Errorf("scan run parameter: %w", err)
		}
		if note != "" {
			prs.Txt = append(prs.Txt, omdb.LangNote{LangCode: r.dic.DefaultLangCode, Note: note})
		}
		if k, ok := index[id]; ok {
			out[k].Param = append(out[k].Param, prs)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// WorksetList returns the worksets of the model.
func (c *Catalog) WorksetList(ctx context.Context, nameOrDigest string) ([]omdb.WorksetText, error) {
	r, err := c.findModel(ctx, nameOrDigest)
	if err != nil {
		return nil, err
	}
	out := []omdb.WorksetText{}
	index := map[int64]int{}
	if err := c.each(ctx, `
	SELECT set_id, set_name, base_run_digest, is_readonly, update_dt, descr, note
	FROM workset_lst WHERE model_id = ? ORDER BY set_id`, []any{r.id}, func(rows *sql.Rows) error {
		wt := omdb.EmptyWorksetText()
		var id int64
		var descr, note string
		if err := rows.Scan(&id, &wt.Name, &wt.BaseRunDigest, &wt.IsReadonly, &wt.UpdateDateTime, &descr, &note); err != nil {
			return fmt.Errorf("scan workset: %w", err)
		}
		wt.ModelName = r.dic.Name
		wt.ModelDigest = r.dic.Digest
		if descr != "" || note != "" {
			wt.Txt = append(wt.Txt, *descrNote(r.dic.DefaultLangCode, descr, note))
		}
		index[id] = len(out)
		out = append(out, wt)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := c.each(ctx, `
	SELECT p.set_id, p.parameter_name, p.sub_count, p.note
	FROM workset_parameter p JOIN workset_lst w ON w.set_id = p.set_id
	WHERE w.model_id = ? ORDER BY p.set_id, p.rowid`, []any{r.id}, func(rows *sql.Rows) error {
		var id int64
		prs := omdb.EmptyParamRunSet()
		var note string
		if err := rows.Scan(&id, &prs.Name, &prs.SubCount, &note); err != nil {
			return fmt.Errorf("scan workset parameter: %w", err)
		}
		if note != "" {
			prs.Txt = append(prs.Txt, omdb.LangNote{LangCode: r.dic.DefaultLangCode, Note: note})
		}
		if k, ok := index[id]; ok {
			out[k].Param = append(out[k].Param, prs)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// WordList returns language and model words of the model in lang, or in the
// model default language when lang is empty.
func (c *Catalog) WordList(ctx context.Context, nameOrDigest, lang string) (omdb.WordList, error) {
	r, err := c.findModel(ctx, nameOrDigest)
	if err != nil {
		return omdb.WordList{}, err
	}
	if lang == "" {
		lang = r.dic.DefaultLangCode
	}
	wl := omdb.EmptyWordList()
	wl.ModelName = r.dic.Name
	wl.ModelDigest = r.dic.Digest
	wl.LangCode = lang

	scan := func(dst *[]omdb.CodeLabel) func(rows *sql.Rows) error {
		return func(rows *sql.Rows) error {
			var cl omdb.CodeLabel
			if err := rows.Scan(&cl.Code, &cl.Label); err != nil {
				return fmt.Errorf("scan word: %w", err)
			}
			*dst = append(*dst, cl)
			return nil
		}
	}
	if err := c.each(ctx, `
	SELECT word_code, word_value FROM lang_word WHERE lang_code = ? ORDER BY word_code`,
		[]any{lang}, scan(&wl.LangWords)); err != nil {
		return omdb.WordList{}, err
	}
	if err := c.each(ctx, `
	SELECT word_code, word_value FROM model_word WHERE model_id = ? AND lang_code = ? ORDER BY word_code`,
		[]any{r.id, lang}, scan(&wl.ModelWords)); err != nil {
		return omdb.WordList{}, err
	}
	return wl, nil
}

// each runs query and calls fn for every row.
func (c *Catalog) each(ctx context.Context, query string, args []any, fn func(rows *sql.Rows) error) error {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func closeRows(rows *sql.Rows) error {
	err := rows.Err()
	if cerr := rows.Close(); err == nil {
		err = cerr
	}
	return err
}
