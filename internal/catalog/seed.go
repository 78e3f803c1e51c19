package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/jask/omppui/internal/omdb"
)

// Seed writes the fixture into the catalog. A model already present with the
// same digest is replaced, so seeding the same fixture twice is a no-op.
func Seed(ctx context.Context, db *sql.DB, fx Fixture) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for lang, words := range fx.LangWords {
			for _, code := range sortedKeys(words) {
				if _, err := tx.ExecContext(ctx, `
				INSERT INTO lang_word(lang_code, word_code, word_value) VALUES (?, ?, ?)
				ON CONFLICT(lang_code, word_code) DO UPDATE SET word_value=excluded.word_value;
				`, lang, code, words[code]); err != nil {
					return fmt.Errorf("seed lang word %s: %w", code, err)
				}
			}
		}
		for _, m := range fx.Models {
			if err := seedModel(ctx, tx, m); err != nil {
				return fmt.Errorf("seed model %s: %w", m.Name, err)
			}
		}
		return nil
	})
}

func seedModel(ctx context.Context, tx *sql.Tx, m FixtureModel) error {
	digest := m.ModelDigest()
	lang := m.Lang
	if lang == "" {
		lang = "EN"
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM model_dic WHERE model_digest = ?`, digest); err != nil {
		return err
	}
	var modelID int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(model_id), 0) + 1 FROM model_dic`).Scan(&modelID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
	INSERT INTO model_dic(model_id, model_name, model_digest, model_type, model_ver, create_dt, default_lang, descr, note)
	VALUES (?, ?, ?, 0, ?, ?, ?, ?, ?)
	`, modelID, m.Name, digest, m.Version, m.Created, lang, m.Descr, m.Note); err != nil {
		return err
	}

	for _, t := range m.Types {
		dicID, total := 0, 0
		if t.ID > omdb.OmMaxBuiltinTypeID {
			dicID = 2
			for _, e := range t.Enums {
				if e.ID >= total {
					total = e.ID + 1
				}
			}
		}
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO type_dic(model_id, type_id, type_name, type_digest, dic_id, total_enum_id, descr)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		`, modelID, t.ID, t.Name, digestOf("type", digest, t.Name), dicID, total, t.Descr); err != nil {
			return fmt.Errorf("type %s: %w", t.Name, err)
		}
		for _, e := range t.Enums {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO type_enum(model_id, type_id, enum_id, enum_name, descr) VALUES (?, ?, ?, ?, ?)
			`, modelID, t.ID, e.ID, e.Name, e.Descr); err != nil {
				return fmt.Errorf("type %s enum %s: %w", t.Name, e.Name, err)
			}
		}
	}

	for _, p := range m.Params {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO parameter_dic(model_id, parameter_id, parameter_name, digest, parameter_rank, type_id, is_hidden, descr, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, modelID, p.ID, p.Name, digestOf("parameter", digest, p.Name), len(p.Dims), p.Type, p.Hidden, p.Descr, p.Note); err != nil {
			return fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		for k, d := range p.Dims {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO parameter_dims(model_id, parameter_id, dim_id, dim_name, type_id, descr) VALUES (?, ?, ?, ?, ?, ?)
			`, modelID, p.ID, k, d.Name, d.Type, d.Descr); err != nil {
				return fmt.Errorf("parameter %s dimension %s: %w", p.Name, d.Name, err)
			}
		}
	}

	for _, t := range m.Tables {
		if err := seedTable(ctx, tx, modelID, digest, t); err != nil {
			return fmt.Errorf("table %s: %w", t.Name, err)
		}
	}

	for _, r := range m.Runs {
		res, err := tx.ExecContext(ctx, `
		INSERT INTO run_lst(model_id, run_name, run_digest, sub_count, sub_started, sub_completed, create_dt, status, update_dt, descr, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, modelID, r.Name, runDigest(digest, r.Name), r.SubCount, r.SubCount, r.Completed, r.Created, r.Status, r.Updated, r.Descr, r.Note)
		if err != nil {
			return fmt.Errorf("run %s: %w", r.Name, err)
		}
		runID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, pv := range r.Params {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_parameter(run_id, parameter_name, sub_count, note) VALUES (?, ?, ?, ?)
			`, runID, pv.Name, pv.SubCount, pv.Note); err != nil {
				return fmt.Errorf("run %s parameter %s: %w", r.Name, pv.Name, err)
			}
		}
	}

	for _, w := range m.Worksets {
		base := ""
		if w.BaseRun != "" {
			base = runDigest(digest, w.BaseRun)
		}
		res, err := tx.ExecContext(ctx, `
		INSERT INTO workset_lst(model_id, set_name, base_run_digest, is_readonly, update_dt, descr, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		`, modelID, w.Name, base, w.Readonly, w.Updated, w.Descr, w.Note)
		if err != nil {
			return fmt.Errorf("workset %s: %w", w.Name, err)
		}
		setID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, pv := range w.Params {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO workset_parameter(set_id, parameter_name, sub_count, note) VALUES (?, ?, ?, ?)
			`, setID, pv.Name, pv.SubCount, pv.Note); err != nil {
				return fmt.Errorf("workset %s parameter %s: %w", w.Name, pv.Name, err)
			}
		}
	}

	for wlang, words := range m.Words {
		for _, code := range sortedKeys(words) {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO model_word(model_id, lang_code, word_code, word_value) VALUES (?, ?, ?, ?)
			`, modelID, wlang, code, words[code]); err != nil {
				return fmt.Errorf("model word %s: %w", code, err)
			}
		}
	}
	return nil
}

func seedTable(ctx context.Context, tx *sql.Tx, modelID int, digest string, t FixtureTable) error {
	if _, err := tx.ExecContext(ctx, `
	INSERT INTO table_dic(model_id, table_id, table_name, digest, table_rank, is_sparse, expr_pos, is_hidden, descr, note)
	VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?, ?)
	`, modelID, t.ID, t.Name, digestOf("table", digest, t.Name), len(t.Dims), t.Sparse, t.Hidden, t.Descr, t.Note); err != nil {
		return err
	}
	for k, d := range t.Dims {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO table_dims(model_id, table_id, dim_id, dim_name, type_id, is_total, dim_size, descr)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, modelID, t.ID, k, d.Name, d.Type, d.Total, d.Size, d.Descr); err != nil {
			return fmt.Errorf("dimension %s: %w", d.Name, err)
		}
	}
	for k, e := range t.Exprs {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO table_expr(model_id, table_id, expr_id, expr_name, expr_src, descr) VALUES (?, ?, ?, ?, ?, ?)
		`, modelID, t.ID, k, e.Name, e.Src, e.Descr); err != nil {
			return fmt.Errorf("expression %s: %w", e.Name, err)
		}
	}
	for k, a := range t.Accs {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO table_acc(model_id, table_id, acc_id, acc_name, is_derived, acc_src, descr) VALUES (?, ?, ?, ?, ?, ?, ?)
		`, modelID, t.ID, k, a.Name, a.Derived, a.Src, a.Descr); err != nil {
			return fmt.Errorf("accumulator %s: %w", a.Name, err)
		}
	}
	return nil
}

func runDigest(modelDigest, runName string) string {
	return digestOf("run", modelDigest, runName)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Seed writes the fixture into the catalog database.
func (c *Catalog) Seed(ctx context.Context, fx Fixture) error {
	return Seed(ctx, c.db, fx)
}
