package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jask/omppui/internal/catalog"
	"github.com/jask/omppui/internal/config"
	"github.com/jask/omppui/internal/logx"
	"github.com/jask/omppui/internal/omdb"
)

// withCatalog opens the configured catalog, runs fn and closes the catalog.
func withCatalog(ctx context.Context, cfg *config.Config, fn func(cat *catalog.Catalog) error) error {
	if cfg.Catalog.Path == "" {
		return fmt.Errorf("open catalog: path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Catalog.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir catalog dir: %w", err)
	}
	db, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	logx.Ctx(ctx).Debug("catalog opened", "path", cfg.Catalog.Path)
	return fn(catalog.New(db))
}

// displayTime reformats an openM++ timestamp with the configured layout.
func displayTime(cfg *config.Config, s string) string {
	t, ok := omdb.ParseDateTime(s)
	if !ok || cfg.UI.DateFormat == "" {
		return s
	}
	return t.Format(cfg.UI.DateFormat)
}
