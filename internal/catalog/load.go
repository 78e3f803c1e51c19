package catalog

import (
	"context"
	"fmt"

	"github.com/jask/omppui/internal/logx"
	"github.com/jask/omppui/internal/omdb"
	"github.com/jask/omppui/internal/store"
)

// Applier applies one store event and returns the rejection reason, nil if
// the event was accepted. session.Session is the Applier used by commands.
type Applier interface {
	Apply(ctx context.Context, ev store.Event) error
}

// Selection says which run and workset to pick after a model is loaded.
// A negative index keeps the store default, the first list element.
type Selection struct {
	Model   string
	Run     int
	Workset int
	Lang    string
}

// Events reads the model list, the model and its runs, worksets and words
// from the catalog and returns the store events that select them, in the
// order they must be applied.
func (c *Catalog) Events(ctx context.Context, sel Selection) ([]store.Event, error) {
	_, evs, err := c.events(ctx, sel)
	return evs, err
}

func (c *Catalog) events(ctx context.Context, sel Selection) (omdb.ModelDic, []store.Event, error) {
	ml, err := c.ModelList(ctx)
	if err != nil {
		return omdb.ModelDic{}, nil, err
	}
	md, err := c.Model(ctx, sel.Model)
	if err != nil {
		return omdb.ModelDic{}, nil, err
	}
	rl, err := c.RunList(ctx, md.Model.Digest)
	if err != nil {
		return omdb.ModelDic{}, nil, err
	}
	wl, err := c.WorksetList(ctx, md.Model.Digest)
	if err != nil {
		return omdb.ModelDic{}, nil, err
	}
	words, err := c.WordList(ctx, md.Model.Digest, sel.Lang)
	if err != nil {
		return omdb.ModelDic{}, nil, err
	}

	evs := []store.Event{
		store.ModelListReplaced{Models: ml},
		store.ModelSelected{Model: md},
		store.RunListReplaced{Runs: rl},
		store.WorksetListReplaced{Worksets: wl},
		store.WordListReplaced{Words: words},
		store.UILangSet{Lang: sel.Lang},
	}
	if sel.Run >= 0 {
		evs = append(evs, store.RunIndexSelected{Index: sel.Run})
	}
	if sel.Workset >= 0 {
		evs = append(evs, store.WorksetIndexSelected{Index: sel.Workset})
	}
	return md.Model, evs, nil
}

// Load applies the events of sel through app one at a time. The first
// rejected event stops the load.
func (c *Catalog) Load(ctx context.Context, app Applier, sel Selection) error {
	md, evs, err := c.events(ctx, sel)
	if err != nil {
		return err
	}
	log := logx.WithModel(logx.Ctx(ctx), md.Name, md.Digest)

	for _, ev := range evs {
		if err := app.Apply(ctx, ev); err != nil {
			return fmt.Errorf("load %s: %w", store.EventName(ev), err)
		}
		log.Trace("catalog applied", "event", store.EventName(ev))
	}
	log.Debug("catalog selection loaded", "events", len(evs))
	return nil
}
