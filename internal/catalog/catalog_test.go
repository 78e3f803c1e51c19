package catalog

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/omppui/internal/omdb"
	"github.com/jask/omppui/internal/session"
	"github.com/jask/omppui/internal/store"
)

func seededDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	fx, err := DefaultFixture()
	require.NoError(t, err)
	require.NoError(t, Seed(context.Background(), db, fx))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()
	db := seededDB(t)
	ctx := context.Background()
	fx, err := DefaultFixture()
	require.NoError(t, err)
	require.NoError(t, Seed(ctx, db, fx))

	sums, err := New(db).Summaries(ctx)
	require.NoError(t, err)
	require.Len(t, sums, 2)
	require.Equal(t, "RiskPaths", sums[0].Name)
	require.Equal(t, "modelOne", sums[1].Name)
	require.Equal(t, 3, sums[1].RunCount)
	require.Equal(t, 2, sums[1].WorksetCount)
	require.Equal(t, fx.Models[0].ModelDigest(), sums[1].Digest)
}

func TestModelMetadata(t *testing.T) {
	t.Parallel()
	cat := New(seededDB(t))
	md, err := cat.Model(context.Background(), "modelOne")
	require.NoError(t, err)

	require.True(t, omdb.IsModel(md))
	require.Equal(t, "First model", omdb.DescrOfDescrNote(md.DescrNote))
	require.Equal(t, 6, omdb.TypeCount(md))
	require.Equal(t, 4, omdb.ParamCount(md))
	require.Equal(t, 2, omdb.OutTableCount(md))

	ps := omdb.ParamSizeByName(md, "ageSex")
	require.Equal(t, 2, ps.Rank)
	require.Equal(t, []int{4, 2}, ps.DimSize)
	require.Equal(t, 8, ps.DimTotal)

	require.Equal(t, 1, omdb.ParamSizeByName(md, "StartingSeed").DimTotal)

	ts := omdb.TableSizeByName(md, "salarySex")
	require.Equal(t, []int{4, 3}, ts.DimSize)
	require.Equal(t, 2, ts.ExprCount)
	require.Equal(t, 2, ts.AccCount)
	require.Equal(t, 3, ts.AllAccCount)
	require.Equal(t, []int{5}, omdb.TableSizeByName(md, "ageTotal").DimSize)

	age := omdb.TypeTextByID(md, 101)
	require.Equal(t, []string{"10-20", "20-30", "30-40", "40+"}, omdb.EnumCodeArray(age))
	require.Equal(t, 41, age.Type.TotalEnumID)
	require.True(t, omdb.IsFloat(omdb.TypeTextByID(md, 14).Type))
}

func TestModelByDigestAndSuggestion(t *testing.T) {
	t.Parallel()
	cat := New(seededDB(t))
	ctx := context.Background()

	byName, err := cat.Model(ctx, "RiskPaths")
	require.NoError(t, err)
	byDigest, err := cat.Model(ctx, byName.Model.Digest)
	require.NoError(t, err)
	require.Equal(t, byName.Model, byDigest.Model)

	_, err = cat.Model(ctx, "modelOn")
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), `did you mean "modelOne"`)

	_, err = cat.RunList(ctx, "zzzzzzzzzzzzzzzzzz")
	require.True(t, errors.Is(err, ErrNotFound))
	require.NotContains(t, err.Error(), "did you mean")
}

func TestRunAndWorksetLists(t *testing.T) {
	t.Parallel()
	cat := New(seededDB(t))
	ctx := context.Background()

	rl, err := cat.RunList(ctx, "modelOne")
	require.NoError(t, err)
	require.Len(t, rl, 3)
	require.True(t, omdb.IsRunTextList(rl, rl[0].ModelDigest))
	require.Equal(t, "Default", rl[0].Name)
	require.Len(t, rl[0].Param, 4)
	require.Equal(t, 4, omdb.ParamRunSetByName(rl[1].Param, "ageSex").SubCount)
	require.Equal(t, "Random age by sex", rl[1].Param[0].Txt[0].Note)
	require.Equal(t, "failed", omdb.StatusText(rl[2]))
	require.Empty(t, rl[2].Param)

	wl, err := cat.WorksetList(ctx, "modelOne")
	require.NoError(t, err)
	require.Len(t, wl, 2)
	require.True(t, wl[0].IsReadonly)
	require.Equal(t, rl[0].Digest, wl[0].BaseRunDigest)
	require.Len(t, wl[1].Param, 1)
}

func TestWordList(t *testing.T) {
	t.Parallel()
	cat := New(seededDB(t))
	ctx := context.Background()

	wl, err := cat.WordList(ctx, "modelOne", "FR")
	require.NoError(t, err)
	require.Equal(t, "FR", wl.LangCode)
	require.Equal(t, "Oui", omdb.WordByCode(&wl, "Yes"))
	require.Equal(t, "Sous-valeur de modelOne", omdb.WordByCode(&wl, "Sub-value"))

	wl, err = cat.WordList(ctx, "RiskPaths", "")
	require.NoError(t, err)
	require.Equal(t, "EN", wl.LangCode)
	require.Empty(t, wl.ModelWords)
	require.Equal(t, "Sub-value", omdb.WordByCode(&wl, "Sub-value"))
}

func TestLoadThroughSession(t *testing.T) {
	t.Parallel()
	cat := New(seededDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := session.Start(ctx, nil)
	defer func() { require.NoError(t, s.Close()) }()
	st := s.Store()

	require.NoError(t, cat.Load(ctx, s, Selection{Model: "modelOne", Run: 1, Workset: -1, Lang: "FR"}))
	require.Equal(t, uint64(7), s.Applied())
	require.Equal(t, 2, st.ModelListCount())
	require.Equal(t, "modelOne", st.CurrentModel().Model.Name)
	require.Equal(t, "Default-4", st.CurrentRun().Name)
	require.Equal(t, "Default", st.CurrentWorkset().Name)
	require.Equal(t, "FR", st.UILang())
	require.Equal(t, "Non", st.WordByCode("No"))

	require.NoError(t, cat.Load(ctx, s, Selection{Model: "RiskPaths", Run: -1, Workset: 5}))
	require.Equal(t, "RiskPaths", st.CurrentModel().Model.Name)
	require.Len(t, st.RunList(), 1)
	require.Equal(t, "Default", st.CurrentRun().Name)
	require.Equal(t, st.CurrentModel().Model.Digest, st.CurrentRun().ModelDigest)
	require.False(t, omdb.IsNotEmptyWorksetText(st.CurrentWorkset()))
}

func TestLoadAppliesEventsInOrder(t *testing.T) {
	t.Parallel()
	cat := New(seededDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := session.Start(ctx, nil)
	defer func() { require.NoError(t, s.Close()) }()
	changes, unsubscribe := s.Store().Subscribe()
	defer unsubscribe()

	require.NoError(t, cat.Load(ctx, s, Selection{Model: "modelOne", Run: 1, Workset: 0, Lang: "FR"}))

	want := []string{
		"model list replaced",
		"model selected",
		"run list replaced",
		"workset list replaced",
		"word list replaced",
		"ui language set",
		"run selected",
	}
	got := make([]string, 0, len(want))
	for range want {
		got = append(got, (<-changes).Event)
	}
	require.Equal(t, want, got)
	// workset 0 is already current
	select {
	case c := <-changes:
		t.Fatalf("unexpected change %+v", c)
	default:
	}
}

type recordingApplier struct {
	st     *store.Store
	events []string
	failOn string
}

func (r *recordingApplier) Apply(_ context.Context, ev store.Event) error {
	name := store.EventName(ev)
	r.events = append(r.events, name)
	if name == r.failOn {
		return store.ErrConsistency
	}
	return r.st.Dispatch(ev)
}

func TestLoadStopsOnRejection(t *testing.T) {
	t.Parallel()
	cat := New(seededDB(t))
	app := &recordingApplier{st: store.New(), failOn: "run list replaced"}

	err := cat.Load(context.Background(), app, Selection{Model: "modelOne", Run: -1, Workset: -1})
	require.ErrorIs(t, err, store.ErrConsistency)
	require.Equal(t, []string{"model list replaced", "model selected", "run list replaced"}, app.events)
	require.Empty(t, app.st.RunList())
}

func TestEventsOfUnknownModel(t *testing.T) {
	t.Parallel()
	cat := New(seededDB(t))
	_, err := cat.Events(context.Background(), Selection{Model: "modelOen"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadFixtureFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "fx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
models:
  - name: tiny
    version: "1"
    runs:
      - {name: only, status: p, sub_count: 2, created: "2022-01-01 00:00:00.000", updated: "2022-01-01 00:00:00.000"}
`), 0o600))
	fx, err := LoadFixture(path)
	require.NoError(t, err)

	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Seed(context.Background(), db, fx))

	rl, err := New(db).RunList(context.Background(), "tiny")
	require.NoError(t, err)
	require.Len(t, rl, 1)
	require.Equal(t, omdb.RunInProgress, rl[0].Status)

	_, err = ParseFixture([]byte("models:\n  - name: a\n  - name: a\n"))
	require.Error(t, err)
	_, err = ParseFixture([]byte("models: [{version: x}]"))
	require.Error(t, err)
}

func TestSuggest(t *testing.T) {
	t.Parallel()
	names := []string{"modelOne", "RiskPaths", "OzProj"}
	require.Equal(t, "modelOne", Suggest("modelone", names))
	require.Equal(t, "RiskPaths", Suggest("riskpath", names))
	require.Equal(t, "", Suggest("completely different", names))
	require.Equal(t, "", Suggest("", names))
	require.Equal(t, "", Suggest("x", nil))
}
