package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/omppui/internal/omdb"
	"github.com/jask/omppui/internal/store"
)

func testModel(name, digest string) omdb.ModelText {
	md := omdb.EmptyModel()
	md.Model.Name = name
	md.Model.Digest = digest
	return md
}

func testRun(digest, name string) omdb.RunText {
	rt := omdb.EmptyRunText()
	rt.ModelName = "modelOne"
	rt.ModelDigest = digest
	rt.Name = name
	rt.Digest = name + "-digest"
	rt.SubCount = 1
	rt.Status = omdb.RunSuccess
	return rt
}

func TestApplyWaitsForEvent(t *testing.T) {
	t.Parallel()
	s := Start(context.Background(), nil)
	defer func() { require.NoError(t, s.Close()) }()

	_, err := uuid.Parse(s.ID())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Apply(ctx, store.ModelSelected{Model: testModel("modelOne", "D1")}))
	require.Equal(t, "D1", s.Store().CurrentModel().Model.Digest)

	err = s.Apply(ctx, store.RunListReplaced{Runs: []omdb.RunText{testRun("D2", "r1")}})
	require.ErrorIs(t, err, store.ErrConsistency)
	require.Empty(t, s.Store().RunList())
}

func TestSendKeepsArrivalOrder(t *testing.T) {
	t.Parallel()
	s := Start(context.Background(), store.New())
	defer func() { require.NoError(t, s.Close()) }()
	ctx := context.Background()

	require.NoError(t, s.Send(ctx, store.ModelSelected{Model: testModel("modelOne", "D1")}))
	runs := make([]omdb.RunText, 0, 10)
	for i := 0; i < 10; i++ {
		runs = append(runs, testRun("D1", fmt.Sprintf("r%d", i)))
	}
	require.NoError(t, s.Send(ctx, store.RunListReplaced{Runs: runs}))
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Send(ctx, store.RunIndexSelected{Index: i}))
	}
	require.NoError(t, s.Apply(ctx, store.UILangSet{Lang: "EN"}))

	require.Equal(t, "r9", s.Store().CurrentRun().Name)
	require.Equal(t, "EN", s.Store().UILang())
	require.Equal(t, uint64(13), s.Applied())
}

func TestCancelStopsLoop(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	s := Start(ctx, nil)
	require.NoError(t, s.Apply(ctx, store.UILangSet{Lang: "FR"}))
	cancel()

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session loop did not stop")
	}
	require.NoError(t, s.Close())
	require.ErrorIs(t, s.Send(context.Background(), store.Reset{}), ErrClosed)
	require.ErrorIs(t, s.Apply(context.Background(), store.Reset{}), ErrClosed)
}

func TestApplyHonoursContext(t *testing.T) {
	t.Parallel()
	s := Start(context.Background(), nil)
	defer func() { require.NoError(t, s.Close()) }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Apply(ctx, store.Reset{}), context.Canceled)
	require.ErrorIs(t, s.Send(ctx, store.Reset{}), context.Canceled)
}
