package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jask/omppui/internal/omdb"
)

var (
	// ErrConsistency rejects a list or word list of a model other than the current one.
	ErrConsistency = errors.New("payload does not belong to the current model")
	// ErrInvalid rejects a payload with empty required values.
	ErrInvalid = errors.New("invalid payload")
	// ErrUnknownEvent rejects an event the reducer does not handle.
	ErrUnknownEvent = errors.New("unknown event")
)

// Reduce returns the state after ev. A rejected event returns s unchanged.
// Reduce does not modify s and does not copy event values: callers hand over
// ownership of slices carried by ev.
func Reduce(s State, ev Event) State {
	next, _ := Apply(s, ev)
	return next
}

// Apply is Reduce which also reports why an event was rejected.
func Apply(s State, ev Event) (State, error) {
	switch e := ev.(type) {
	case ModelSelected:
		return selectModel(s, e.Model), nil

	case ModelListReplaced:
		if !omdb.IsModelList(e.Models) {
			return s, fmt.Errorf("model list: %w", ErrInvalid)
		}
		s.ModelList = nonNil(e.Models)
		return s, nil

	case RunListReplaced:
		if !omdb.IsRunTextList(e.Runs, s.ModelDigest()) {
			return s, fmt.Errorf("run list: %w", ErrConsistency)
		}
		s.RunList = nonNil(e.Runs)
		return selectRun(s, 0), nil

	case WorksetListReplaced:
		if !omdb.IsWorksetTextList(e.Worksets, s.ModelDigest()) {
			return s, fmt.Errorf("workset list: %w", ErrConsistency)
		}
		s.WorksetList = nonNil(e.Worksets)
		return selectWorkset(s, 0), nil

	case WordListReplaced:
		if e.Words.ModelDigest != s.ModelDigest() {
			return s, fmt.Errorf("word list: %w", ErrConsistency)
		}
		s.WordList = e.Words
		if s.WordList.LangWords == nil {
			s.WordList.LangWords = []omdb.CodeLabel{}
		}
		if s.WordList.ModelWords == nil {
			s.WordList.ModelWords = []omdb.CodeLabel{}
		}
		return s, nil

	case UILangSet:
		s.UILang = strings.TrimSpace(e.Lang)
		return s, nil

	case RunIndexSelected:
		return selectRun(s, e.Index), nil

	case WorksetIndexSelected:
		return selectWorkset(s, e.Index), nil

	case Reset:
		return Initial(), nil
	}
	return s, fmt.Errorf("%T: %w", ev, ErrUnknownEvent)
}

// selectModel makes md current and invalidates, in order, the word list, the run
// list, the current run, the workset list and the current workset of any other model.
func selectModel(s State, md omdb.ModelText) State {
	digest := md.Model.Digest
	s.CurrentModel = md

	if s.WordList.ModelDigest != digest {
		s.WordList = omdb.EmptyWordList()
	}

	if len(s.RunList) > 0 && s.RunList[0].ModelDigest != digest {
		s.RunList = []omdb.RunText{}
	}
	if s.CurrentRun.ModelDigest != digest {
		s.CurrentRun = omdb.EmptyRunText()
	}
	if len(s.RunList) > 0 {
		if !omdb.IsNotEmptyRunText(s.CurrentRun) || !omdb.SameRun(s.CurrentRun, s.RunList[0]) {
			s.CurrentRun = s.RunList[0].Clone()
		}
	}

	if len(s.WorksetList) > 0 && s.WorksetList[0].ModelDigest != digest {
		s.WorksetList = []omdb.WorksetText{}
	}
	if s.CurrentWorkset.ModelDigest != digest {
		s.CurrentWorkset = omdb.EmptyWorksetText()
	}
	if len(s.WorksetList) > 0 {
		if !omdb.IsNotEmptyWorksetText(s.CurrentWorkset) || !omdb.SameWorkset(s.CurrentWorkset, s.WorksetList[0]) {
			s.CurrentWorkset = s.WorksetList[0].Clone()
		}
	}
	return s
}

func selectRun(s State, idx int) State {
	if idx < 0 || idx >= len(s.RunList) {
		s.CurrentRun = omdb.EmptyRunText()
		return s
	}
	s.CurrentRun = s.RunList[idx].Clone()
	return s
}

func selectWorkset(s State, idx int) State {
	if idx < 0 || idx >= len(s.WorksetList) {
		s.CurrentWorkset = omdb.EmptyWorksetText()
		return s
	}
	s.CurrentWorkset = s.WorksetList[idx].Clone()
	return s
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
