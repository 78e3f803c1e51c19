package store

import "github.com/jask/omppui/internal/omdb"

// State is the selection of one browser session: the current model with its
// run and workset lists, the current run and workset, the model word list and
// the UI language. A State value is never modified in place.
type State struct {
	CurrentModel   omdb.ModelText
	ModelList      []omdb.ModelText
	CurrentRun     omdb.RunText
	RunList        []omdb.RunText
	CurrentWorkset omdb.WorksetText
	WorksetList    []omdb.WorksetText
	WordList       omdb.WordList
	UILang         string
}

// Initial returns the state of a new session: nothing selected, all lists empty.
func Initial() State {
	return State{
		CurrentModel:   omdb.EmptyModel(),
		ModelList:      []omdb.ModelText{},
		CurrentRun:     omdb.EmptyRunText(),
		RunList:        []omdb.RunText{},
		CurrentWorkset: omdb.EmptyWorksetText(),
		WorksetList:    []omdb.WorksetText{},
		WordList:       omdb.EmptyWordList(),
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		CurrentModel:   s.CurrentModel.Clone(),
		ModelList:      omdb.CloneModelList(s.ModelList),
		CurrentRun:     s.CurrentRun.Clone(),
		RunList:        omdb.CloneRunList(s.RunList),
		CurrentWorkset: s.CurrentWorkset.Clone(),
		WorksetList:    omdb.CloneWorksetList(s.WorksetList),
		WordList:       s.WordList.Clone(),
		UILang:         s.UILang,
	}
}

// ModelDigest is the digest of the current model, "" if no model selected.
func (s State) ModelDigest() string {
	return s.CurrentModel.Model.Digest
}
