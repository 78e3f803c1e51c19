package store

import "github.com/jask/omppui/internal/omdb"

// Event is a state transition request. Events are plain values and can be
// delivered as bubbletea messages.
type Event interface {
	eventName() string
}

// ModelSelected makes Model the current model and drops everything of the previous model.
type ModelSelected struct{ Model omdb.ModelText }

// ModelListReplaced replaces the list of models.
type ModelListReplaced struct{ Models []omdb.ModelText }

// RunListReplaced replaces the run list of the current model and selects the first run.
type RunListReplaced struct{ Runs []omdb.RunText }

// WorksetListReplaced replaces the workset list of the current model and selects the first workset.
type WorksetListReplaced struct{ Worksets []omdb.WorksetText }

// WordListReplaced replaces the word list of the current model.
type WordListReplaced struct{ Words omdb.WordList }

// UILangSet sets the UI language chosen by the user, "" for the default.
type UILangSet struct{ Lang string }

// RunIndexSelected selects the run at Index of the run list.
type RunIndexSelected struct{ Index int }

// WorksetIndexSelected selects the workset at Index of the workset list.
type WorksetIndexSelected struct{ Index int }

// Reset returns the session to its initial state.
type Reset struct{}

func (ModelSelected) eventName() string        { return "model selected" }
func (ModelListReplaced) eventName() string    { return "model list replaced" }
func (RunListReplaced) eventName() string      { return "run list replaced" }
func (WorksetListReplaced) eventName() string  { return "workset list replaced" }
func (WordListReplaced) eventName() string     { return "word list replaced" }
func (UILangSet) eventName() string            { return "ui language set" }
func (RunIndexSelected) eventName() string     { return "run selected" }
func (WorksetIndexSelected) eventName() string { return "workset selected" }
func (Reset) eventName() string                { return "reset" }

// EventName returns a short description of ev for logs.
func EventName(ev Event) string {
	if ev == nil {
		return ""
	}
	return ev.eventName()
}
