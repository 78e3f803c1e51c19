package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gowebpki/jcs"
	"pkt.systems/pslog"

	"github.com/jask/omppui/internal/omdb"
	"github.com/jask/omppui/internal/shape"
)

// Field names a part of the State for change notifications and fingerprints.
type Field string

const (
	FieldCurrentModel   Field = "currentModel"
	FieldModelList      Field = "modelList"
	FieldCurrentRun     Field = "currentRun"
	FieldRunList        Field = "runList"
	FieldCurrentWorkset Field = "currentWorkset"
	FieldWorksetList    Field = "worksetList"
	FieldWordList       Field = "wordList"
	FieldUILang         Field = "uiLang"
)

// Fields lists every State field in declaration order.
var Fields = []Field{
	FieldCurrentModel, FieldModelList,
	FieldCurrentRun, FieldRunList,
	FieldCurrentWorkset, FieldWorksetList,
	FieldWordList, FieldUILang,
}

// Change is sent to subscribers after an accepted event changed at least one field.
// Seq increases by one per change and subscribers receive changes in Seq order.
type Change struct {
	Seq    uint64
	Event  string
	Fields []Field
}

// Has reports whether f is among the changed fields.
func (c Change) Has(f Field) bool {
	for _, v := range c.Fields {
		if v == f {
			return true
		}
	}
	return false
}

// Store holds the selection state of one session. Inbound setters never
// fail loudly: a rejected payload leaves the state as it was and the setter
// returns false.
type Store struct {
	mu     sync.RWMutex
	state  State
	prints map[Field]string
	seq    uint64

	subMu sync.Mutex
	subs  map[chan Change]struct{}
	depth int

	log pslog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for rejections and change traces.
func WithLogger(logger pslog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.log = logger
		}
	}
}

// WithSubscriberDepth sets the buffer size of subscriber channels.
func WithSubscriberDepth(depth int) Option {
	return func(s *Store) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// New constructs a Store in the initial state.
func New(opts ...Option) *Store {
	s := &Store{
		state: Initial(),
		subs:  make(map[chan Change]struct{}),
		depth: 64,
		log:   pslog.Ctx(context.Background()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.prints = fingerprints(s.state)
	return s
}

// Dispatch applies ev and returns the rejection reason, nil if ev was accepted.
// The event value is copied, the caller keeps ownership of what it passed in.
func (s *Store) Dispatch(ev Event) error {
	return s.apply(ownEvent(ev))
}

func (s *Store) apply(ev Event) error {
	name := EventName(ev)

	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := Apply(s.state, ev)
	if err != nil {
		s.reject(name, err)
		return err
	}
	prints := fingerprints(next)
	changed := make([]Field, 0, len(Fields))
	for _, f := range Fields {
		if prints[f] != s.prints[f] {
			changed = append(changed, f)
		}
	}
	s.state = next
	s.prints = prints

	if len(changed) == 0 {
		s.log.Trace("store unchanged", "event", name)
		return nil
	}
	s.seq++
	s.log.Trace("store changed", "event", name, "fields", changed, "seq", s.seq)
	// publish never blocks, so it is safe under mu
	s.publish(Change{Seq: s.seq, Event: name, Fields: changed})
	return nil
}

func (s *Store) reject(op string, err error) {
	s.log.Debug("store rejected", "op", op, "err", err)
}

// ownEvent deep copies slices carried by ev so the state never aliases caller memory.
func ownEvent(ev Event) Event {
	switch e := ev.(type) {
	case ModelSelected:
		return ModelSelected{Model: e.Model.Clone()}
	case ModelListReplaced:
		return ModelListReplaced{Models: omdb.CloneModelList(e.Models)}
	case RunListReplaced:
		return RunListReplaced{Runs: omdb.CloneRunList(e.Runs)}
	case WorksetListReplaced:
		return WorksetListReplaced{Worksets: omdb.CloneWorksetList(e.Worksets)}
	case WordListReplaced:
		return WordListReplaced{Words: e.Words.Clone()}
	}
	return ev
}

// SetModel selects the model from its JSON payload.
func (s *Store) SetModel(raw []byte) bool {
	md, err := shape.DecodeModel(raw)
	if err != nil {
		s.reject(EventName(ModelSelected{}), err)
		return false
	}
	return s.apply(ModelSelected{Model: md}) == nil
}

// SelectModel selects md.
func (s *Store) SelectModel(md omdb.ModelText) bool {
	return s.Dispatch(ModelSelected{Model: md}) == nil
}

// SetModelList replaces the model list from its JSON payload.
func (s *Store) SetModelList(raw []byte) bool {
	ml, err := shape.DecodeModelList(raw)
	if err != nil {
		s.reject(EventName(ModelListReplaced{}), err)
		return false
	}
	return s.apply(ModelListReplaced{Models: ml}) == nil
}

// ReplaceModelList replaces the model list.
func (s *Store) ReplaceModelList(ml []omdb.ModelText) bool {
	return s.Dispatch(ModelListReplaced{Models: ml}) == nil
}

// SetRunTextList replaces the run list of the current model from its JSON payload.
func (s *Store) SetRunTextList(raw []byte) bool {
	rl, err := shape.DecodeRunTextList(raw)
	if err != nil {
		s.reject(EventName(RunListReplaced{}), err)
		return false
	}
	return s.apply(RunListReplaced{Runs: rl}) == nil
}

// ReplaceRunList replaces the run list of the current model.
func (s *Store) ReplaceRunList(rl []omdb.RunText) bool {
	return s.Dispatch(RunListReplaced{Runs: rl}) == nil
}

// SetWorksetTextList replaces the workset list of the current model from its JSON payload.
func (s *Store) SetWorksetTextList(raw []byte) bool {
	wl, err := shape.DecodeWorksetTextList(raw)
	if err != nil {
		s.reject(EventName(WorksetListReplaced{}), err)
		return false
	}
	return s.apply(WorksetListReplaced{Worksets: wl}) == nil
}

// ReplaceWorksetList replaces the workset list of the current model.
func (s *Store) ReplaceWorksetList(wl []omdb.WorksetText) bool {
	return s.Dispatch(WorksetListReplaced{Worksets: wl}) == nil
}

// SetWordList replaces the word list from its JSON payload.
func (s *Store) SetWordList(raw []byte) bool {
	wl, err := shape.DecodeWordList(raw)
	if err != nil {
		s.reject(EventName(WordListReplaced{}), err)
		return false
	}
	return s.apply(WordListReplaced{Words: wl}) == nil
}

// ReplaceWordList replaces the word list.
func (s *Store) ReplaceWordList(wl omdb.WordList) bool {
	return s.Dispatch(WordListReplaced{Words: wl}) == nil
}

// SetUILang sets the UI language code, "" means the default language.
func (s *Store) SetUILang(code string) error {
	return s.apply(UILangSet{Lang: code})
}

// SetRunByIndex makes a copy of run list element i the current run.
// An index out of range selects the empty run.
func (s *Store) SetRunByIndex(i int) error {
	return s.apply(RunIndexSelected{Index: i})
}

// SetWorksetByIndex makes a copy of workset list element i the current workset.
// An index out of range selects the empty workset.
func (s *Store) SetWorksetByIndex(i int) error {
	return s.apply(WorksetIndexSelected{Index: i})
}

// Reset returns the store to the initial state.
func (s *Store) Reset() error {
	return s.apply(Reset{})
}

// State returns a copy of the whole state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// CurrentModel returns a copy of the selected model.
func (s *Store) CurrentModel() omdb.ModelText {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CurrentModel.Clone()
}

// ModelList returns a copy of the model list.
func (s *Store) ModelList() []omdb.ModelText {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return omdb.CloneModelList(s.state.ModelList)
}

// ModelListCount returns the number of models, zero if the list is not valid.
func (s *Store) ModelListCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return omdb.ModelListCount(s.state.ModelList)
}

// CurrentRun returns a copy of the selected run.
func (s *Store) CurrentRun() omdb.RunText {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CurrentRun.Clone()
}

// RunList returns a copy of the run list of the current model.
func (s *Store) RunList() []omdb.RunText {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return omdb.CloneRunList(s.state.RunList)
}

// CurrentWorkset returns a copy of the selected workset.
func (s *Store) CurrentWorkset() omdb.WorksetText {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CurrentWorkset.Clone()
}

// WorksetList returns a copy of the workset list of the current model.
func (s *Store) WorksetList() []omdb.WorksetText {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return omdb.CloneWorksetList(s.state.WorksetList)
}

// WordList returns a copy of the word list.
func (s *Store) WordList() omdb.WordList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.WordList.Clone()
}

// UILang returns the UI language code, "" if the model default is used.
func (s *Store) UILang() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UILang
}

// WordByCode returns the label of code from the current word list.
func (s *Store) WordByCode(code string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return omdb.WordByCode(&s.state.WordList, code)
}

// Fingerprint returns the SHA-256 hex digest of the canonical JSON of field f.
func (s *Store) Fingerprint(f Field) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prints[f]
}

// Subscribe registers a change subscriber and returns its channel and cancel func.
// Changes are dropped for a subscriber whose channel is full.
func (s *Store) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, s.depth)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	count := len(s.subs)
	s.subMu.Unlock()
	s.log.Debug("store subscribe", "subs", count)

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, ch)
			close(ch)
			s.subMu.Unlock()
			s.log.Debug("store unsubscribe")
		})
	}
}

func (s *Store) publish(c Change) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	dropped := 0
	for sub := range s.subs {
		select {
		case sub <- c:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		s.log.Trace("store changes dropped", "count", dropped)
	}
}

func fingerprints(st State) map[Field]string {
	values := map[Field]any{
		FieldCurrentModel:   st.CurrentModel,
		FieldModelList:      st.ModelList,
		FieldCurrentRun:     st.CurrentRun,
		FieldRunList:        st.RunList,
		FieldCurrentWorkset: st.CurrentWorkset,
		FieldWorksetList:    st.WorksetList,
		FieldWordList:       st.WordList,
		FieldUILang:         st.UILang,
	}
	out := make(map[Field]string, len(values))
	for f, v := range values {
		sum, err := Digest(v)
		if err != nil {
			// values are plain data, marshal cannot fail
			panic(fmt.Sprintf("fingerprint %s: %v", f, err))
		}
		out[f] = sum
	}
	return out
}

// Digest returns the SHA-256 hex digest of the RFC 8785 canonical JSON of v.
func Digest(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal value: %w", err)
	}
	canon, err := jcs.Transform(data)
	if err != nil {
		return "", fmt.Errorf("canonicalize value: %w", err)
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}
