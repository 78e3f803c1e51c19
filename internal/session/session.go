// Package session runs the event loop of one browser session. Events from any
// goroutine are delivered to a headless bubbletea program which applies them
// to the session store one at a time, in arrival order.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"pkt.systems/pslog"

	"github.com/jask/omppui/internal/logx"
	"github.com/jask/omppui/internal/store"
)

// ErrClosed is returned for events sent after the session stopped.
var ErrClosed = errors.New("session closed")

// Session owns a store and the loop that mutates it.
type Session struct {
	id    string
	store *store.Store
	prog  *tea.Program
	log   pslog.Logger

	done    chan struct{}
	runErr  error
	applied uint64
	mu      sync.Mutex
}

type applyMsg struct {
	event store.Event
	reply chan error
}

type loop struct {
	s *Session
}

func (l loop) Init() tea.Cmd { return nil }

func (l loop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case applyMsg:
		err := l.s.dispatch(msg.event)
		if msg.reply != nil {
			msg.reply <- err
		}
	case store.Event:
		_ = l.s.dispatch(msg)
	}
	return l, nil
}

func (l loop) View() string { return "" }

// Start creates a session with a new id and starts its loop. The loop stops
// when ctx is cancelled or Close is called. A nil st gets a new store.
func Start(ctx context.Context, st *store.Store) *Session {
	id := uuid.NewString()
	log := logx.SessionLogger(ctx, id)
	if st == nil {
		st = store.New(store.WithLogger(log))
	}
	s := &Session{
		id:    id,
		store: st,
		log:   log,
		done:  make(chan struct{}),
	}
	s.prog = tea.NewProgram(loop{s: s},
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	go s.run()
	log.Debug("session started")
	return s
}

func (s *Session) run() {
	_, err := s.prog.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		err = fmt.Errorf("run session loop: %w", err)
		s.log.Error("session stopped", "err", err)
	} else {
		s.log.Debug("session stopped", "applied", s.Applied())
	}
	s.runErr = err
	close(s.done)
}

func (s *Session) dispatch(ev store.Event) error {
	err := s.store.Dispatch(ev)
	s.mu.Lock()
	s.applied++
	s.mu.Unlock()
	return err
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Store returns the session store. Reads are safe from any goroutine.
func (s *Session) Store() *store.Store { return s.store }

// Applied returns the number of events the loop has processed.
func (s *Session) Applied() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}

// Send queues ev without waiting for it to be applied.
func (s *Session) Send(ctx context.Context, ev store.Event) error {
	select {
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.prog.Send(ev)
	return nil
}

// Apply queues ev and waits until the loop applied it. It returns the
// rejection reason of the store, nil if ev was accepted.
func (s *Session) Apply(ctx context.Context, ev store.Event) error {
	reply := make(chan error, 1)
	select {
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.prog.Send(applyMsg{event: ev, reply: reply})
	select {
	case err := <-reply:
		return err
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the loop and waits for it to exit.
func (s *Session) Close() error {
	s.prog.Quit()
	<-s.done
	return s.runErr
}

// Done is closed when the loop has exited.
func (s *Session) Done() <-chan struct{} { return s.done }
