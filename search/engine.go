package search

import (
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/cmdref"
)

// Status identifies which of the mutually exclusive result states the
// consumer should render.
type Status int

// Status constants.
const (
	StatusBrowse    Status = iota // No active search: show the whole (platform-filtered) corpus
	StatusLoading                 // Simulated search in flight: results are withheld
	StatusNoResults               // A search completed and matched nothing
	StatusResults                 // A search completed with matches
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusBrowse:
		return "browse"
	case StatusLoading:
		return "loading"
	case StatusNoResults:
		return "no-results"
	case StatusResults:
		return "results"
	default:
		return "unknown"
	}
}

// State is a consistent snapshot of the engine.
type State struct {
	Query              string
	SelectedPlatformID string // Empty when no platform is selected
	Results            []cmdref.Command
	ResultCount        int
	IsLoading          bool
	ShowNoResults      bool
	Status             Status
}

// Engine holds the query and platform selection and derives the visible
// results. The corpus is read-only and shared; Engine never modifies it.
//
// Whenever the query changes to a non-empty value the engine enters a
// loading window of fixed length. Results are withheld while loading. A
// newer query cancels the pending window and starts a fresh one; an empty
// query clears loading immediately.
type Engine struct {
	commands  []cmdref.Command
	delay     time.Duration
	scheduler Scheduler

	mu         sync.Mutex
	query      string
	platformID string
	loading    bool
	timer      Timer
	generation uint64

	settled chan struct{}
}

// Option configures an Engine.
type Option func(*Engine)

// WithDelay sets the length of the simulated loading window.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.delay = d
	}
}

// WithScheduler sets the scheduler used for the loading window.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		e.scheduler = s
	}
}

// WithPlatform preselects a platform.
func WithPlatform(id string) Option {
	return func(e *Engine) {
		e.platformID = id
	}
}

// NewEngine creates an Engine over commands.
func NewEngine(commands []cmdref.Command, opts ...Option) *Engine {
	e := &Engine{
		commands:  commands,
		delay:     cmdref.DefaultSearchDelay,
		scheduler: RealScheduler{},
		settled:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetQuery replaces the query. Setting the current query again is a no-op.
func (e *Engine) SetQuery(q string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if q == e.query {
		return
	}
	e.query = q

	// Any change supersedes the pending window.
	e.generation++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}

	if q == "" {
		e.loading = false
		return
	}

	e.loading = true
	gen := e.generation
	e.timer = e.scheduler.AfterFunc(e.delay, func() {
		e.finishLoading(gen)
	})
}

// finishLoading ends the loading window started at generation gen. A
// callback that lost a race with Stop finds a newer generation and does
// nothing.
func (e *Engine) finishLoading(gen uint64) {
	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		return
	}
	e.loading = false
	e.timer = nil
	e.mu.Unlock()

	select {
	case e.settled <- struct{}{}:
	default:
	}
}

// SelectPlatform toggles the platform selection. Selecting the selected
// platform clears the selection; selecting another replaces it. An empty id
// clears the selection.
func (e *Engine) SelectPlatform(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id == e.platformID {
		e.platformID = ""
		return
	}
	e.platformID = id
}

// Query returns the current query.
func (e *Engine) Query() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query
}

// SelectedPlatform returns the selected platform id, or "" when none is selected.
func (e *Engine) SelectedPlatform() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.platformID
}

// IsLoading reports whether a loading window is in progress.
func (e *Engine) IsLoading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

// Results returns the visible commands. It is empty while loading.
func (e *Engine) Results() []cmdref.Command {
	return e.Snapshot().Results
}

// ShowNoResults reports whether a completed search matched nothing.
func (e *Engine) ShowNoResults() bool {
	return e.Snapshot().ShowNoResults
}

// Settled receives a value after a loading window elapses. Notifications are
// coalesced: at most one is buffered.
func (e *Engine) Settled() <-chan struct{} {
	return e.settled
}

// Snapshot returns the engine state and the values derived from it. The
// query, selection and loading flag are read together so they agree.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	query, platformID, loading := e.query, e.platformID, e.loading
	e.mu.Unlock()

	var results []cmdref.Command
	if loading {
		results = []cmdref.Command{}
	} else {
		results = Filter(e.commands, query, platformID)
	}

	active := strings.TrimSpace(query) != ""
	noResults := active && !loading && len(results) == 0

	status := StatusResults
	switch {
	case loading:
		status = StatusLoading
	case noResults:
		status = StatusNoResults
	case !active:
		status = StatusBrowse
	}

	return State{
		Query:              query,
		SelectedPlatformID: platformID,
		Results:            results,
		ResultCount:        len(results),
		IsLoading:          loading,
		ShowNoResults:      noResults,
		Status:             status,
	}
}
