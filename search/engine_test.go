package search_test

import (
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/cmdref"
	"github.com/fwojciec/cmdref/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler records scheduled callbacks so tests decide when they fire.
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) search.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{delay: d, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// fireAll runs every timer that has not been stopped or fired.
func (s *fakeScheduler) fireAll() {
	s.mu.Lock()
	pending := make([]*fakeTimer, 0, len(s.timers))
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			pending = append(pending, t)
		}
	}
	s.mu.Unlock()
	for _, t := range pending {
		t.fn()
	}
}

func (s *fakeScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func testCorpus() []cmdref.Command {
	linux := cmdref.PlatformTag{ID: "linux", Name: "Linux"}
	macos := cmdref.PlatformTag{ID: "macos", Name: "macOS"}
	windows := cmdref.PlatformTag{ID: "windows", Name: "Windows"}
	return []cmdref.Command{
		{Name: "git", Subtitle: "Version control", Description: "Distributed revision control.", Platforms: []cmdref.PlatformTag{linux, macos, windows}},
		{Name: "ls", Subtitle: "List directory", Description: "Lists directory contents.", Platforms: []cmdref.PlatformTag{linux, macos}},
		{Name: "dir", Subtitle: "List directory", Description: "Windows directory listing.", Platforms: []cmdref.PlatformTag{windows}},
		{Name: "grep", Subtitle: "Search text", Description: "Print lines matching a pattern, e.g. in a GIT log.", Platforms: []cmdref.PlatformTag{linux, macos}},
		{Name: "alias", Subtitle: "Define shortcuts", Description: "Define or display aliases.", Platforms: []cmdref.PlatformTag{linux, macos}},
	}
}

func names(cmds []cmdref.Command) []string {
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.Name)
	}
	return out
}

func newEngine(opts ...search.Option) (*search.Engine, *fakeScheduler) {
	s := &fakeScheduler{}
	opts = append([]search.Option{search.WithScheduler(s)}, opts...)
	return search.NewEngine(testCorpus(), opts...), s
}

func TestEngine_InitialState(t *testing.T) {
	t.Parallel()

	e, _ := newEngine()
	state := e.Snapshot()

	assert.Empty(t, state.Query)
	assert.Empty(t, state.SelectedPlatformID)
	assert.False(t, state.IsLoading)
	assert.False(t, state.ShowNoResults)
	assert.Equal(t, search.StatusBrowse, state.Status)
	assert.Equal(t, []string{"git", "ls", "dir", "grep", "alias"}, names(state.Results))
	assert.Equal(t, 5, state.ResultCount)
}

func TestEngine_LoadingSuppressesResults(t *testing.T) {
	t.Parallel()

	e, s := newEngine()

	e.SetQuery("git")

	assert.True(t, e.IsLoading())
	assert.Empty(t, e.Results())
	assert.Equal(t, search.StatusLoading, e.Snapshot().Status)
	assert.False(t, e.ShowNoResults(), "loading is not a no-results state")

	s.fireAll()

	assert.False(t, e.IsLoading())
	assert.Equal(t, []string{"git", "grep"}, names(e.Results()))
	assert.Equal(t, search.StatusResults, e.Snapshot().Status)
}

func TestEngine_UsesConfiguredDelay(t *testing.T) {
	t.Parallel()

	e, s := newEngine(search.WithDelay(750 * time.Millisecond))
	e.SetQuery("ls")

	require.Len(t, s.timers, 1)
	assert.Equal(t, 750*time.Millisecond, s.timers[0].delay)
}

func TestEngine_DefaultDelay(t *testing.T) {
	t.Parallel()

	e, s := newEngine()
	e.SetQuery("ls")

	require.Len(t, s.timers, 1)
	assert.Equal(t, 300*time.Millisecond, s.timers[0].delay)
}

func TestEngine_EmptyQueryClearsLoading(t *testing.T) {
	t.Parallel()

	e, s := newEngine()

	e.SetQuery("git")
	require.True(t, e.IsLoading())

	e.SetQuery("")

	assert.False(t, e.IsLoading(), "empty query clears loading immediately")
	assert.Equal(t, 0, s.pending(), "pending timer is cancelled")
	assert.Equal(t, 5, e.Snapshot().ResultCount)
	assert.Equal(t, search.StatusBrowse, e.Snapshot().Status)
}

func TestEngine_DebouncesToLatestQuery(t *testing.T) {
	t.Parallel()

	e, s := newEngine()

	e.SetQuery("g")
	e.SetQuery("gi")
	e.SetQuery("git")

	assert.Equal(t, 1, s.pending(), "only the latest timer stays scheduled")
	assert.True(t, e.IsLoading())

	s.fireAll()

	assert.False(t, e.IsLoading())
	assert.Equal(t, "git", e.Query())
}

func TestEngine_StaleCallbackIsIgnored(t *testing.T) {
	t.Parallel()

	e, s := newEngine()

	e.SetQuery("git")
	require.Len(t, s.timers, 1)
	stale := s.timers[0].fn

	e.SetQuery("grep")

	// A callback that fired despite Stop must not end the newer window.
	stale()
	assert.True(t, e.IsLoading())

	s.fireAll()
	assert.False(t, e.IsLoading())
	assert.Equal(t, []string{"grep"}, names(e.Results()))
}

func TestEngine_SameQueryIsNoop(t *testing.T) {
	t.Parallel()

	e, s := newEngine()

	e.SetQuery("ls")
	s.fireAll()
	require.False(t, e.IsLoading())

	e.SetQuery("ls")

	assert.False(t, e.IsLoading(), "unchanged query does not restart loading")
	assert.Len(t, s.timers, 1)
}

func TestEngine_CaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "name match upper case", query: "ALIAS", want: []string{"alias"}},
		{name: "subtitle match mixed case", query: "sEaRcH tExT", want: []string{"grep"}},
		{name: "description match", query: "revision", want: []string{"git"}},
		{name: "matches across fields", query: "git", want: []string{"git", "grep"}},
		{name: "shared subtitle", query: "list directory", want: []string{"ls", "dir"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, s := newEngine()
			e.SetQuery(tt.query)
			s.fireAll()

			assert.Equal(t, tt.want, names(e.Results()))
		})
	}
}

func TestEngine_DoesNotMatchDisplayOnlyFields(t *testing.T) {
	t.Parallel()

	commands := []cmdref.Command{
		{
			Name:        "tar",
			Subtitle:    "Archive files",
			Description: "Create and extract archives.",
			Categories:  []string{"compression"},
			CommonFlags: []cmdref.Flag{{Flag: "-z", Description: "gzip"}},
			Examples:    []cmdref.Example{{Command: "tar -czf out.tgz dir"}},
		},
	}
	s := &fakeScheduler{}
	e := search.NewEngine(commands, search.WithScheduler(s))

	for _, q := range []string{"compression", "gzip", "out.tgz"} {
		e.SetQuery(q)
		s.fireAll()
		assert.Empty(t, e.Results(), "query %q must not match display-only fields", q)
	}
}

func TestEngine_SelectPlatformExclusivity(t *testing.T) {
	t.Parallel()

	e, _ := newEngine()

	e.SelectPlatform("linux")
	assert.Equal(t, "linux", e.SelectedPlatform())

	e.SelectPlatform("windows")
	assert.Equal(t, "windows", e.SelectedPlatform(), "second selection replaces the first")

	e.SelectPlatform("windows")
	assert.Empty(t, e.SelectedPlatform(), "selecting the selected platform clears it")

	e.SelectPlatform("macos")
	e.SelectPlatform("")
	assert.Empty(t, e.SelectedPlatform(), "empty id clears the selection")
}

func TestEngine_PlatformFilter(t *testing.T) {
	t.Parallel()

	e, s := newEngine()

	e.SelectPlatform("windows")
	assert.Equal(t, []string{"git", "dir"}, names(e.Results()))
	assert.False(t, e.IsLoading(), "platform changes do not trigger loading")

	e.SetQuery("list")
	s.fireAll()
	assert.Equal(t, []string{"dir"}, names(e.Results()), "text and platform filters combine")
}

func TestEngine_WithPlatform(t *testing.T) {
	t.Parallel()

	e, _ := newEngine(search.WithPlatform("windows"))

	assert.Equal(t, "windows", e.SelectedPlatform())
	assert.Equal(t, []string{"git", "dir"}, names(e.Results()))
}

func TestEngine_NoResults(t *testing.T) {
	t.Parallel()

	e, s := newEngine()

	e.SetQuery("zzz-nonexistent")
	assert.False(t, e.ShowNoResults(), "not shown while loading")

	s.fireAll()

	state := e.Snapshot()
	assert.Empty(t, state.Results)
	assert.True(t, state.ShowNoResults)
	assert.Equal(t, search.StatusNoResults, state.Status)

	e.SetQuery("")
	assert.False(t, e.ShowNoResults())
}

func TestEngine_NoResultsWithPlatform(t *testing.T) {
	t.Parallel()

	e, s := newEngine()

	e.SelectPlatform("windows")
	e.SetQuery("grep")
	s.fireAll()

	assert.True(t, e.ShowNoResults())
}

func TestEngine_WhitespaceQueryIsNotAnActiveSearch(t *testing.T) {
	t.Parallel()

	e, s := newEngine()

	e.SetQuery("   ")
	assert.True(t, e.IsLoading(), "the raw query is non-empty so loading starts")

	s.fireAll()

	state := e.Snapshot()
	assert.False(t, state.ShowNoResults, "trimmed query is empty")
	assert.Equal(t, search.StatusBrowse, state.Status)
}

func TestEngine_SettledNotification(t *testing.T) {
	t.Parallel()

	e, s := newEngine()

	e.SetQuery("git")
	select {
	case <-e.Settled():
		t.Fatal("unexpected notification before the window elapsed")
	default:
	}

	s.fireAll()

	select {
	case <-e.Settled():
	default:
		t.Fatal("expected a notification after the window elapsed")
	}
}

func TestEngine_RealScheduler(t *testing.T) {
	t.Parallel()

	e := search.NewEngine(testCorpus(), search.WithDelay(10*time.Millisecond))

	e.SetQuery("git")
	require.True(t, e.IsLoading())

	select {
	case <-e.Settled():
	case <-time.After(2 * time.Second):
		t.Fatal("loading window never elapsed")
	}

	assert.False(t, e.IsLoading())
	assert.Equal(t, []string{"git", "grep"}, names(e.Results()))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("empty query and platform returns everything in order", func(t *testing.T) {
		t.Parallel()

		got := search.Filter(testCorpus(), "", "")
		assert.Equal(t, []string{"git", "ls", "dir", "grep", "alias"}, names(got))
	})

	t.Run("unknown platform matches nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, search.Filter(testCorpus(), "", "plan9"))
	})

	t.Run("nil corpus returns empty slice", func(t *testing.T) {
		t.Parallel()

		got := search.Filter(nil, "git", "")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "browse", search.StatusBrowse.String())
	assert.Equal(t, "loading", search.StatusLoading.String())
	assert.Equal(t, "no-results", search.StatusNoResults.String())
	assert.Equal(t, "results", search.StatusResults.String())
}
