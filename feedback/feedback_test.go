package feedback_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fwojciec/cmdref/feedback"
	"github.com/fwojciec/cmdref/mock"
	"github.com/stretchr/testify/assert"
)

func copier(ok bool) *mock.Copier {
	return &mock.Copier{CopyFn: func(ctx context.Context, text string) bool { return ok }}
}

func TestController_Copy(t *testing.T) {
	t.Parallel()

	t.Run("starts hidden", func(t *testing.T) {
		t.Parallel()

		c := feedback.NewController(copier(true))
		assert.Equal(t, feedback.State{}, c.State())
		assert.Zero(t, c.Generation())
	})

	t.Run("success uses the given message", func(t *testing.T) {
		t.Parallel()

		var got string
		c := feedback.NewController(&mock.Copier{CopyFn: func(ctx context.Context, text string) bool {
			got = text
			return true
		}})

		ok := c.Copy(context.Background(), "git log --oneline", "Copied git!", "")
		assert.True(t, ok)
		assert.Equal(t, "git log --oneline", got)
		assert.Equal(t, feedback.State{Visible: true, Success: true, Message: "Copied git!"}, c.State())
	})

	t.Run("success falls back to the default message", func(t *testing.T) {
		t.Parallel()

		c := feedback.NewController(copier(true))
		c.Copy(context.Background(), "ls", "", "")
		assert.Equal(t, feedback.State{Visible: true, Success: true, Message: "Copied to clipboard!"}, c.State())
	})

	t.Run("failure falls back to the default message", func(t *testing.T) {
		t.Parallel()

		c := feedback.NewController(copier(false))
		ok := c.Copy(context.Background(), "ls", "Copied!", "")
		assert.False(t, ok)
		assert.Equal(t, feedback.State{Visible: true, Success: false, Message: "Failed to copy to clipboard"}, c.State())
	})

	t.Run("failure uses the given message", func(t *testing.T) {
		t.Parallel()

		c := feedback.NewController(copier(false))
		c.Copy(context.Background(), "ls", "", "No clipboard")
		assert.Equal(t, "No clipboard", c.State().Message)
	})

	t.Run("configured defaults", func(t *testing.T) {
		t.Parallel()

		c := feedback.NewController(copier(false), feedback.WithDefaultMessages("Yanked", "Nope"))
		c.Copy(context.Background(), "ls", "", "")
		assert.Equal(t, "Nope", c.State().Message)
	})

	t.Run("last copy wins", func(t *testing.T) {
		t.Parallel()

		ok := true
		c := feedback.NewController(&mock.Copier{CopyFn: func(ctx context.Context, text string) bool { return ok }})
		c.Copy(context.Background(), "ls", "first", "")
		ok = false
		c.Copy(context.Background(), "ls", "", "second")

		assert.Equal(t, feedback.State{Visible: true, Success: false, Message: "second"}, c.State())
		assert.Equal(t, uint64(2), c.Generation())
	})
}

func TestController_Dismiss(t *testing.T) {
	t.Parallel()

	t.Run("hides and keeps the last outcome", func(t *testing.T) {
		t.Parallel()

		c := feedback.NewController(copier(true))
		c.Copy(context.Background(), "ls", "", "")
		c.Dismiss()

		assert.Equal(t, feedback.State{Visible: false, Success: true, Message: "Copied to clipboard!"}, c.State())
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		c := feedback.NewController(copier(true))
		c.Copy(context.Background(), "ls", "", "")
		c.Dismiss()
		first := c.State()
		c.Dismiss()

		assert.False(t, c.State().Visible)
		assert.Equal(t, first, c.State())
	})

	t.Run("dismiss before any copy", func(t *testing.T) {
		t.Parallel()

		c := feedback.NewController(copier(true))
		c.Dismiss()
		assert.False(t, c.State().Visible)
	})

	t.Run("copy after dismiss shows again", func(t *testing.T) {
		t.Parallel()

		c := feedback.NewController(copier(true))
		c.Copy(context.Background(), "ls", "", "")
		c.Dismiss()
		c.Copy(context.Background(), "ls", "", "")
		assert.True(t, c.State().Visible)
	})
}

func TestController_DismissGeneration(t *testing.T) {
	t.Parallel()

	t.Run("dismisses the current notification", func(t *testing.T) {
		t.Parallel()

		c := feedback.NewController(copier(true))
		c.Copy(context.Background(), "ls", "", "")

		assert.True(t, c.DismissGeneration(c.Generation()))
		assert.False(t, c.State().Visible)
	})

	t.Run("ignores a superseded notification", func(t *testing.T) {
		t.Parallel()

		c := feedback.NewController(copier(true))
		c.Copy(context.Background(), "ls", "", "")
		stale := c.Generation()
		c.Copy(context.Background(), "git status", "newer", "")

		assert.False(t, c.DismissGeneration(stale))
		assert.Equal(t, feedback.State{Visible: true, Success: true, Message: "newer"}, c.State())
	})
}

func TestController_ConcurrentCopies(t *testing.T) {
	t.Parallel()

	c := feedback.NewController(copier(true))

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Copy(context.Background(), "ls", "", "")
			_ = c.State()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(20), c.Generation())
	assert.True(t, c.State().Visible)
}

func TestController_CopyGeneration(t *testing.T) {
	t.Parallel()

	t.Run("each copy owns its generation", func(t *testing.T) {
		t.Parallel()

		c := feedback.NewController(copier(true))

		const n = 20
		gens := make([]uint64, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, gens[i] = c.CopyGeneration(context.Background(), "ls", "", "")
			}()
		}
		wg.Wait()

		want := make([]uint64, n)
		for i := range n {
			want[i] = uint64(i + 1)
		}
		assert.ElementsMatch(t, want, gens)
	})

	t.Run("slow copy finishing last owns the toast", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		c := feedback.NewController(&mock.Copier{CopyFn: func(ctx context.Context, text string) bool {
			if text == "slow" {
				<-release
			}
			return true
		}})

		type result struct {
			ok  bool
			gen uint64
		}
		done := make(chan result)
		go func() {
			ok, gen := c.CopyGeneration(context.Background(), "slow", "slow copied", "")
			done <- result{ok, gen}
		}()

		ok, fast := c.CopyGeneration(context.Background(), "fast", "fast copied", "")
		assert.True(t, ok)
		assert.Equal(t, uint64(1), fast)

		close(release)
		slow := <-done
		assert.True(t, slow.ok)
		assert.Equal(t, uint64(2), slow.gen)

		assert.False(t, c.DismissGeneration(fast), "the fast copy's timer must not hide the newer toast")
		assert.Equal(t, feedback.State{Visible: true, Success: true, Message: "slow copied"}, c.State())
		assert.True(t, c.DismissGeneration(slow.gen))
		assert.False(t, c.State().Visible)
	})
}
