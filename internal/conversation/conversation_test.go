package conversation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeginThenTextClosesConversation(t *testing.T) {
	e := NewEngine()
	assert.False(t, e.Active(1))

	e.Begin(1)
	assert.True(t, e.Active(1))

	assert.True(t, e.Intercept(1, false))
	assert.False(t, e.Active(1))

	// Terminal: a second text is no longer intercepted.
	assert.False(t, e.Intercept(1, false))
}

func TestCommandsAreNotSwallowedByDefault(t *testing.T) {
	e := NewEngine()
	e.Begin(1)

	assert.False(t, e.Intercept(1, true))
	assert.True(t, e.Active(1), "conversation must stay open after a command passes through")
}

func TestInterceptCommandsPolicy(t *testing.T) {
	e := NewEngine()
	e.InterceptCommands = true
	e.Begin(1)

	assert.True(t, e.Intercept(1, true))
	assert.False(t, e.Active(1))
}

func TestCancel(t *testing.T) {
	e := NewEngine()

	assert.False(t, e.Cancel(1), "cancel without an open conversation")

	e.Begin(1)
	assert.True(t, e.Cancel(1))
	assert.False(t, e.Active(1))
	assert.False(t, e.Intercept(1, false))
}

func TestChatsAreIsolated(t *testing.T) {
	e := NewEngine()
	e.Begin(1)
	e.Begin(2)

	assert.True(t, e.Intercept(1, false))
	assert.True(t, e.Active(2), "closing chat 1 must not touch chat 2")
	assert.True(t, e.Intercept(2, false))
}

func TestBeginIsIdempotent(t *testing.T) {
	e := NewEngine()
	e.Begin(7)
	e.Begin(7)

	assert.True(t, e.Intercept(7, false))
	assert.False(t, e.Intercept(7, false))
}

func TestConcurrentInterceptIsExclusive(t *testing.T) {
	e := NewEngine()
	e.Begin(5)

	var wg sync.WaitGroup
	wins := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- e.Intercept(5, false)
		}()
	}
	wg.Wait()
	close(wins)

	captured := 0
	for won := range wins {
		if won {
			captured++
		}
	}
	assert.Equal(t, 1, captured, "exactly one event may capture the feedback")
}
