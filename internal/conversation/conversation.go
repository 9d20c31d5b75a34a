// Package conversation implements the per-chat feedback collection state
// machine.
package conversation

import "sync"

// State is a chat's position in the feedback flow.
type State int

const (
	// StateIdle means no conversation is open for the chat.
	StateIdle State = iota
	// StateAwaitingFeedback means the next non-command text from the chat is
	// captured as feedback.
	StateAwaitingFeedback
)

// Engine holds conversation state per chat id. State is in-memory only: a
// restart returns every open conversation to idle, dropping any in-flight
// feedback collection.
//
// All transitions for a single chat are atomic with respect to interleaved
// events for that chat; distinct chats never share state.
type Engine struct {
	// InterceptCommands controls whether an open conversation also captures
	// slash commands as feedback text. Leave false so commands are never
	// starved by an open conversation.
	InterceptCommands bool

	mu     sync.Mutex
	states map[int64]State
}

// NewEngine constructs an Engine with every chat idle.
func NewEngine() *Engine {
	return &Engine{states: make(map[int64]State)}
}

// Begin opens a conversation for the chat. Beginning an already-open
// conversation is a no-op.
func (e *Engine) Begin(chatID int64) {
	e.mu.Lock()
	e.states[chatID] = StateAwaitingFeedback
	e.mu.Unlock()
}

// Intercept atomically decides whether an inbound event belongs to the chat's
// open conversation. When it returns true the conversation is closed and the
// caller owns the event; otherwise normal dispatch proceeds.
func (e *Engine) Intercept(chatID int64, isCommand bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.states[chatID] != StateAwaitingFeedback {
		return false
	}
	if isCommand && !e.InterceptCommands {
		return false
	}

	delete(e.states, chatID)
	return true
}

// Cancel closes the chat's conversation, reporting whether one was open.
func (e *Engine) Cancel(chatID int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.states[chatID] != StateAwaitingFeedback {
		return false
	}

	delete(e.states, chatID)
	return true
}

// Active reports whether the chat has an open conversation.
func (e *Engine) Active(chatID int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.states[chatID] == StateAwaitingFeedback
}
