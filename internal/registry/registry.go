// Package registry tracks the ids of users who have interacted with the bot.
package registry

import (
	"sync"

	"github.com/sirupsen/logrus"

	"tg_toolkit_bot/internal/logging"
)

// Registry is a concurrency-safe, in-memory set of Telegram user ids.
// Membership only grows; nothing survives a restart.
type Registry struct {
	mu     sync.RWMutex
	ids    map[int64]struct{}
	logger *logrus.Entry
}

// New constructs an empty Registry.
func New(logger *logrus.Entry) *Registry {
	if logger == nil {
		logger = logging.Logger()
	}

	return &Registry{
		ids:    make(map[int64]struct{}),
		logger: logger,
	}
}

// Record inserts the user id, reporting whether it was newly added.
// Re-recording a known id is a no-op.
func (r *Registry) Record(userID int64) bool {
	if r == nil || userID == 0 {
		return false
	}

	r.mu.Lock()
	_, seen := r.ids[userID]
	if !seen {
		r.ids[userID] = struct{}{}
	}
	r.mu.Unlock()

	if !seen {
		r.logger.WithFields(logging.Fields{
			"event":   "user_registered",
			"user_id": userID,
		}).Info("registered new user")
	}

	return !seen
}

// Snapshot returns a copy of the current membership. The copy is taken under
// the lock so concurrent Record calls can never be observed half-applied.
func (r *Registry) Snapshot() []int64 {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int64, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	return out
}

// Size returns the current number of recorded users.
func (r *Registry) Size() int {
	if r == nil {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ids)
}

// Contains reports whether the user id has been recorded.
func (r *Registry) Contains(userID int64) bool {
	if r == nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ids[userID]
	return ok
}
