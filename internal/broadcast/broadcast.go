// Package broadcast fans a single admin message out to every registered user.
package broadcast

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"tg_toolkit_bot/internal/logging"
)

// defaultParallelism bounds in-flight sends so one slow recipient cannot
// serialize the whole batch.
const defaultParallelism = 8

// Sender delivers a text message to a single chat.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, chatID int64, text string) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, chatID int64, text string) error {
	return f(ctx, chatID, text)
}

// Result summarizes a single fan-out run. It is computed per invocation and
// never stored.
type Result struct {
	Attempted int
	Succeeded int
}

// Broadcaster sends the identical message to a snapshot of recipient ids.
// Individual failures (blocked bot, dead chat) are counted and logged but
// never abort the remaining sends. There are no retries and no batch timeout.
type Broadcaster struct {
	sender      Sender
	logger      *logrus.Entry
	parallelism int
}

// New constructs a Broadcaster over the given sender.
func New(sender Sender, logger *logrus.Entry) *Broadcaster {
	if logger == nil {
		logger = logging.Logger()
	}

	return &Broadcaster{
		sender:      sender,
		logger:      logger,
		parallelism: defaultParallelism,
	}
}

// Run delivers text to every id and reports how many sends were attempted and
// how many succeeded. Sends run with bounded parallelism; the success count is
// accumulated atomically so no result is lost to a race.
func (b *Broadcaster) Run(ctx context.Context, ids []int64, text string) Result {
	if b == nil || b.sender == nil || len(ids) == 0 {
		return Result{}
	}

	runID := uuid.NewString()
	log := b.logger.WithFields(logging.Fields{
		"event":        "broadcast_run",
		"broadcast_id": runID,
		"recipients":   len(ids),
	})
	log.Info("starting broadcast")

	var succeeded atomic.Int64

	g := &errgroup.Group{}
	g.SetLimit(b.parallelism)

	for _, id := range ids {
		g.Go(func() error {
			if err := b.sender.Send(ctx, id, text); err != nil {
				b.logger.WithFields(logging.Fields{
					"event":        "broadcast_send_failed",
					"broadcast_id": runID,
					"chat_id":      id,
				}).WithError(err).Warn("could not deliver broadcast to user")
				return nil
			}

			succeeded.Add(1)
			return nil
		})
	}

	_ = g.Wait()

	result := Result{
		Attempted: len(ids),
		Succeeded: int(succeeded.Load()),
	}

	log.WithFields(logging.Fields{
		"succeeded": result.Succeeded,
		"failed":    result.Attempted - result.Succeeded,
	}).Info("broadcast complete")

	return result
}
