package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type countCollection interface {
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

// StatsProvider exposes note counts for diagnostics without leaking MongoDB
// internals to callers.
type StatsProvider struct {
	notes countCollection
}

// NewStatsProvider constructs a StatsProvider backed by the notes collection.
func NewStatsProvider(notes countCollection) *StatsProvider {
	return &StatsProvider{notes: notes}
}

// CountNotes returns the total number of stored notes.
func (p *StatsProvider) CountNotes(ctx context.Context) (int64, error) {
	if ctx == nil {
		return 0, errors.New("context is required")
	}
	if p == nil || p.notes == nil {
		return 0, errors.New("stats provider is not initialized")
	}

	count, err := p.notes.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}

	return count, nil
}

// CountUserNotes returns the number of notes stored for one user.
func (p *StatsProvider) CountUserNotes(ctx context.Context, userID int64) (int64, error) {
	if ctx == nil {
		return 0, errors.New("context is required")
	}
	if p == nil || p.notes == nil {
		return 0, errors.New("stats provider is not initialized")
	}
	if userID == 0 {
		return 0, errors.New("user_id is required")
	}

	count, err := p.notes.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("count user notes: %w", err)
	}

	return count, nil
}
