package store

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestStatsProviderCountsNotes(t *testing.T) {
	notes := &stubCountCollection{count: 12}

	provider := NewStatsProvider(notes)

	ctx := context.Background()

	total, err := provider.CountNotes(ctx)
	if err != nil {
		t.Fatalf("expected note count to succeed, got error: %v", err)
	}
	if total != 12 {
		t.Fatalf("expected 12 notes, got %d", total)
	}
	if notes.calls != 1 {
		t.Fatalf("expected notes count to be called once, got %d", notes.calls)
	}
}

func TestStatsProviderCountsUserNotes(t *testing.T) {
	notes := &stubCountCollection{count: 3}
	provider := NewStatsProvider(notes)

	count, err := provider.CountUserNotes(context.Background(), 42)
	if err != nil {
		t.Fatalf("expected user note count to succeed, got error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 notes, got %d", count)
	}

	filter, ok := notes.lastFilter.(bson.M)
	if !ok {
		t.Fatalf("expected bson.M filter, got %T", notes.lastFilter)
	}
	if filter["user_id"] != int64(42) {
		t.Fatalf("expected filter on user 42, got %v", filter)
	}
}

func TestStatsProviderRequiresContext(t *testing.T) {
	provider := NewStatsProvider(&stubCountCollection{})

	if _, err := provider.CountNotes(nil); err == nil {
		t.Fatalf("expected error for nil context")
	}
	if _, err := provider.CountUserNotes(nil, 1); err == nil {
		t.Fatalf("expected error for nil context")
	}
}

func TestStatsProviderRequiresInitialization(t *testing.T) {
	var provider *StatsProvider

	if _, err := provider.CountNotes(context.Background()); err == nil {
		t.Fatalf("expected error for nil provider")
	}
	if _, err := provider.CountUserNotes(context.Background(), 1); err == nil {
		t.Fatalf("expected error for nil provider")
	}
}

func TestStatsProviderRequiresUserID(t *testing.T) {
	provider := NewStatsProvider(&stubCountCollection{})

	if _, err := provider.CountUserNotes(context.Background(), 0); err == nil {
		t.Fatalf("expected error for zero user id")
	}
}

func TestStatsProviderPropagatesErrors(t *testing.T) {
	expectedErr := errors.New("count failed")
	provider := NewStatsProvider(&stubCountCollection{err: expectedErr})

	if _, err := provider.CountNotes(context.Background()); err == nil {
		t.Fatalf("expected error from note count")
	}
	if _, err := provider.CountUserNotes(context.Background(), 1); err == nil {
		t.Fatalf("expected error from user note count")
	}
}

type stubCountCollection struct {
	count      int64
	err        error
	calls      int
	lastFilter interface{}
}

func (s *stubCountCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	s.calls++
	s.lastFilter = filter
	return s.count, s.err
}
