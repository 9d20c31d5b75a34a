package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tg_toolkit_bot/internal/domain"
)

// noteCollection narrows mongo.Collection for faking in tests.
type noteCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// NotesRepository persists and retrieves user notes in MongoDB.
type NotesRepository struct {
	collection noteCollection
}

// NewNotesRepository constructs a NotesRepository.
func NewNotesRepository(collection noteCollection) *NotesRepository {
	return &NotesRepository{collection: collection}
}

// Add inserts a note for the user and returns the stored record.
func (r *NotesRepository) Add(ctx context.Context, userID int64, text string) (domain.Note, error) {
	if r == nil || r.collection == nil {
		return domain.Note{}, errors.New("notes repository is not initialized")
	}
	if ctx == nil {
		return domain.Note{}, errors.New("context is required")
	}
	if userID == 0 {
		return domain.Note{}, errors.New("user_id is required")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Note{}, errors.New("note text is required")
	}

	note := domain.Note{
		NoteID:    uuid.NewString(),
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.collection.InsertOne(ctx, note); err != nil {
		return domain.Note{}, fmt.Errorf("insert note: %w", err)
	}

	return note, nil
}

// List returns the user's notes ordered by creation time.
func (r *NotesRepository) List(ctx context.Context, userID int64) ([]domain.Note, error) {
	if r == nil || r.collection == nil {
		return nil, errors.New("notes repository is not initialized")
	}
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if userID == 0 {
		return nil, errors.New("user_id is required")
	}

	cursor, err := r.collection.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find notes: %w", err)
	}

	var notes []domain.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}

	return notes, nil
}

// Remove deletes one of the user's notes by note id, reporting whether a
// document was actually removed.
func (r *NotesRepository) Remove(ctx context.Context, userID int64, noteID string) (bool, error) {
	if r == nil || r.collection == nil {
		return false, errors.New("notes repository is not initialized")
	}
	if ctx == nil {
		return false, errors.New("context is required")
	}
	if userID == 0 {
		return false, errors.New("user_id is required")
	}
	if strings.TrimSpace(noteID) == "" {
		return false, errors.New("note_id is required")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{
		"user_id": userID,
		"note_id": noteID,
	})
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}

	return result != nil && result.DeletedCount > 0, nil
}
