package domain

import "time"

// Note is a short text snippet a user saved with /save.
type Note struct {
	NoteID    string    `bson:"note_id" json:"note_id"`
	UserID    int64     `bson:"user_id" json:"user_id"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
