// Package models defines the journal records persisted in the shared store.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DiaryEntry is a single journal record. Identity is by ID.
type DiaryEntry struct {
	// ID is assigned at creation and never changes.
	ID uuid.UUID `json:"id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// Date defaults to the creation time and is reset on every edit.
	Date time.Time `json:"date"`

	// Mood is a short text or emoji tag, may be empty.
	Mood string `json:"mood"`
}

// NewDiaryEntry builds an entry with a fresh identifier dated at now.
func NewDiaryEntry(title, content, mood string, now time.Time) DiaryEntry {
	return DiaryEntry{
		ID:      uuid.New(),
		Title:   title,
		Content: content,
		Date:    now,
		Mood:    mood,
	}
}

// Equal reports whether two entries hold the same values. Dates are compared
// as instants so a decoded entry equals the one that was encoded.
func (e DiaryEntry) Equal(o DiaryEntry) bool {
	return e.ID == o.ID &&
		e.Title == o.Title &&
		e.Content == o.Content &&
		e.Mood == o.Mood &&
		e.Date.Equal(o.Date)
}

// CloneEntries returns a copy of the slice so callers cannot mutate the
// owner's backing array.
func CloneEntries(entries []DiaryEntry) []DiaryEntry {
	if len(entries) == 0 {
		return []DiaryEntry{}
	}
	dup := make([]DiaryEntry, len(entries))
	copy(dup, entries)
	return dup
}
