// ABOUTME: Serialized form of the note collection.
// ABOUTME: Converts between stored JSON records and models.Note.

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harper/quicknotes/internal/models"
)

// noteRecord is one note as stored under the collection key.
type noteRecord struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func fromModel(n *models.Note) noteRecord {
	return noteRecord{
		ID:        n.ID.String(),
		Title:     n.Title,
		Content:   n.Content,
		Color:     n.Color.String(),
		IsPinned:  n.IsPinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// toModel converts the record. An unknown color falls back to the default;
// callers that care check hasValidColor first.
func (r *noteRecord) toModel() (models.Note, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.Note{}, fmt.Errorf("parse note ID %q: %w", r.ID, err)
	}
	color, err := models.ParseColor(r.Color)
	if err != nil {
		color = models.DefaultColor
	}
	return models.Note{
		ID:        id,
		Title:     r.Title,
		Content:   r.Content,
		Color:     color,
		IsPinned:  r.IsPinned,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func (r *noteRecord) hasValidColor() bool {
	_, err := models.ParseColor(r.Color)
	return err == nil
}

// Encode serializes notes in collection order.
func Encode(notes []models.Note) (string, error) {
	records := make([]noteRecord, len(notes))
	for i := range notes {
		if !notes[i].Color.IsValid() {
			return "", fmt.Errorf("encode note %s: %w", notes[i].ID, models.ErrInvalidColor)
		}
		records[i] = fromModel(&notes[i])
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal notes: %w", err)
	}
	return string(data), nil
}

func decodeRecords(raw string) ([]noteRecord, error) {
	var records []noteRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	return records, nil
}
