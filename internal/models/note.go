// ABOUTME: Note model representing a short color-tagged memo.
// ABOUTME: Provides constructor, patching, and timestamp handling.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Color     Color
	IsPinned  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotePatch holds the fields an update may change. Nil fields are left alone.
type NotePatch struct {
	Title    *string
	Content  *string
	Color    *Color
	IsPinned *bool
}

func NewNote(id uuid.UUID, title, content string, color Color, now time.Time) *Note {
	return &Note{
		ID:        id,
		Title:     title,
		Content:   content,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes UpdatedAt. It never moves the timestamp backwards.
func (n *Note) Touch(now time.Time) {
	if now.Before(n.UpdatedAt) {
		return
	}
	n.UpdatedAt = now
}

// Apply merges the patch into the note and touches it.
func (n *Note) Apply(p NotePatch, now time.Time) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
	if p.IsPinned != nil {
		n.IsPinned = *p.IsPinned
	}
	n.Touch(now)
}

// Validate reports whether the patch only carries acceptable values.
func (p NotePatch) Validate() error {
	if p.Color != nil && !p.Color.IsValid() {
		return ErrInvalidColor
	}
	return nil
}

// Trimmed returns a copy of the patch with surrounding whitespace removed
// from title and content.
func (p NotePatch) Trimmed() NotePatch {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		p.Title = &title
	}
	if p.Content != nil {
		content := strings.TrimSpace(*p.Content)
		p.Content = &content
	}
	return p
}

// IsEmpty reports whether the patch changes nothing besides UpdatedAt.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Color == nil && p.IsPinned == nil
}

// DisplayTitle returns the title, or "Untitled" for an empty one.
func (n *Note) DisplayTitle() string {
	if n.Title == "" {
		return "Untitled"
	}
	return n.Title
}

// ShortID is the six character prefix used on the command line.
func (n *Note) ShortID() string {
	return n.ID.String()[:6]
}
