// ABOUTME: Derived pinned/unpinned grouping of the note collection.
// ABOUTME: Pure computation plus a follower that recomputes on store changes.

package view

import (
	"sync"

	"github.com/harper/quicknotes/internal/models"
	"github.com/harper/quicknotes/internal/store"
)

// Board is the display grouping of a collection.
type Board struct {
	Pinned   []models.Note
	Unpinned []models.Note
	// Empty is set when the whole collection has no notes.
	Empty bool
}

// Compose partitions notes by pin state, preserving their relative order.
// The input slice is not modified.
func Compose(notes []models.Note) Board {
	b := Board{
		Pinned:   []models.Note{},
		Unpinned: []models.Note{},
		Empty:    len(notes) == 0,
	}
	for _, n := range notes {
		if n.IsPinned {
			b.Pinned = append(b.Pinned, n)
		} else {
			b.Unpinned = append(b.Unpinned, n)
		}
	}
	return b
}

// Len is the total number of notes on the board.
func (b Board) Len() int {
	return len(b.Pinned) + len(b.Unpinned)
}

// Source is a collection that announces its changes.
type Source interface {
	Notes() []models.Note
	Subscribe(fn func(store.Event)) (cancel func())
}

// Follow calls fn with the current board and again after every change of src.
// Changes that arrive while the initial board is being built are delivered
// after it, never before. The returned function stops following.
func Follow(src Source, fn func(Board)) (stop func()) {
	var gate sync.Mutex
	gate.Lock()
	cancel := src.Subscribe(func(ev store.Event) {
		gate.Lock()
		defer gate.Unlock()
		fn(Compose(ev.Notes))
	})
	fn(Compose(src.Notes()))
	gate.Unlock()
	return cancel
}
