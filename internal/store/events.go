// ABOUTME: Change notifications emitted by the note store.
// ABOUTME: Subscribers receive the changed note and a snapshot of the collection.

package store

import (
	"slices"
	"sync"

	"github.com/harper/quicknotes/internal/models"
)

type EventType int

const (
	EventCreated EventType = iota + 1
	EventUpdated
	EventDeleted
	EventPinToggled
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventUpdated:
		return "updated"
	case EventDeleted:
		return "deleted"
	case EventPinToggled:
		return "pin_toggled"
	default:
		return "unknown"
	}
}

// Event describes one applied mutation.
type Event struct {
	Type EventType
	// Note is the note as it was after the change (before removal for deletes).
	Note models.Note
	// Notes is the whole collection right after the change.
	Notes []models.Note
}

// Subscribe registers fn to be called after every mutation, in mutation
// order. fn may read the store but must not mutate it synchronously. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) emit(ev Event) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	handlers := make([]func(Event), len(ids))
	for i, id := range ids {
		handlers[i] = s.subs[id]
	}
	s.subMu.Unlock()

	for _, fn := range handlers {
		e := ev
		e.Notes = slices.Clone(ev.Notes)
		fn(e)
	}
}
