// ABOUTME: Owned, write-through collection of notes backed by a key-value store.
// ABOUTME: Hydrates on open and persists the full collection after every mutation.

package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harper/quicknotes/internal/config"
	"github.com/harper/quicknotes/internal/kv"
	"github.com/harper/quicknotes/internal/models"
	"github.com/sirupsen/logrus"
)

// MinPrefixLen is the shortest id prefix FindByPrefix accepts.
const MinPrefixLen = 6

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrPrefixTooShort  = fmt.Errorf("prefix must be at least %d characters", MinPrefixLen)
	ErrAmbiguousPrefix = errors.New("prefix matches multiple notes")

	// ErrPersist wraps backend write failures. The in-memory change is kept.
	ErrPersist = errors.New("persist notes")
)

// Store is the single owner of the note collection for one running instance.
// All operations are serialized; readers only ever receive copies.
type Store struct {
	backend kv.Backend
	key     string
	now     func() time.Time
	newID   func() uuid.UUID
	log     logrus.FieldLogger

	// emitMu is taken by every mutation before mu and held until its event
	// is delivered, so events arrive in mutation order. Lock order: emitMu, mu.
	emitMu sync.Mutex
	mu     sync.Mutex
	notes  []models.Note

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the storage key for the collection.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithIDGenerator replaces uuid.New.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// Open creates a Store over backend and hydrates it from the stored value.
// A missing or unparseable value yields an empty collection; only a failure
// to read from the backend is returned as an error.
func Open(ctx context.Context, backend kv.Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		key:     config.DefaultKey,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.New,
		log:     logrus.StandardLogger(),
		subs:    make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, ok, err := backend.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	if !ok {
		s.notes = []models.Note{}
		return s, nil
	}
	s.notes = s.decode(raw)
	return s, nil
}

func (s *Store) decode(raw string) []models.Note {
	log := s.log.WithField("key", s.key)

	records, err := decodeRecords(raw)
	if err != nil {
		log.WithError(err).Error("failed to parse stored notes, starting with an empty collection")
		return []models.Note{}
	}

	notes := make([]models.Note, 0, len(records))
	seen := make(map[uuid.UUID]bool, len(records))
	for i := range records {
		rec := &records[i]
		note, err := rec.toModel()
		if err != nil {
			log.WithError(err).Warn("skipping stored note with invalid id")
			continue
		}
		if seen[note.ID] {
			log.WithField("id", note.ID).Warn("skipping stored note with duplicate id")
			continue
		}
		if !rec.hasValidColor() {
			log.WithFields(logrus.Fields{"id": note.ID, "color": rec.Color}).
				Warn("unknown color on stored note, using default")
		}
		seen[note.ID] = true
		notes = append(notes, note)
	}
	return notes
}

// Add creates a note and puts it at the front of the collection.
// When both title and content are blank after trimming it does nothing and
// returns nil, nil.
func (s *Store) Add(ctx context.Context, title, content string, color models.Color) (*models.Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" && content == "" {
		return nil, nil
	}
	if !color.IsValid() {
		return nil, fmt.Errorf("%w: %d", models.ErrInvalidColor, uint8(color))
	}

	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	s.mu.Lock()
	id, err := s.uniqueIDLocked()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	note := *models.NewNote(id, title, content, color, s.now())
	s.notes = slices.Insert(s.notes, 0, note)

	err = s.commitLocked(ctx, EventCreated, note)
	return &note, err
}

// Update merges patch into the note with id. Title and content are trimmed
// as in Add. A missing id is a no-op returning nil, nil.
func (s *Store) Update(ctx context.Context, id uuid.UUID, patch models.NotePatch) (*models.Note, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	patch = patch.Trimmed()

	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, nil
	}
	s.notes[i].Apply(patch, s.now())
	note := s.notes[i]

	err := s.commitLocked(ctx, EventUpdated, note)
	return &note, err
}

// Delete removes the note with id. It reports whether a note was removed.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	note := s.notes[i]
	s.notes = slices.Delete(s.notes, i, i+1)

	err := s.commitLocked(ctx, EventDeleted, note)
	return true, err
}

// TogglePinned flips the pin state of the note with id. A missing id is a
// no-op returning nil, nil.
func (s *Store) TogglePinned(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, nil
	}
	pinned := !s.notes[i].IsPinned
	s.notes[i].Apply(models.NotePatch{IsPinned: &pinned}, s.now())
	note := s.notes[i]

	err := s.commitLocked(ctx, EventPinToggled, note)
	return &note, err
}

// Notes returns a copy of the collection in display order.
func (s *Store) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notes)
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// Get returns a copy of the note with id.
func (s *Store) Get(id uuid.UUID) (models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return models.Note{}, false
	}
	return s.notes[i], true
}

// FindByPrefix finds a note by id prefix (minimum MinPrefixLen characters).
func (s *Store) FindByPrefix(prefix string) (models.Note, error) {
	if len(prefix) < MinPrefixLen {
		return models.Note{}, ErrPrefixTooShort
	}
	prefix = strings.ToLower(prefix)

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []models.Note
	for _, n := range s.notes {
		if strings.HasPrefix(n.ID.String(), prefix) {
			matches = append(matches, n)
		}
	}
	if len(matches) == 0 {
		return models.Note{}, ErrNoteNotFound
	}
	if len(matches) > 1 {
		return models.Note{}, fmt.Errorf("%w: %d matches", ErrAmbiguousPrefix, len(matches))
	}
	return matches[0], nil
}

func (s *Store) indexLocked(id uuid.UUID) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == id })
}

func (s *Store) uniqueIDLocked() (uuid.UUID, error) {
	for range 3 {
		id := s.newID()
		if id != uuid.Nil && s.indexLocked(id) < 0 {
			return id, nil
		}
	}
	return uuid.Nil, errors.New("could not generate a unique note ID")
}

// commitLocked writes the collection through to the backend, releases mu and
// notifies subscribers. It must be called with emitMu and mu held.
func (s *Store) commitLocked(ctx context.Context, typ EventType, note models.Note) error {
	err := s.persistLocked(ctx)
	snapshot := slices.Clone(s.notes)
	s.mu.Unlock()

	log := s.log.WithFields(logrus.Fields{"event": typ.String(), "id": note.ID})
	if err != nil {
		log.WithError(err).Error("note change kept in memory but not persisted")
	} else {
		log.Debug("note change persisted")
	}

	s.emit(Event{Type: typ, Note: note, Notes: snapshot})
	return err
}

func (s *Store) persistLocked(ctx context.Context) error {
	raw, err := Encode(s.notes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := s.backend.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
