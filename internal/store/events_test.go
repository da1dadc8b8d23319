// ABOUTME: Tests for store change notifications.
// ABOUTME: Checks event order, snapshots, and unsubscribe.

package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harper/quicknotes/internal/kv"
	"github.com/harper/quicknotes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesEventsInOrder(t *testing.T) {
	s := openTestStore(t, kv.NewMemory())
	ctx := context.Background()

	var events []Event
	cancel := s.Subscribe(func(ev Event) { events = append(events, ev) })
	defer cancel()

	note, _ := s.Add(ctx, "T", "C", models.Yellow)
	content := "changed"
	_, _ = s.Update(ctx, note.ID, models.NotePatch{Content: &content})
	_, _ = s.TogglePinned(ctx, note.ID)
	_, _ = s.Delete(ctx, note.ID)

	require.Len(t, events, 4)
	types := []EventType{events[0].Type, events[1].Type, events[2].Type, events[3].Type}
	assert.Equal(t, []EventType{EventCreated, EventUpdated, EventPinToggled, EventDeleted}, types)

	assert.Len(t, events[0].Notes, 1)
	assert.Equal(t, "changed", events[1].Note.Content)
	assert.True(t, events[2].Notes[0].IsPinned)
	assert.Equal(t, note.ID, events[3].Note.ID)
	assert.Empty(t, events[3].Notes)
}

func TestNoopsDoNotEmit(t *testing.T) {
	s := openTestStore(t, kv.NewMemory())
	ctx := context.Background()

	count := 0
	s.Subscribe(func(Event) { count++ })

	_, _ = s.Add(ctx, " ", "", models.Yellow)
	_, _ = s.Update(ctx, uuid.New(), models.NotePatch{})
	_, _ = s.Delete(ctx, uuid.New())
	_, _ = s.TogglePinned(ctx, uuid.New())

	assert.Equal(t, 0, count)
}

func TestSubscriberCanReadStore(t *testing.T) {
	s := openTestStore(t, kv.NewMemory())

	var seen int
	s.Subscribe(func(Event) { seen = s.Len() })

	_, err := s.Add(context.Background(), "T", "", models.Yellow)
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
}

func TestSnapshotIsIsolatedPerSubscriber(t *testing.T) {
	s := openTestStore(t, kv.NewMemory())

	var second []models.Note
	s.Subscribe(func(ev Event) { ev.Notes[0].Title = "scribbled" })
	s.Subscribe(func(ev Event) { second = ev.Notes })

	_, err := s.Add(context.Background(), "T", "", models.Yellow)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "T", second[0].Title)
	assert.Equal(t, "T", s.Notes()[0].Title)
}

func TestCancelStopsDelivery(t *testing.T) {
	s := openTestStore(t, kv.NewMemory())
	ctx := context.Background()

	count := 0
	cancel := s.Subscribe(func(Event) { count++ })

	_, _ = s.Add(ctx, "one", "", models.Yellow)
	cancel()
	cancel()
	_, _ = s.Add(ctx, "two", "", models.Yellow)

	assert.Equal(t, 1, count)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "created", EventCreated.String())
	assert.Equal(t, "updated", EventUpdated.String())
	assert.Equal(t, "deleted", EventDeleted.String())
	assert.Equal(t, "pin_toggled", EventPinToggled.String())
	assert.Equal(t, "unknown", EventType(0).String())
}

func TestReadingSubscriberDoesNotBlockConcurrentMutation(t *testing.T) {
	s := openTestStore(t, kv.NewMemory())
	ctx := context.Background()

	delivering := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	var seen []int
	s.Subscribe(func(Event) {
		first := false
		once.Do(func() { first = true })
		if first {
			close(delivering)
			<-release
		}
		seen = append(seen, len(s.Notes()))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.Add(ctx, "first", "", models.Yellow)
		}()
		<-delivering
		go func() {
			defer wg.Done()
			_, _ = s.Add(ctx, "second", "", models.Yellow)
		}()
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("mutation blocked while a subscriber was reading the store")
	}
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 2, s.Len())
}
