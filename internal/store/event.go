// internal/store/event.go
package store

import (
	"sort"

	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
)

// EventStore owns the events collection and the saved-event-id set.
type EventStore struct {
	events collection[models.Event]
	saved  idSet
}

func NewEventStore(store kv.Store) *EventStore {
	return &EventStore{
		events: collection[models.Event]{kv: store, key: eventsKey, seed: fixtureEvents},
		saved:  newIDSet(store, savedEventIDsKey),
	}
}

// List returns all events, newest first.
func (s *EventStore) List() []models.Event {
	return s.events.load()
}

func (s *EventStore) Get(id string) (models.Event, bool) {
	for _, event := range s.events.load() {
		if event.ID == id {
			return event, true
		}
	}
	return models.Event{}, false
}

// ListByCategory filters an already-loaded list; it never re-reads storage.
func (s *EventStore) ListByCategory(category string) []models.Event {
	events := s.events.load()
	filtered := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.Category == category {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// Add assigns a fresh id and creation timestamp, prepends the event and
// persists. An id collision (possible only if the caller replays a fixture
// record) is a no-op.
func (s *EventStore) Add(event models.Event) models.Event {
	event.ID = newID()
	event.CreatedAt = nowMillis()

	events := append([]models.Event{event}, s.events.load()...)
	s.events.save(events)
	return event
}

// Update replaces the event with a matching id wholesale. Unknown ids are a
// silent no-op.
func (s *EventStore) Update(event models.Event) []models.Event {
	events := s.events.load()
	for i := range events {
		if events[i].ID == event.ID {
			events[i] = event
			s.events.save(events)
			break
		}
	}
	return events
}

// Delete removes the event and drops its id from the saved set.
func (s *EventStore) Delete(id string) []models.Event {
	events := s.events.load()
	kept := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.ID != id {
			kept = append(kept, event)
		}
	}
	if len(kept) != len(events) {
		s.events.save(kept)
	}
	s.saved.remove(id)
	return kept
}

func (s *EventStore) SavedIDs() []string {
	return s.saved.load()
}

func (s *EventStore) IsSaved(id string) bool {
	return s.saved.contains(id)
}

// ToggleSaved flips the saved state of an event id and reports whether the
// event is saved afterwards.
func (s *EventStore) ToggleSaved(id string) bool {
	if s.saved.contains(id) {
		s.saved.remove(id)
		return false
	}
	s.saved.add(id)
	return true
}

// SavedEvents resolves the saved-id set against the live collection, soonest
// first. Ids pointing at deleted events are skipped.
func (s *EventStore) SavedEvents() []models.Event {
	savedIDs := s.saved.load()
	idSet := make(map[string]struct{}, len(savedIDs))
	for _, id := range savedIDs {
		idSet[id] = struct{}{}
	}

	var saved []models.Event
	for _, event := range s.events.load() {
		if _, ok := idSet[event.ID]; ok {
			saved = append(saved, event)
		}
	}
	sort.Slice(saved, func(i, j int) bool {
		if saved[i].Date != saved[j].Date {
			return saved[i].Date < saved[j].Date
		}
		return saved[i].Time < saved[j].Time
	})
	return saved
}
