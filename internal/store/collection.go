// internal/store/collection.go
package store

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eventide-app/eventide-backend/internal/kv"
)

// Collection keys. Every entity type serializes its full list under one key;
// chat messages additionally get one key per conversation.
const (
	eventsKey        = "eventide_events"
	savedEventIDsKey = "eventide_saved_event_ids"
	postsKey         = "eventide_posts"
	likedPostIDsKey  = "eventide_liked_post_ids"
	commentsKey      = "eventide_comments"
	productsKey      = "eventide_products"
	shopsKey         = "eventide_shops"
	ordersKey        = "eventide_orders"
	cartKey          = "eventide_cart"
	usersKey         = "eventide_users"
	conversationsKey = "eventide_chat_conversations"
	messagesKeyPfx   = "eventide_chat_messages_"
)

// collection wraps one storage key holding a JSON array of T. load and save
// never return errors: storage failures are logged and surface as an empty
// list (reads) or a skipped write.
type collection[T any] struct {
	kv  kv.Store
	key string

	// seed produces the fixture records written on true first run, when the
	// key is entirely absent. An intentionally emptied collection is never
	// re-seeded. nil means no fixtures.
	seed func() []T

	// normalize fills schema defaults on records decoded from older data.
	normalize func(*T)
}

func (c collection[T]) load() []T {
	raw, err := c.kv.Get(c.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			if c.seed == nil {
				return []T{}
			}
			seeded := c.seed()
			c.save(seeded)
			return seeded
		}
		logrus.WithError(err).WithField("key", c.key).Error("Failed to read collection")
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logrus.WithError(err).WithField("key", c.key).Error("Failed to parse collection, resetting corrupted key")
		// Reset to an empty list rather than deleting the key: a deleted key
		// reads as a true first run and would re-seed fixtures.
		c.save([]T{})
		return []T{}
	}

	if c.normalize != nil {
		for i := range items {
			c.normalize(&items[i])
		}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func (c collection[T]) save(items []T) {
	data, err := json.Marshal(items)
	if err != nil {
		logrus.WithError(err).WithField("key", c.key).Error("Failed to serialize collection")
		return
	}
	if err := c.kv.Set(c.key, data); err != nil {
		logrus.WithError(err).WithField("key", c.key).Error("Failed to write collection")
	}
}

func (c collection[T]) clear() {
	if err := c.kv.Delete(c.key); err != nil {
		logrus.WithError(err).WithField("key", c.key).Error("Failed to delete collection")
	}
}

// idSet is a persisted set of entity ids (liked posts, saved events),
// serialized as a JSON array. Never seeded.
type idSet struct {
	items collection[string]
}

func newIDSet(store kv.Store, key string) idSet {
	return idSet{items: collection[string]{kv: store, key: key}}
}

func (s idSet) load() []string {
	return s.items.load()
}

func (s idSet) contains(id string) bool {
	for _, existing := range s.load() {
		if existing == id {
			return true
		}
	}
	return false
}

func (s idSet) add(id string) []string {
	ids := s.load()
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	ids = append(ids, id)
	s.items.save(ids)
	return ids
}

func (s idSet) remove(id string) []string {
	ids := s.load()
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) != len(ids) {
		s.items.save(kept)
	}
	return kept
}

func newID() string {
	return uuid.NewString()
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
