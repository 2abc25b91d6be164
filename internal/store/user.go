// internal/store/user.go
package store

import (
	"strings"

	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
)

// UserStore holds profile records. Sign-in upserts a profile here and the
// chat store resolves participants against it; nothing ever checks identity
// before permitting a mutation.
type UserStore struct {
	users collection[models.User]
}

func NewUserStore(store kv.Store) *UserStore {
	return &UserStore{
		users: collection[models.User]{kv: store, key: usersKey, seed: fixtureUsers},
	}
}

func (s *UserStore) List() []models.User {
	return s.users.load()
}

func (s *UserStore) Get(id string) (models.User, bool) {
	for _, user := range s.users.load() {
		if user.ID == id {
			return user, true
		}
	}
	return models.User{}, false
}

// FindOrCreate resolves a profile by email (preferred) or display name,
// refreshing the stored display snapshot, and creates one when no match
// exists.
func (s *UserStore) FindOrCreate(displayName, email, avatarURL string) models.User {
	users := s.users.load()
	for i := range users {
		match := (email != "" && strings.EqualFold(users[i].Email, email)) ||
			(email == "" && users[i].DisplayName == displayName)
		if match {
			users[i].DisplayName = displayName
			if avatarURL != "" {
				users[i].AvatarURL = avatarURL
			}
			s.users.save(users)
			return users[i]
		}
	}

	user := models.User{
		ID:          newID(),
		DisplayName: displayName,
		Email:       email,
		AvatarURL:   avatarURL,
		CreatedAt:   nowMillis(),
	}
	users = append(users, user)
	s.users.save(users)
	return user
}
