// internal/store/chat.go
package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
)

// ErrEmptyMessage rejects a send with blank or whitespace-only text.
var ErrEmptyMessage = errors.New("chat: message text is empty")

// ErrParticipantNotFound means a conversation participant id could not be
// resolved against the users collection.
var ErrParticipantNotFound = errors.New("chat: participant not found")

// ChatStore persists two levels: one key for the conversation index and one
// key per conversation holding its ordered message list.
type ChatStore struct {
	kv            kv.Store
	conversations collection[models.ChatConversation]
	users         *UserStore
}

func NewChatStore(store kv.Store, users *UserStore) *ChatStore {
	return &ChatStore{
		kv:            store,
		conversations: collection[models.ChatConversation]{kv: store, key: conversationsKey},
		users:         users,
	}
}

func messagesKey(conversationID string) string {
	return messagesKeyPfx + conversationID
}

func (s *ChatStore) messages(conversationID string) collection[models.ChatMessage] {
	return collection[models.ChatMessage]{kv: s.kv, key: messagesKey(conversationID)}
}

// Conversations returns the index sorted by most-recent-message-first. A true
// first run seeds both the index and each seeded conversation's message
// sub-collection; an intentionally emptied index stays empty.
func (s *ChatStore) Conversations() []models.ChatConversation {
	if _, err := s.kv.Get(conversationsKey); errors.Is(err, kv.ErrNotFound) {
		seededConvos, seededMessages := fixtureChat()
		s.conversations.save(seededConvos)
		for _, convo := range seededConvos {
			var forConvo []models.ChatMessage
			for _, msg := range seededMessages {
				if msg.ConversationID == convo.ID {
					forConvo = append(forConvo, msg)
				}
			}
			if len(forConvo) > 0 {
				s.messages(convo.ID).save(forConvo)
			}
		}
	}

	conversations := s.conversations.load()
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessageAt > conversations[j].LastMessageAt
	})
	return conversations
}

func (s *ChatStore) Conversation(id string) (models.ChatConversation, bool) {
	for _, convo := range s.Conversations() {
		if convo.ID == id {
			return convo, true
		}
	}
	return models.ChatConversation{}, false
}

// Messages returns a conversation's messages sorted by timestamp ascending,
// with sender display snapshots attached where the sender resolves.
func (s *ChatStore) Messages(conversationID string) []models.ChatMessage {
	messages := s.messages(conversationID).load()
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Timestamp < messages[j].Timestamp
	})
	for i := range messages {
		if user, ok := s.users.Get(messages[i].SenderID); ok {
			messages[i].Sender = &models.ChatParticipant{
				ID:          user.ID,
				DisplayName: user.DisplayName,
				AvatarURL:   user.AvatarURL,
			}
		}
	}
	return messages
}

// SendMessage appends a message to the conversation's sub-collection and
// updates the parent index's denormalized lastMessage/lastMessageAt in the
// same operation. There is no separate recomputation pass.
func (s *ChatStore) SendMessage(conversationID, senderID, text string) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	message := models.ChatMessage{
		ID:             newID(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
		Timestamp:      nowMillis(),
	}
	if user, ok := s.users.Get(senderID); ok {
		message.Sender = &models.ChatParticipant{
			ID:          user.ID,
			DisplayName: user.DisplayName,
			AvatarURL:   user.AvatarURL,
		}
	}

	msgs := s.messages(conversationID)
	msgs.save(append(msgs.load(), message))

	conversations := s.conversations.load()
	for i := range conversations {
		if conversations[i].ID == conversationID {
			latest := message
			conversations[i].LastMessage = &latest
			conversations[i].LastMessageAt = message.Timestamp
			s.conversations.save(conversations)
			break
		}
	}
	return message, nil
}

// FindOrCreateConversation returns the existing two-party conversation
// containing both ids, in either order, or creates one with both
// participants' display snapshots. It errors when either participant cannot
// be resolved.
func (s *ChatStore) FindOrCreateConversation(userID1, userID2 string) (models.ChatConversation, error) {
	for _, convo := range s.Conversations() {
		if len(convo.ParticipantIDs) != 2 {
			continue
		}
		if containsString(convo.ParticipantIDs, userID1) && containsString(convo.ParticipantIDs, userID2) {
			return convo, nil
		}
	}

	user1, ok := s.users.Get(userID1)
	if !ok {
		return models.ChatConversation{}, fmt.Errorf("%w: %s", ErrParticipantNotFound, userID1)
	}
	user2, ok := s.users.Get(userID2)
	if !ok {
		return models.ChatConversation{}, fmt.Errorf("%w: %s", ErrParticipantNotFound, userID2)
	}

	now := nowMillis()
	conversation := models.ChatConversation{
		ID:             newID(),
		ParticipantIDs: []string{userID1, userID2},
		Participants: []models.ChatParticipant{
			{ID: user1.ID, DisplayName: user1.DisplayName, AvatarURL: user1.AvatarURL},
			{ID: user2.ID, DisplayName: user2.DisplayName, AvatarURL: user2.AvatarURL},
		},
		LastMessageAt: now,
		CreatedAt:     now,
	}

	conversations := s.conversations.load()
	conversations = append([]models.ChatConversation{conversation}, conversations...)
	s.conversations.save(conversations)
	return conversation, nil
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
