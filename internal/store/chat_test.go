// internal/store/chat_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventide-app/eventide-backend/internal/kv"
)

func newChatFixture(t *testing.T) (*ChatStore, *UserStore) {
	t.Helper()
	mem := kv.NewMemoryStore()
	users := NewUserStore(mem)
	return NewChatStore(mem, users), users
}

func TestConversationsSeedSortedMostRecentFirst(t *testing.T) {
	chat, _ := newChatFixture(t)

	conversations := chat.Conversations()
	require.Len(t, conversations, 3)
	assert.Equal(t, "convo-1-2", conversations[0].ID)
	assert.Equal(t, "convo-2-3", conversations[1].ID)
	assert.Equal(t, "convo-1-3", conversations[2].ID)

	// Seeding happens once; a second read returns the same index.
	assert.Len(t, chat.Conversations(), 3)
}

func TestMessagesSortedAscendingWithSenderSnapshots(t *testing.T) {
	chat, _ := newChatFixture(t)
	chat.Conversations() // trigger seed

	messages := chat.Messages("convo-1-2")
	require.Len(t, messages, 3)
	for i := 1; i < len(messages); i++ {
		assert.LessOrEqual(t, messages[i-1].Timestamp, messages[i].Timestamp)
	}

	require.NotNil(t, messages[0].Sender)
	assert.Equal(t, "user-1", messages[0].Sender.ID)
	assert.Equal(t, "Alice Wonderland", messages[0].Sender.DisplayName)
}

func TestMessagesForUnknownConversationAreEmpty(t *testing.T) {
	chat, _ := newChatFixture(t)
	assert.Empty(t, chat.Messages("no-such-conversation"))
}

func TestSendMessageUpdatesIndexSnapshot(t *testing.T) {
	chat, _ := newChatFixture(t)
	chat.Conversations()

	message, err := chat.SendMessage("convo-1-3", "user-3", "fresh message")
	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)
	assert.Equal(t, "fresh message", message.Text)

	// The conversation bubbles to the top of the index.
	conversations := chat.Conversations()
	require.NotEmpty(t, conversations)
	assert.Equal(t, "convo-1-3", conversations[0].ID)
	require.NotNil(t, conversations[0].LastMessage)
	assert.Equal(t, message.ID, conversations[0].LastMessage.ID)
	assert.Equal(t, message.Timestamp, conversations[0].LastMessageAt)

	messages := chat.Messages("convo-1-3")
	assert.Equal(t, message.ID, messages[len(messages)-1].ID)
}

func TestSendMessageRejectsBlankText(t *testing.T) {
	chat, _ := newChatFixture(t)
	chat.Conversations()

	before := chat.Messages("convo-1-2")

	_, err := chat.SendMessage("convo-1-2", "user-1", "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	_, err = chat.SendMessage("convo-1-2", "user-1", "   \t\n")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	assert.Len(t, chat.Messages("convo-1-2"), len(before))
}

func TestFindOrCreateConversationIsOrderIndependent(t *testing.T) {
	chat, _ := newChatFixture(t)

	forward, err := chat.FindOrCreateConversation("user-1", "user-2")
	require.NoError(t, err)
	reversed, err := chat.FindOrCreateConversation("user-2", "user-1")
	require.NoError(t, err)

	assert.Equal(t, "convo-1-2", forward.ID)
	assert.Equal(t, forward.ID, reversed.ID)
}

func TestFindOrCreateConversationCreatesOnce(t *testing.T) {
	chat, users := newChatFixture(t)

	newcomer := users.FindOrCreate("Dana", "dana@example.com", "")

	first, err := chat.FindOrCreateConversation("user-1", newcomer.ID)
	require.NoError(t, err)
	assert.Len(t, first.ParticipantIDs, 2)
	assert.Len(t, first.Participants, 2)

	second, err := chat.FindOrCreateConversation(newcomer.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	assert.Len(t, chat.Conversations(), 4)
}

func TestFindOrCreateConversationRejectsUnknownParticipant(t *testing.T) {
	chat, _ := newChatFixture(t)

	_, err := chat.FindOrCreateConversation("user-1", "ghost")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}
