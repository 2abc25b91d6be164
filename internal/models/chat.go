// internal/models/chat.go
package models

// ChatParticipant is a denormalized display snapshot of a user, stored on the
// conversation so the index renders without a join.
type ChatParticipant struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

type ChatMessage struct {
	ID             string           `json:"id"`
	ConversationID string           `json:"conversationId"`
	SenderID       string           `json:"senderId"`
	Text           string           `json:"text"`
	Timestamp      int64            `json:"timestamp"`
	Sender         *ChatParticipant `json:"sender,omitempty"`
}

// ChatConversation indexes one conversation. For the two-party case there is
// exactly one conversation per unordered pair of participants. LastMessage and
// LastMessageAt are kept in sync on every send, never recomputed.
type ChatConversation struct {
	ID             string            `json:"id"`
	ParticipantIDs []string          `json:"participantIds"`
	Participants   []ChatParticipant `json:"participants"`
	LastMessage    *ChatMessage      `json:"lastMessage,omitempty"`
	LastMessageAt  int64             `json:"lastMessageAt"`
	CreatedAt      int64             `json:"createdAt"`
}
