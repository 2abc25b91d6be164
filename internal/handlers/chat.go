// internal/handlers/chat.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/eventide-app/eventide-backend/internal/store"
	"github.com/eventide-app/eventide-backend/internal/utils"
)

type ChatHandler struct {
	chat  *store.ChatStore
	users *store.UserStore
}

type FindConversationRequest struct {
	// UserID may be omitted when the request carries a signed-in identity.
	UserID        string `json:"userId,omitempty"`
	ParticipantID string `json:"participantId" validate:"required"`
}

type SendMessageRequest struct {
	SenderID string `json:"senderId,omitempty"`
	Text     string `json:"text" validate:"required,max=4000"`
}

func NewChatHandler(chat *store.ChatStore, users *store.UserStore) *ChatHandler {
	return &ChatHandler{
		chat:  chat,
		users: users,
	}
}

// GET /chat/conversations, most recent activity first.
func (h *ChatHandler) ListConversations(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"conversations": h.chat.Conversations()})
}

// POST /chat/conversations returns the existing two-party conversation
// between the users, creating it on first contact.
func (h *ChatHandler) FindOrCreateConversation(c *gin.Context) {
	var req FindConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	userID := req.UserID
	if userID == "" {
		userID, _ = utils.GetUserIDFromContext(c)
	}
	if userID == "" {
		utils.BadRequestResponse(c, "userId is required when not signed in", nil)
		return
	}

	conversation, err := h.chat.FindOrCreateConversation(userID, req.ParticipantID)
	if err != nil {
		if errors.Is(err, store.ErrParticipantNotFound) {
			utils.NotFoundResponse(c, "User")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"conversation": conversation})
}

// GET /chat/conversations/:id/messages, oldest first.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.chat.Conversation(id); !ok {
		utils.NotFoundResponse(c, "Conversation")
		return
	}

	utils.SuccessResponse(c, gin.H{"messages": h.chat.Messages(id)})
}

// POST /chat/conversations/:id/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.chat.Conversation(id); !ok {
		utils.NotFoundResponse(c, "Conversation")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	senderID := req.SenderID
	if senderID == "" {
		senderID, _ = utils.GetUserIDFromContext(c)
	}
	if senderID == "" {
		utils.BadRequestResponse(c, "senderId is required when not signed in", nil)
		return
	}

	message, err := h.chat.SendMessage(id, senderID, req.Text)
	if err != nil {
		if errors.Is(err, store.ErrEmptyMessage) {
			utils.BadRequestResponse(c, "Message text must not be blank", nil)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{"message": message})
}

// GET /users
func (h *ChatHandler) ListUsers(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"users": h.users.List()})
}
