// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/eventide-app/eventide-backend/internal/config"
	"github.com/eventide-app/eventide-backend/internal/store"
	"github.com/eventide-app/eventide-backend/internal/utils"
)

// AuthHandler wraps the external identity provider: a sign-in upserts a
// profile and mints a session token carrying display identity. Nothing else
// in the API checks it.
type AuthHandler struct {
	users  *store.UserStore
	config *config.Config
}

type SignInRequest struct {
	DisplayName string `json:"displayName" validate:"required,min=1,max=100"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	AvatarURL   string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
}

func NewAuthHandler(users *store.UserStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		users:  users,
		config: cfg,
	}
}

// POST /auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user := h.users.FindOrCreate(req.DisplayName, req.Email, req.AvatarURL)

	token, err := utils.GenerateJWT(user.ID, user.DisplayName, user.Email, h.config.JWT.AccessTokenTTL)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to create session token")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"token": token,
		"user":  user,
	})
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, found := h.users.Get(userID)
	if !found {
		utils.NotFoundResponse(c, "User")
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user})
}
