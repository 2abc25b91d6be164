// internal/handlers/post.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/eventide-app/eventide-backend/internal/models"
	"github.com/eventide-app/eventide-backend/internal/store"
	"github.com/eventide-app/eventide-backend/internal/utils"
)

// PostHandler also owns comment deletion for a post so a removed post never
// leaves a comment collection behind.
type PostHandler struct {
	posts    *store.PostStore
	comments *store.CommentStore
}

type CreatePostRequest struct {
	Author  string `json:"author,omitempty" validate:"omitempty,max=100"`
	Content string `json:"content" validate:"required,max=2000"`
}

func NewPostHandler(posts *store.PostStore, comments *store.CommentStore) *PostHandler {
	return &PostHandler{
		posts:    posts,
		comments: comments,
	}
}

// GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"posts":        h.posts.List(),
		"likedPostIds": h.posts.LikedIDs(),
	})
}

// POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	author := req.Author
	if author == "" {
		if name, ok := utils.GetDisplayNameFromContext(c); ok {
			author = name
		}
	}
	if author == "" {
		utils.BadRequestResponse(c, "Author is required when not signed in", nil)
		return
	}

	post := h.posts.Add(models.Post{
		Author:  author,
		Content: req.Content,
	})
	utils.CreatedResponse(c, gin.H{"post": post})
}

// DELETE /posts/:id removes the post and every comment under it.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.posts.Get(id); !ok {
		utils.NotFoundResponse(c, "Post")
		return
	}

	h.posts.Delete(id)
	h.comments.DeleteForPost(id)
	utils.SuccessResponse(c, gin.H{"deleted": id})
}

// POST /posts/:id/like toggles the like and adjusts the count.
func (h *PostHandler) ToggleLike(c *gin.Context) {
	post, liked, ok := h.posts.ToggleLike(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Post")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"post":  post,
		"liked": liked,
	})
}
