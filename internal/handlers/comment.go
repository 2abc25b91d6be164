// internal/handlers/comment.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/eventide-app/eventide-backend/internal/models"
	"github.com/eventide-app/eventide-backend/internal/store"
	"github.com/eventide-app/eventide-backend/internal/utils"
)

type CommentHandler struct {
	comments *store.CommentStore
	posts    *store.PostStore
}

type CreateCommentRequest struct {
	Author   string `json:"author,omitempty" validate:"omitempty,max=100"`
	Content  string `json:"content" validate:"required,max=2000"`
	ParentID string `json:"parentId,omitempty"`
}

func NewCommentHandler(comments *store.CommentStore, posts *store.PostStore) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		posts:    posts,
	}
}

// GET /posts/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID := c.Param("id")

	if _, ok := h.posts.Get(postID); !ok {
		utils.NotFoundResponse(c, "Post")
		return
	}

	utils.SuccessResponse(c, gin.H{"comments": h.comments.ForPost(postID)})
}

// POST /posts/:id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID := c.Param("id")

	if _, ok := h.posts.Get(postID); !ok {
		utils.NotFoundResponse(c, "Post")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if req.ParentID != "" {
		parent, ok := h.comments.Get(req.ParentID)
		if !ok || parent.PostID != postID {
			utils.BadRequestResponse(c, "Parent comment does not belong to this post", nil)
			return
		}
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

	comment := h.comments.Add(models.Comment{
		PostID:   postID,
		ParentID: req.ParentID,
		Author:   author,
		Content:  req.Content,
	})
	utils.CreatedResponse(c, gin.H{"comment": comment})
}

// DELETE /comments/:id removes the comment and, transitively, every reply
// under it.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id := c.Param("id")

	comment, ok := h.comments.Get(id)
	if !ok {
		utils.NotFoundResponse(c, "Comment")
		return
	}

	h.comments.Delete(id)
	utils.SuccessResponse(c, gin.H{
		"deleted":  id,
		"comments": h.comments.ForPost(comment.PostID),
	})
}
