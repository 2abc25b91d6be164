// internal/models/post.go
package models

// Post is a feed entry. Author is the display name as entered, not a user
// reference. LikeCount is never negative.
type Post struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	LikeCount int    `json:"likeCount"`
	CreatedAt int64  `json:"createdAt"`
}

// Comment belongs to one post. ParentID is empty for top-level comments and
// otherwise references another comment on the same post, forming a forest.
type Comment struct {
	ID        string `json:"id"`
	PostID    string `json:"postId"`
	ParentID  string `json:"parentId,omitempty"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}
