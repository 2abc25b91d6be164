// internal/store/comment.go
package store

import (
	"sort"

	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
)

// CommentStore owns the flat comment collection. The reply tree is implicit:
// each comment carries an optional parent id and nothing else, so thread
// structure is derived at read time and cascade deletes compute the closure
// over that adjacency list.
type CommentStore struct {
	comments collection[models.Comment]
}

func NewCommentStore(store kv.Store) *CommentStore {
	return &CommentStore{
		comments: collection[models.Comment]{kv: store, key: commentsKey, seed: fixtureComments},
	}
}

func (s *CommentStore) List() []models.Comment {
	return s.comments.load()
}

func (s *CommentStore) Get(id string) (models.Comment, bool) {
	for _, comment := range s.comments.load() {
		if comment.ID == id {
			return comment, true
		}
	}
	return models.Comment{}, false
}

// ForPost returns a post's comments oldest first.
func (s *CommentStore) ForPost(postID string) []models.Comment {
	comments := s.comments.load()
	filtered := make([]models.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.PostID == postID {
			filtered = append(filtered, comment)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt < filtered[j].CreatedAt
	})
	return filtered
}

// Add assigns a fresh id and timestamp, appends and re-sorts the collection
// oldest first.
func (s *CommentStore) Add(comment models.Comment) models.Comment {
	comment.ID = newID()
	comment.CreatedAt = nowMillis()

	comments := append(s.comments.load(), comment)
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt < comments[j].CreatedAt
	})
	s.comments.save(comments)
	return comment
}

// Delete removes the comment and every descendant reply, however deep.
func (s *CommentStore) Delete(id string) []models.Comment {
	comments := s.comments.load()
	doomed := cascadeTargets(comments, id)

	kept := make([]models.Comment, 0, len(comments))
	for _, comment := range comments {
		if _, gone := doomed[comment.ID]; !gone {
			kept = append(kept, comment)
		}
	}
	if len(kept) != len(comments) {
		s.comments.save(kept)
	}
	return kept
}

// DeleteForPost removes every comment belonging to a post, used when the post
// itself is deleted.
func (s *CommentStore) DeleteForPost(postID string) []models.Comment {
	comments := s.comments.load()
	kept := make([]models.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.PostID != postID {
			kept = append(kept, comment)
		}
	}
	if len(kept) != len(comments) {
		s.comments.save(kept)
	}
	return kept
}

// cascadeTargets computes the removal set for a delete: the target id plus
// everything reachable from it through parent edges. Fixed-point iteration
// over the flat list makes no ordering assumption (a reply may appear before
// its parent) and terminates because the set only grows and is bounded by the
// list length. An id whose parent does not exist is simply never matched.
func cascadeTargets(comments []models.Comment, id string) map[string]struct{} {
	doomed := map[string]struct{}{id: {}}
	for {
		grew := false
		for _, comment := range comments {
			if comment.ParentID == "" {
				continue
			}
			if _, parentDoomed := doomed[comment.ParentID]; !parentDoomed {
				continue
			}
			if _, alreadyDoomed := doomed[comment.ID]; alreadyDoomed {
				continue
			}
			doomed[comment.ID] = struct{}{}
			grew = true
		}
		if !grew {
			return doomed
		}
	}
}
