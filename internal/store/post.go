// internal/store/post.go
package store

import (
	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
)

// PostStore owns the feed collection and the liked-post-id set.
type PostStore struct {
	posts collection[models.Post]
	liked idSet
}

func NewPostStore(store kv.Store) *PostStore {
	return &PostStore{
		posts: collection[models.Post]{
			kv:   store,
			key:  postsKey,
			seed: fixturePosts,
			// Posts written by an older schema predate likeCount; decoding
			// leaves those at zero, and a negative count is clamped.
			normalize: func(p *models.Post) {
				if p.LikeCount < 0 {
					p.LikeCount = 0
				}
			},
		},
		liked: newIDSet(store, likedPostIDsKey),
	}
}

// List returns all posts, newest first.
func (s *PostStore) List() []models.Post {
	return s.posts.load()
}

func (s *PostStore) Get(id string) (models.Post, bool) {
	for _, post := range s.posts.load() {
		if post.ID == id {
			return post, true
		}
	}
	return models.Post{}, false
}

// Add assigns a fresh id and timestamp, zeroes the like count and prepends
// the post to the feed.
func (s *PostStore) Add(post models.Post) models.Post {
	post.ID = newID()
	post.CreatedAt = nowMillis()
	post.LikeCount = 0

	posts := append([]models.Post{post}, s.posts.load()...)
	s.posts.save(posts)
	return post
}

// Delete removes the post and its id from the liked set. Comments referencing
// the post are left for the comment store's owner to clean up.
func (s *PostStore) Delete(id string) []models.Post {
	posts := s.posts.load()
	kept := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	if len(kept) != len(posts) {
		s.posts.save(kept)
	}
	s.liked.remove(id)
	return kept
}

// ToggleLike flips the liker's state for a post, adjusting its like count
// (never below zero). The returned bool reports whether the post is liked
// afterwards; ok is false when the post does not exist.
func (s *PostStore) ToggleLike(id string) (post models.Post, liked bool, ok bool) {
	posts := s.posts.load()
	index := -1
	for i := range posts {
		if posts[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Post{}, false, false
	}

	if s.liked.contains(id) {
		if posts[index].LikeCount > 0 {
			posts[index].LikeCount--
		}
		s.liked.remove(id)
		liked = false
	} else {
		posts[index].LikeCount++
		s.liked.add(id)
		liked = true
	}
	s.posts.save(posts)
	return posts[index], liked, true
}

func (s *PostStore) LikedIDs() []string {
	return s.liked.load()
}

func (s *PostStore) IsLiked(id string) bool {
	return s.liked.contains(id)
}
