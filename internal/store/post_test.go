// internal/store/post_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
)

func TestAddPostStartsUnliked(t *testing.T) {
	mem := kv.NewMemoryStore()
	blankKeys(t, mem, postsKey, likedPostIDsKey)
	posts := NewPostStore(mem)

	// A caller-supplied count is ignored; new posts always start at zero.
	post := posts.Add(models.Post{Author: "Alice", Content: "hello", LikeCount: 42})
	assert.Equal(t, 0, post.LikeCount)
	assert.NotEmpty(t, post.ID)

	list := posts.List()
	require.Len(t, list, 1)
	assert.Equal(t, 0, list[0].LikeCount)
}

func TestAddPostPrependsToFeed(t *testing.T) {
	mem := kv.NewMemoryStore()
	blankKeys(t, mem, postsKey, likedPostIDsKey)
	posts := NewPostStore(mem)

	posts.Add(models.Post{Author: "Alice", Content: "first"})
	posts.Add(models.Post{Author: "Bob", Content: "second"})

	list := posts.List()
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Content)
	assert.Equal(t, "first", list[1].Content)
}

func TestToggleLikeAdjustsCountAndSet(t *testing.T) {
	mem := kv.NewMemoryStore()
	blankKeys(t, mem, postsKey, likedPostIDsKey)
	posts := NewPostStore(mem)

	post := posts.Add(models.Post{Author: "Alice", Content: "hello"})

	liked, isLiked, ok := posts.ToggleLike(post.ID)
	require.True(t, ok)
	assert.True(t, isLiked)
	assert.Equal(t, 1, liked.LikeCount)
	assert.True(t, posts.IsLiked(post.ID))

	unliked, isLiked, ok := posts.ToggleLike(post.ID)
	require.True(t, ok)
	assert.False(t, isLiked)
	assert.Equal(t, 0, unliked.LikeCount)
	assert.False(t, posts.IsLiked(post.ID))

	_, _, ok = posts.ToggleLike("no-such-post")
	assert.False(t, ok)
}

func TestLoadClampsNegativeLikeCounts(t *testing.T) {
	mem := kv.NewMemoryStore()
	require.NoError(t, mem.Set(postsKey, []byte(`[{"id":"post-x","author":"A","content":"c","likeCount":-3,"createdAt":1}]`)))
	posts := NewPostStore(mem)

	list := posts.List()
	require.Len(t, list, 1)
	assert.Equal(t, 0, list[0].LikeCount)
}

func TestDeletePostRemovesLikedID(t *testing.T) {
	mem := kv.NewMemoryStore()
	blankKeys(t, mem, postsKey, likedPostIDsKey)
	posts := NewPostStore(mem)

	post := posts.Add(models.Post{Author: "Alice", Content: "hello"})
	posts.ToggleLike(post.ID)
	require.True(t, posts.IsLiked(post.ID))

	posts.Delete(post.ID)

	assert.Empty(t, posts.List())
	assert.False(t, posts.IsLiked(post.ID))
	assert.Empty(t, posts.LikedIDs())
}
