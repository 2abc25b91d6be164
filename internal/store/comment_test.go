// internal/store/comment_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
)

// seedThread writes a fixed reply chain directly so the structure under test
// does not depend on Add timestamps: a -> b -> c plus an unrelated top-level
// comment d, all on post-1.
func seedThread(t *testing.T, mem kv.Store) {
	t.Helper()
	require.NoError(t, mem.Set(commentsKey, []byte(`[
		{"id":"a","postId":"post-1","author":"Alice","content":"root","createdAt":1},
		{"id":"b","postId":"post-1","parentId":"a","author":"Bob","content":"reply","createdAt":2},
		{"id":"c","postId":"post-1","parentId":"b","author":"Charlie","content":"reply to reply","createdAt":3},
		{"id":"d","postId":"post-1","author":"Dana","content":"unrelated","createdAt":4}
	]`)))
}

func TestForPostFiltersAndSortsOldestFirst(t *testing.T) {
	mem := kv.NewMemoryStore()
	require.NoError(t, mem.Set(commentsKey, []byte(`[
		{"id":"late","postId":"post-1","author":"A","content":"x","createdAt":30},
		{"id":"other","postId":"post-2","author":"B","content":"y","createdAt":10},
		{"id":"early","postId":"post-1","author":"C","content":"z","createdAt":20}
	]`)))
	comments := NewCommentStore(mem)

	forPost := comments.ForPost("post-1")
	require.Len(t, forPost, 2)
	assert.Equal(t, "early", forPost[0].ID)
	assert.Equal(t, "late", forPost[1].ID)

	assert.Empty(t, comments.ForPost("post-without-comments"))
}

func TestAddCommentAssignsIdentity(t *testing.T) {
	mem := kv.NewMemoryStore()
	blankKeys(t, mem, commentsKey)
	comments := NewCommentStore(mem)

	comment := comments.Add(models.Comment{PostID: "post-1", Author: "Alice", Content: "hi"})
	assert.NotEmpty(t, comment.ID)
	assert.Greater(t, comment.CreatedAt, int64(0))

	forPost := comments.ForPost("post-1")
	require.Len(t, forPost, 1)
	assert.Equal(t, comment.ID, forPost[0].ID)
}

func TestDeleteCascadesThroughReplyChain(t *testing.T) {
	mem := kv.NewMemoryStore()
	seedThread(t, mem)
	comments := NewCommentStore(mem)

	// Deleting the root takes the whole chain with it.
	kept := comments.Delete("a")
	require.Len(t, kept, 1)
	assert.Equal(t, "d", kept[0].ID)
}

func TestDeleteMidChainKeepsAncestors(t *testing.T) {
	mem := kv.NewMemoryStore()
	seedThread(t, mem)
	comments := NewCommentStore(mem)

	kept := comments.Delete("b")
	ids := make([]string, 0, len(kept))
	for _, comment := range kept {
		ids = append(ids, comment.ID)
	}
	assert.ElementsMatch(t, []string{"a", "d"}, ids)
}

func TestDeleteLeafRemovesOnlyItself(t *testing.T) {
	mem := kv.NewMemoryStore()
	seedThread(t, mem)
	comments := NewCommentStore(mem)

	kept := comments.Delete("c")
	assert.Len(t, kept, 3)
	_, found := comments.Get("c")
	assert.False(t, found)
}

func TestDeleteHandlesReplyListedBeforeParent(t *testing.T) {
	mem := kv.NewMemoryStore()
	// The reply appears before its parent in storage order.
	require.NoError(t, mem.Set(commentsKey, []byte(`[
		{"id":"reply","postId":"post-1","parentId":"root","author":"B","content":"r","createdAt":2},
		{"id":"root","postId":"post-1","author":"A","content":"top","createdAt":1}
	]`)))
	comments := NewCommentStore(mem)

	kept := comments.Delete("root")
	assert.Empty(t, kept)
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	mem := kv.NewMemoryStore()
	seedThread(t, mem)
	comments := NewCommentStore(mem)

	kept := comments.Delete("missing")
	assert.Len(t, kept, 4)
}

func TestDeleteForPostRemovesEverything(t *testing.T) {
	mem := kv.NewMemoryStore()
	seedThread(t, mem)
	comments := NewCommentStore(mem)

	comments.Add(models.Comment{PostID: "post-2", Author: "E", Content: "other post"})

	kept := comments.DeleteForPost("post-1")
	require.Len(t, kept, 1)
	assert.Equal(t, "post-2", kept[0].PostID)
}
