package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/skillconnect/internal/models"
)

func TestCreatePostRequiresExistingAuthor(t *testing.T) {
	d := setupTestDB(t)

	err := d.CreatePost(&models.Post{
		Title:       "orphan",
		Description: "no such author",
		AuthorID:    9999,
	})
	assert.Error(t, err)
}

func TestListRecentPostsNewestFirstAndBounded(t *testing.T) {
	d := setupTestDB(t)
	user := makeUser(t, d, "alice")

	base := time.Now().Add(-time.Hour)
	for i := 1; i <= 25; i++ {
		require.NoError(t, d.CreatePost(&models.Post{
			Title:       fmt.Sprintf("idea-%02d", i),
			Description: "desc",
			AuthorID:    user.ID,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	posts, err := d.ListRecentPosts(20)
	require.NoError(t, err)
	require.Len(t, posts, 20)

	assert.Equal(t, "idea-25", posts[0].Title)
	assert.Equal(t, "idea-06", posts[19].Title)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt))
	}

	// Authors come preloaded for rendering.
	assert.Equal(t, "alice", posts[0].Author.Username)
}

func TestListPostsByAuthor(t *testing.T) {
	d := setupTestDB(t)
	alice := makeUser(t, d, "alice")
	bob := makeUser(t, d, "bob")

	base := time.Now().Add(-time.Hour)
	for i := 1; i <= 3; i++ {
		require.NoError(t, d.CreatePost(&models.Post{
			Title:       fmt.Sprintf("alice-%d", i),
			Description: "desc",
			AuthorID:    alice.ID,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, d.CreatePost(&models.Post{
		Title:       "bob-1",
		Description: "desc",
		AuthorID:    bob.ID,
	}))

	posts, err := d.ListPostsByAuthor(alice.ID)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "alice-3", posts[0].Title)
	assert.Equal(t, "alice-1", posts[2].Title)

	posts, err = d.ListPostsByAuthor(bob.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
}
