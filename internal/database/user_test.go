package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/thereayou/skillconnect/internal/models"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"

	d := &Database{}
	require.NoError(t, d.Connect(dbPath, false))

	t.Cleanup(func() {
		d.Close()
		os.Remove(dbPath)
	})

	return d
}

func makeUser(t *testing.T, d *Database, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		IsActive:     true,
	}
	require.NoError(t, d.CreateUser(user))
	return user
}

func TestCreateAndFindUserByUsername(t *testing.T) {
	d := setupTestDB(t)

	phone := "+123456789"
	created := &models.User{
		Username:     "alice",
		Phone:        &phone,
		PasswordHash: "hash",
		FullName:     "Alice Example",
		Skills:       "Go, SQL",
		Bio:          "builder",
		IsActive:     true,
	}
	require.NoError(t, d.CreateUser(created))
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := d.FindUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Alice Example", found.FullName)
	assert.Equal(t, []string{"Go", "SQL"}, found.SkillList())
}

func TestFindUserByUsernameNotFound(t *testing.T) {
	d := setupTestDB(t)

	_, err := d.FindUserByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDuplicateUsernameRejected(t *testing.T) {
	d := setupTestDB(t)
	makeUser(t, d, "alice")

	err := d.CreateUser(&models.User{Username: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The losing insert must not leave a second row behind.
	var count int64
	require.NoError(t, d.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetUser(t *testing.T) {
	d := setupTestDB(t)
	created := makeUser(t, d, "alice")

	user, err := d.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = d.GetUser(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUserCascadesToPosts(t *testing.T) {
	d := setupTestDB(t)
	user := makeUser(t, d, "alice")

	for _, title := range []string{"first", "second"} {
		require.NoError(t, d.CreatePost(&models.Post{
			Title:       title,
			Description: "desc",
			AuthorID:    user.ID,
		}))
	}

	posts, err := d.ListPostsByAuthor(user.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	require.NoError(t, d.DeleteUser(user.ID))

	posts, err = d.ListPostsByAuthor(user.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
