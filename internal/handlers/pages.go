package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/skillconnect/internal/database"
	"github.com/thereayou/skillconnect/internal/handlers/dto"
	"github.com/thereayou/skillconnect/internal/middleware"
	"github.com/thereayou/skillconnect/internal/models"
)

// FeedLimit bounds the home page feed.
const FeedLimit = 20

type PageHandler struct {
	db *database.Database
}

func NewPageHandler(db *database.Database) *PageHandler {
	return &PageHandler{db: db}
}

func (h *PageHandler) Home(c *gin.Context) {
	posts, err := h.db.ListRecentPosts(FeedLimit)
	if err != nil {
		c.String(http.StatusInternalServerError, "error loading posts: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "home", gin.H{
		"User":  middleware.UserFromContext(c),
		"Posts": posts,
	})
}

func (h *PageHandler) Profile(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	posts, err := h.db.ListPostsByAuthor(user.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "error loading posts: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "profile", gin.H{
		"User":  user,
		"Posts": posts,
	})
}

func (h *PageHandler) NewPostPage(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "new_post", gin.H{"User": user})
}

func (h *PageHandler) CreatePost(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form dto.NewPostForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %s", err.Error())
		return
	}

	post := &models.Post{
		Title:          form.Title,
		Description:    form.Description,
		RequiredSkills: form.RequiredSkills,
		AuthorID:       user.ID,
	}
	if err := h.db.CreatePost(post); err != nil {
		c.String(http.StatusInternalServerError, "failed to create post: %s", err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}
