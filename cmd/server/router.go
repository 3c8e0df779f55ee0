package server

import (
	"github.com/gin-gonic/gin"

	"github.com/thereayou/skillconnect/internal/handlers"
	"github.com/thereayou/skillconnect/internal/middleware"
	"github.com/thereayou/skillconnect/internal/services"
)

func Endpoints(r *gin.Engine, authSvc *services.AuthService, authH *handlers.AuthHandler, pageH *handlers.PageHandler, userH *handlers.UserHandler) {
	// Page surface: anonymous visitors are allowed everywhere, handlers
	// redirect where a user is required.
	pages := r.Group("/", middleware.CurrentUser(authSvc))
	{
		pages.GET("/", pageH.Home)
		pages.GET("/login", authH.LoginPage)
		pages.POST("/login", authH.Login)
		pages.GET("/register", authH.RegisterPage)
		pages.POST("/register", authH.Register)
		pages.GET("/logout", authH.Logout)
		pages.GET("/profile", pageH.Profile)
		pages.GET("/new-post", pageH.NewPostPage)
		pages.POST("/new-post", pageH.CreatePost)
	}

	// API surface: bearer token required.
	api := r.Group("/api", middleware.RequireUser(authSvc))
	{
		api.GET("/me", userH.Me)
	}
}
