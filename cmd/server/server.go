package server

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/thereayou/skillconnect/internal/config"
	"github.com/thereayou/skillconnect/internal/database"
	"github.com/thereayou/skillconnect/internal/handlers"
	"github.com/thereayou/skillconnect/internal/middleware"
	"github.com/thereayou/skillconnect/internal/services"
	"github.com/thereayou/skillconnect/pkg/auth"
)

type Server struct {
	Router   *gin.Engine
	DB       *database.Database
	Settings config.Settings
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	settings := config.Load()
	if !settings.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(settings.DatabasePath, settings.Debug); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}

	jwtMgr, err := auth.NewJWTManager(settings.SecretKey, settings.Algorithm, settings.TokenLifetime())
	if err != nil {
		log.Fatalf("invalid signing configuration: %v", err)
	}

	authSvc := services.NewAuthService(dbConn, jwtMgr)
	authH := handlers.NewAuthHandler(dbConn, authSvc)
	pageH := handlers.NewPageHandler(dbConn)
	userH := handlers.NewUserHandler()

	router := gin.Default()
	router.Use(middleware.RequestID())
	router.LoadHTMLGlob("web/templates/*.html")
	if _, err := os.Stat("web/static"); err == nil {
		router.Static("/static", "web/static")
	}

	Endpoints(router, authSvc, authH, pageH, userH)

	return &Server{
		Router:   router,
		DB:       dbConn,
		Settings: settings,
	}
}

func (s *Server) Run() {
	log.Printf("Server starting on %s", s.Settings.Addr())
	if err := s.Router.Run(s.Settings.Addr()); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
