package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mindxandria/library-backend/internal/adapters/transport/http/handler"
	"github.com/mindxandria/library-backend/internal/adapters/transport/http/middleware"
	"github.com/mindxandria/library-backend/internal/app/auth/token"
)

type RouterDeps struct {
	Logger *zap.Logger
	Codec  *token.Codec

	Auth  *handler.AuthHandler
	Books *handler.BookHandler
	Users *handler.UserHandler
	Files *handler.FileHandler

	AllowedOrigins   []string
	AllowCredentials bool

	RateLimit      int
	RateLimitBurst int
}

func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(d.Logger))
	router.Use(middleware.RateLimitPerIP(d.RateLimit, d.RateLimitBurst, 10_000, time.Hour))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     d.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: d.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	authRequired := middleware.RequireAuth(d.Codec)

	auth := router.Group("/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
		auth.POST("/refresh", d.Auth.Refresh)
		auth.POST("/logout", authRequired, d.Auth.Logout)
	}

	books := router.Group("/books", authRequired)
	{
		books.GET("", d.Books.List)
		books.POST("/upload", d.Books.Create)
		books.PUT("/:id", d.Books.Update)
		books.DELETE("/:id", d.Books.Delete)
		books.GET("/search", d.Books.Search)
		books.GET("/genres/stats", d.Books.GenreStats)
	}

	users := router.Group("/users", authRequired)
	{
		users.GET("/me", d.Users.Me)
		users.DELETE("/me", d.Users.Delete)
	}

	files := router.Group("/files", authRequired)
	{
		files.POST("/upload-file", d.Files.Upload)
		files.GET("/:name", d.Files.Download)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "time": time.Now().Unix()})
	})

	return router
}
