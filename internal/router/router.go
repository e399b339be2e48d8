package router

import (
	"github.com/devgrain/confide/backend/internal/handlers"
	"github.com/devgrain/confide/backend/internal/middleware"
	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/devgrain/confide/backend/pkg/config"
	"github.com/devgrain/confide/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(logger.RequestLogger())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, gdb *gorm.DB, cfg *config.Config) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// Uploaded images are served as plain static files
	e.Static("/uploads", cfg.UploadDir)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(gdb)
	postRepo := repositories.NewPostgresPostRepository(gdb)
	feedRepo := repositories.NewPostgresFeedRepository(gdb)
	likeRepo := repositories.NewPostgresLikeRepository(gdb)
	repostRepo := repositories.NewPostgresRepostRepository(gdb)
	reactionRepo := repositories.NewPostgresReactionRepository(gdb)
	bookmarkRepo := repositories.NewPostgresBookmarkRepository(gdb)
	replyRepo := repositories.NewPostgresReplyRepository(gdb)
	followRepo := repositories.NewPostgresFollowRepository(gdb)
	messageRepo := repositories.NewPostgresMessageRepository(gdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(gdb)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))

	authHandler.RegisterAccountRoutes(api)

	userHandler := handlers.NewUserHandler(userRepo, cfg.UploadDir)
	userHandler.RegisterUserRoutes(api)

	postHandler := handlers.NewPostHandler(postRepo, feedRepo, userRepo, cfg.UploadDir)
	postHandler.RegisterPostRoutes(api)

	feedHandler := handlers.NewFeedHandler(feedRepo)
	feedHandler.RegisterFeedRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, notificationRepo)
	likeHandler.RegisterLikeRoutes(api)

	repostHandler := handlers.NewRepostHandler(repostRepo, postRepo, notificationRepo)
	repostHandler.RegisterRepostRoutes(api)

	reactionHandler := handlers.NewReactionHandler(reactionRepo, postRepo, notificationRepo)
	reactionHandler.RegisterReactionRoutes(api)

	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkRepo, postRepo, feedRepo)
	bookmarkHandler.RegisterBookmarkRoutes(api)

	replyHandler := handlers.NewReplyHandler(replyRepo, postRepo, notificationRepo)
	replyHandler.RegisterReplyRoutes(api)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo, notificationRepo)
	followHandler.RegisterFollowRoutes(api)

	messageHandler := handlers.NewMessageHandler(messageRepo, userRepo, notificationRepo)
	messageHandler.RegisterMessageRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	logger.Info("all routes configured")
}
