package router

import (
	"github.com/gin-gonic/gin"
	// swaggerFiles "github.com/swaggo/files"
	// ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/client"
	"blog-api/internal/handler"
	"blog-api/internal/middleware"
	"blog-api/internal/repository"
	"blog-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB          *gorm.DB
	Logger      *zap.Logger
	JWTSecret   string
	BasePath    string
	CORSOrigins string
	Env         string
	S3Client    client.S3ClientInterface
	AuthClient  *client.AuthClient
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.MetricsMiddleware())

	// Prometheus metrics endpoint
	r.GET("/metrics", middleware.MetricsHandler())

	// Health check routes
	healthHandler := handler.NewHealthHandler(cfg.DB)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	// Swagger documentation (disabled for faster builds)
	// r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	articleRepo := repository.NewArticleRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	userRepo := repository.NewUserRepository(cfg.DB)

	// Initialize services
	articleService := service.NewArticleService(articleRepo, userRepo, cfg.S3Client, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, articleRepo, userRepo, cfg.Logger)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService)
	commentHandler := handler.NewCommentHandler(commentService)

	// Auth middleware - use auth-service validator if available, otherwise local JWT
	var authMiddleware gin.HandlerFunc
	if cfg.AuthClient != nil {
		authMiddleware = middleware.AuthWithValidator(cfg.AuthClient)
	} else {
		authMiddleware = middleware.Auth(cfg.JWTSecret)
	}

	api := r.Group(cfg.BasePath)

	articles := api.Group("/article")
	{
		articles.GET("", articleHandler.GetAll)
		articles.GET("/:id", articleHandler.GetArticle)
		articles.POST("", authMiddleware, articleHandler.Create)
		articles.PATCH("/:id", authMiddleware, articleHandler.Update)

		articles.GET("/:id/comment", commentHandler.GetComments)
		articles.POST("/:id/comment", authMiddleware, commentHandler.Create)
		articles.PATCH("/:id/comment/:commentId", authMiddleware, commentHandler.Update)
	}

	return r
}
