package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/kimjuyoung1127/fridgechef-backend/config"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/api"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/middleware"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/recommend"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/service"
)

// Server wires the services, handlers and middleware into an HTTP server.
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger zerolog.Logger
}

// New builds the full application: services over the database, the per-user
// recommendation session manager on top of them, and the route tree. The
// Redis client may be nil; caching and rate limiting then degrade to
// database-only operation.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger zerolog.Logger) (*Server, error) {
	inventory := service.NewInventoryService(db)
	search := service.NewSearchService(db)
	completion := service.NewCompletionService(db)
	detail := service.NewDetailService(db, redisClient, logger)
	auth := service.NewAuthService(cfg.JWTSecret)

	llm, err := service.NewLLMService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM service: %w", err)
	}

	manager := recommend.NewManager(recommend.Deps{
		Inventory:   inventory,
		Recommender: search,
		Generator:   llm,
		Recorder:    completion,
		Logger:      logger,
	})

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	recipeHandler := api.NewRecipeHandler(search, llm, detail, completion, logger)
	recipeHandler.RegisterRoutes(router.Group("/recipe"))

	recommendations := router.Group("/api/v1/recommendations")
	recommendations.Use(middleware.AuthMiddleware(auth))

	recommendationHandler := api.NewRecommendationHandler(manager, logger)
	if redisClient != nil {
		limiter := middleware.NewGenerationRateLimiter(redisClient)
		recommendationHandler.RegisterRoutes(recommendations, limiter.RateLimitMiddleware())
	} else {
		recommendationHandler.RegisterRoutes(recommendations)
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: router,
		},
		logger: logger,
	}, nil
}

// Start begins serving HTTP. It blocks until the listener fails or the server
// is shut down.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("starting HTTP server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the route tree for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
