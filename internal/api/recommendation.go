package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/recommend"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/types"
)

// RecommendationHandler exposes the per-user recommendation cache over HTTP.
// All routes require an authenticated user; the session is keyed by the user
// id the auth middleware resolved.
type RecommendationHandler struct {
	manager *recommend.Manager
	logger  zerolog.Logger
}

// NewRecommendationHandler creates a new RecommendationHandler instance
func NewRecommendationHandler(manager *recommend.Manager, logger zerolog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		manager: manager,
		logger:  logger.With().Str("handler", "recommendation").Logger(),
	}
}

// RegisterRoutes wires the recommendation endpoints onto the given group.
func (h *RecommendationHandler) RegisterRoutes(group *gin.RouterGroup, rateLimit ...gin.HandlerFunc) {
	group.GET("", h.List)
	group.POST("/generate", append(rateLimit, h.Generate)...)
	group.POST("/complete", h.Complete)
	group.DELETE("", h.Release)
}

// List handles GET /api/v1/recommendations. A collaborator failure does not
// fail the request: the previously cached recipes are served with the error
// message alongside, mirroring the stale-while-error contract of the cache.
func (h *RecommendationHandler) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	sess := h.manager.ForUser(userID)
	recipes, err := sess.LoadRecipes(c.Request.Context())
	if err != nil && c.Request.Context().Err() != nil {
		// Client went away mid-load; nothing useful to write.
		c.Status(http.StatusRequestTimeout)
		return
	}

	resp := gin.H{"recipes": recipes, "count": len(recipes)}
	if msg := sess.Err(); msg != "" {
		resp["error"] = msg
	}
	c.JSON(http.StatusOK, resp)
}

// Generate handles POST /api/v1/recommendations/generate.
func (h *RecommendationHandler) Generate(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	recipes, err := h.manager.ForUser(userID).GenerateNewRecipe(c.Request.Context())
	if errors.Is(err, recommend.ErrEmptyInventory) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "inventory is empty, add ingredients first"})
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("recipe generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes, "count": len(recipes)})
}

// Complete handles POST /api/v1/recommendations/complete.
func (h *RecommendationHandler) Complete(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var recipe types.RecipeRecommendation
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.manager.ForUser(userID).CompleteRecipe(c.Request.Context(), recipe); err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("completion recording failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record completion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe completion recorded"})
}

// Release handles DELETE /api/v1/recommendations. The next load starts from an
// empty cache, as on logout or account switch.
func (h *RecommendationHandler) Release(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	h.manager.Release(userID)
	c.Status(http.StatusNoContent)
}

func (h *RecommendationHandler) userID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return "", false
	}
	return userID, true
}
