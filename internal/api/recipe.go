package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/model"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/recommend"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/service"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/types"
)

// RecipeDetailProvider serves stored recipes by menu name.
type RecipeDetailProvider interface {
	GetRecipeDetail(ctx context.Context, menuName string) (*model.Recipe, error)
}

// RecipeHandler exposes the stateless recipe endpoints: ingredient search,
// direct generation, detail lookup and completion recording.
type RecipeHandler struct {
	search    recommend.RecommendationFetcher
	generator recommend.GenerativeFetcher
	detail    RecipeDetailProvider
	recorder  recommend.CompletionRecorder
	logger    zerolog.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(
	search recommend.RecommendationFetcher,
	generator recommend.GenerativeFetcher,
	detail RecipeDetailProvider,
	recorder recommend.CompletionRecorder,
	logger zerolog.Logger,
) *RecipeHandler {
	return &RecipeHandler{
		search:    search,
		generator: generator,
		detail:    detail,
		recorder:  recorder,
		logger:    logger.With().Str("handler", "recipe").Logger(),
	}
}

// RegisterRoutes wires the recipe endpoints onto the given group.
func (h *RecipeHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/search", h.Search)
	group.GET("/generate", h.Generate)
	group.GET("/detail/:menu_name", h.Detail)
	group.POST("/complete", h.Complete)
}

// Search handles GET /recipe/search?ingredients=a,b
func (h *RecipeHandler) Search(c *gin.Context) {
	ingredients := parseIngredientsParam(c.Query("ingredients"))
	if len(ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredients query parameter is required"})
		return
	}

	recipes, err := h.search.FetchRecommended(c.Request.Context(), ingredients)
	if err != nil {
		h.logger.Error().Err(err).Msg("recipe search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search recipes"})
		return
	}

	resp := gin.H{"recipes": recipes, "count": len(recipes)}
	if len(recipes) == 0 {
		resp["message"] = "No matching recipes found. Try generating a new one."
	}
	c.JSON(http.StatusOK, resp)
}

// Generate handles GET /recipe/generate?ingredients=a,b
func (h *RecipeHandler) Generate(c *gin.Context) {
	ingredients := parseIngredientsParam(c.Query("ingredients"))
	if len(ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredients query parameter is required"})
		return
	}

	recipes, err := h.generator.FetchGenerated(c.Request.Context(), ingredients)
	if err != nil {
		h.logger.Error().Err(err).Msg("recipe generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes, "count": len(recipes)})
}

// Detail handles GET /recipe/detail/:menu_name
func (h *RecipeHandler) Detail(c *gin.Context) {
	menuName := c.Param("menu_name")

	recipe, err := h.detail.GetRecipeDetail(c.Request.Context(), menuName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("menu_name", menuName).Msg("recipe detail lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// Complete handles POST /recipe/complete
func (h *RecipeHandler) Complete(c *gin.Context) {
	var payload types.CompleteRecipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// An authenticated caller's identity wins over whatever the body claims.
	if userID := c.GetString("user_id"); userID != "" {
		payload.UserID = userID
	}
	if payload.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	if err := h.recorder.RecordCompletion(c.Request.Context(), &payload); err != nil {
		if errors.Is(err, service.ErrMissingRecipe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error().Err(err).Msg("completion recording failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record completion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "recipe completion recorded",
		"recipe_id": payload.RecipeID,
	})
}

// parseIngredientsParam splits a comma-separated ingredient list, dropping
// blank entries.
func parseIngredientsParam(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
