package types

import (
	"time"
)

// RecipeIngredient is a single ingredient entry inside a recipe's data payload.
type RecipeIngredient struct {
	Name     string `json:"name"`
	Amount   string `json:"amount,omitempty"`
	Category string `json:"category,omitempty"`
}

// RecipeStep is one numbered cooking instruction.
type RecipeStep struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
}

// NutritionInfo holds the approximate nutrition breakdown for a recipe.
type NutritionInfo struct {
	Calories string `json:"calories,omitempty"`
	Protein  string `json:"protein,omitempty"`
	Carbs    string `json:"carbs,omitempty"`
	Fat      string `json:"fat,omitempty"`
}

// RecipeData is the structured recipe payload. The recommendation cache passes
// it through unmodified; the completion recorder reads Ingredients from it.
type RecipeData struct {
	MenuName      string             `json:"menu_name"`
	Description   string             `json:"description,omitempty"`
	CookingTime   string             `json:"cooking_time,omitempty"`
	Difficulty    string             `json:"difficulty,omitempty"`
	Ingredients   []RecipeIngredient `json:"ingredients"`
	Instructions  []RecipeStep       `json:"instructions"`
	NutritionInfo *NutritionInfo     `json:"nutrition_info,omitempty"`
	Tips          string             `json:"tips,omitempty"`
	ImageURL      string             `json:"image_url,omitempty"`
}

// RecipeRecommendation is the unit returned to recommendation callers.
// ID is empty for generatively produced recipes that were never persisted;
// that absence is what distinguishes the two recipe origins.
type RecipeRecommendation struct {
	ID                 string     `json:"id,omitempty"`
	MenuName           string     `json:"menu_name"`
	RecipeData         RecipeData `json:"recipe_data"`
	MatchPercentage    float64    `json:"match_percentage"`
	MissingIngredients []string   `json:"missing_ingredients"`
	CreatedAt          time.Time  `json:"created_at"`
}

// IsGenerated reports whether the recipe came from the generative path.
func (r RecipeRecommendation) IsGenerated() bool {
	return r.ID == ""
}

// IngredientUsed records one ingredient consumed by a completed recipe.
type IngredientUsed struct {
	Name         string `json:"name"`
	QuantityUsed int    `json:"quantity_used"`
}

// CompleteRecipePayload is the completion-recording request. MenuName and
// RecipeData are only present when the recipe has no ID, so the backend can
// persist the generated recipe before decrementing inventory.
type CompleteRecipePayload struct {
	RecipeID        string           `json:"recipe_id,omitempty"`
	UserID          string           `json:"user_id"`
	MenuName        string           `json:"menu_name,omitempty"`
	RecipeData      *RecipeData      `json:"recipe_data,omitempty"`
	IngredientsUsed []IngredientUsed `json:"ingredients_used"`
}
