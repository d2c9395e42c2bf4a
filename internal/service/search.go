package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/model"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/types"
)

// maxSearchResults caps the number of recommendations returned per search.
const maxSearchResults = 10

// SearchService matches stored recipes against a user's ingredient list.
type SearchService struct {
	db *gorm.DB
}

// NewSearchService creates a new SearchService instance
func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// FetchRecommended scores every stored recipe against the given ingredients
// and returns the best matches, highest match percentage first. A recipe
// matches when an owned ingredient name and a required ingredient name
// contain each other ("계란" matches "계란 2개"). Finding nothing is not an
// error; the caller decides whether to fall back to generation.
func (s *SearchService) FetchRecommended(ctx context.Context, ingredients []string) ([]types.RecipeRecommendation, error) {
	if len(ingredients) == 0 {
		return nil, nil
	}

	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	matched := make([]types.RecipeRecommendation, 0, len(recipes))
	for _, recipe := range recipes {
		required := requiredIngredientNames(types.RecipeData(recipe.RecipeData))
		if len(required) == 0 {
			continue
		}

		matchedCount := 0
		for _, owned := range ingredients {
			for _, req := range required {
				if ingredientMatches(owned, req) {
					matchedCount++
					break
				}
			}
		}
		if matchedCount == 0 {
			continue
		}

		missing := make([]string, 0, len(required))
		for _, req := range required {
			found := false
			for _, owned := range ingredients {
				if ingredientMatches(owned, req) {
					found = true
					break
				}
			}
			if !found {
				missing = append(missing, req)
			}
		}

		percentage := float64(matchedCount) / float64(len(required)) * 100
		percentage = math.Round(percentage*100) / 100

		matched = append(matched, types.RecipeRecommendation{
			ID:                 recipe.ID.String(),
			MenuName:           recipe.MenuName,
			RecipeData:         types.RecipeData(recipe.RecipeData),
			MatchPercentage:    percentage,
			MissingIngredients: missing,
			CreatedAt:          recipe.CreatedAt,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchPercentage > matched[j].MatchPercentage
	})

	if len(matched) > maxSearchResults {
		matched = matched[:maxSearchResults]
	}
	return matched, nil
}

func requiredIngredientNames(data types.RecipeData) []string {
	names := make([]string, 0, len(data.Ingredients))
	for _, ing := range data.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ingredientMatches compares two ingredient names, tolerating amount suffixes
// and partial naming on either side.
func ingredientMatches(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
