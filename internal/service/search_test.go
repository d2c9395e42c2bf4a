package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_FetchRecommended(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(db)
	ctx := context.Background()

	seedRecipe(t, db, "Egg Fried Rice", "egg", "rice", "green onion")
	seedRecipe(t, db, "Tomato Pasta", "tomato", "pasta", "garlic", "olive oil")
	seedRecipe(t, db, "Plain Salad", "lettuce", "cucumber")

	t.Run("scores and sorts by match percentage", func(t *testing.T) {
		results, err := svc.FetchRecommended(ctx, []string{"egg", "rice", "tomato"})
		require.NoError(t, err)
		require.Len(t, results, 2)

		// 2/3 matched beats 1/4 matched.
		assert.Equal(t, "Egg Fried Rice", results[0].MenuName)
		assert.InDelta(t, 66.67, results[0].MatchPercentage, 0.01)
		assert.Equal(t, []string{"green onion"}, results[0].MissingIngredients)

		assert.Equal(t, "Tomato Pasta", results[1].MenuName)
		assert.InDelta(t, 25.0, results[1].MatchPercentage, 0.01)
	})

	t.Run("stored recipes carry their id", func(t *testing.T) {
		results, err := svc.FetchRecommended(ctx, []string{"egg"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.NotEmpty(t, results[0].ID)
		assert.False(t, results[0].IsGenerated())
	})

	t.Run("no overlap yields no results", func(t *testing.T) {
		results, err := svc.FetchRecommended(ctx, []string{"chocolate"})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("empty ingredient list yields no results", func(t *testing.T) {
		results, err := svc.FetchRecommended(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestSearchService_FetchRecommended_PartialNameMatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(db)

	// Recipes often list amounts inside the ingredient name.
	seedRecipe(t, db, "Omelette", "egg 2pcs", "butter")

	results, err := svc.FetchRecommended(context.Background(), []string{"Egg"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 50.0, results[0].MatchPercentage, 0.01)
	assert.Equal(t, []string{"butter"}, results[0].MissingIngredients)
}

func TestSearchService_FetchRecommended_CapsResults(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(db)

	for i := 0; i < 15; i++ {
		seedRecipe(t, db, fmt.Sprintf("Dish %02d", i), "egg")
	}

	results, err := svc.FetchRecommended(context.Background(), []string{"egg"})
	require.NoError(t, err)
	assert.Len(t, results, maxSearchResults)
}

func TestIngredientMatches(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"egg", "egg", true},
		{"egg", "egg 2pcs", true},
		{"Egg 2pcs", "egg", true},
		{"  egg  ", "EGG", true},
		{"egg", "milk", false},
		{"", "egg", false},
		{"", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ingredientMatches(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}
