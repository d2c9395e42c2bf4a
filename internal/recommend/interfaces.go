package recommend

import (
	"context"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/types"
)

// InventoryReader returns the current active inventory item names for a user.
type InventoryReader interface {
	ReadInventoryNames(ctx context.Context, userID string) ([]string, error)
}

// RecommendationFetcher is the primary, database-backed recipe search by
// ingredient overlap. An empty result is not an error.
type RecommendationFetcher interface {
	FetchRecommended(ctx context.Context, ingredients []string) ([]types.RecipeRecommendation, error)
}

// GenerativeFetcher synthesizes recipes for an ingredient list. Returned
// recipes carry no ID.
type GenerativeFetcher interface {
	FetchGenerated(ctx context.Context, ingredients []string) ([]types.RecipeRecommendation, error)
}

// CompletionRecorder marks a recipe cooked and decrements the consumed
// ingredient quantities.
type CompletionRecorder interface {
	RecordCompletion(ctx context.Context, payload *types.CompleteRecipePayload) error
}
