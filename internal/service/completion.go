package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/model"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/types"
)

var (
	// ErrMissingRecipe indicates a completion payload carried neither a
	// recipe id nor the data needed to persist a generated recipe.
	ErrMissingRecipe = errors.New("recipe id or recipe data is required")
)

// CompletionService records cooked recipes and decrements the consumed
// inventory quantities.
type CompletionService struct {
	db *gorm.DB
}

// NewCompletionService creates a new CompletionService instance
func NewCompletionService(db *gorm.DB) *CompletionService {
	return &CompletionService{db: db}
}

// RecordCompletion persists the completion in one transaction. A payload
// without a recipe id must carry the menu name and recipe data; the recipe is
// saved first so generated recipes become searchable. Each used ingredient is
// decremented on the user's active inventory; an item that reaches zero is
// marked consumed. Unknown ingredient names are skipped.
func (s *CompletionService) RecordCompletion(ctx context.Context, payload *types.CompleteRecipePayload) error {
	if payload == nil || payload.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	if payload.RecipeID == "" && (payload.MenuName == "" || payload.RecipeData == nil) {
		return ErrMissingRecipe
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if payload.RecipeID == "" {
			recipe := model.Recipe{
				MenuName:       payload.MenuName,
				RecipeData:     model.JSONBRecipeData(*payload.RecipeData),
				SearchKeywords: model.JSONBStringArray{payload.MenuName},
				IsGenerated:    true,
			}
			if err := tx.Create(&recipe).Error; err != nil {
				return fmt.Errorf("failed to save generated recipe: %w", err)
			}
			payload.RecipeID = recipe.ID.String()
		}

		for _, used := range payload.IngredientsUsed {
			if err := consumeIngredient(tx, userID, used); err != nil {
				return err
			}
		}
		return nil
	})
}

func consumeIngredient(tx *gorm.DB, userID uuid.UUID, used types.IngredientUsed) error {
	quantity := used.QuantityUsed
	if quantity <= 0 {
		quantity = 1
	}

	var item model.InventoryItem
	err := tx.
		Where("user_id = ? AND name = ? AND status = ?", userID, used.Name, model.InventoryStatusActive).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// The recipe may call for things the user never tracked.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up inventory item %q: %w", used.Name, err)
	}

	if item.Quantity > quantity {
		return tx.Model(&item).Update("quantity", item.Quantity-quantity).Error
	}
	return tx.Model(&item).Update("status", model.InventoryStatusConsumed).Error
}
