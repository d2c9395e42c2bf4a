package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/model"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/types"
)

// newTestDB opens an isolated in-memory database migrated with the full
// schema. Each test gets its own database, named after the test so parallel
// tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Recipe{}, &model.InventoryItem{}))
	return db
}

func seedRecipe(t *testing.T, db *gorm.DB, menuName string, ingredients ...string) model.Recipe {
	t.Helper()

	data := types.RecipeData{
		MenuName:    menuName,
		Description: "test recipe",
		Ingredients: make([]types.RecipeIngredient, 0, len(ingredients)),
		Instructions: []types.RecipeStep{
			{Step: 1, Description: "cook everything"},
		},
	}
	for _, name := range ingredients {
		data.Ingredients = append(data.Ingredients, types.RecipeIngredient{Name: name, Amount: "1"})
	}

	recipe := model.Recipe{
		MenuName:       menuName,
		RecipeData:     model.JSONBRecipeData(data),
		SearchKeywords: model.JSONBStringArray{menuName},
	}
	require.NoError(t, db.Create(&recipe).Error)
	return recipe
}

func seedInventoryItem(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, quantity int, status string, expiry *time.Time) model.InventoryItem {
	t.Helper()

	item := model.InventoryItem{
		UserID:     userID,
		Name:       name,
		Quantity:   quantity,
		Status:     status,
		ExpiryDate: expiry,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func timePtr(t time.Time) *time.Time {
	return &t
}
