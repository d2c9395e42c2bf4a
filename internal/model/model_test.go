package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/types"
)

func newModelTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

// The schema must migrate on sqlite, not just Postgres: the test suites run
// against in-memory sqlite databases.
func TestMigrateOnSQLite(t *testing.T) {
	db := newModelTestDB(t)
	require.NoError(t, db.AutoMigrate(&Recipe{}, &InventoryItem{}))
}

func TestRecipe_CreateAssignsID(t *testing.T) {
	db := newModelTestDB(t)
	require.NoError(t, db.AutoMigrate(&Recipe{}))

	recipe := Recipe{
		MenuName: "Egg Fried Rice",
		RecipeData: JSONBRecipeData{
			MenuName:    "Egg Fried Rice",
			Ingredients: []types.RecipeIngredient{{Name: "egg", Amount: "2"}},
		},
		SearchKeywords: JSONBStringArray{"Egg Fried Rice"},
	}
	require.NoError(t, db.Create(&recipe).Error)
	assert.NotEqual(t, uuid.Nil, recipe.ID)

	var loaded Recipe
	require.NoError(t, db.First(&loaded, "id = ?", recipe.ID).Error)
	assert.Equal(t, "Egg Fried Rice", loaded.RecipeData.MenuName)
	assert.Equal(t, JSONBStringArray{"Egg Fried Rice"}, loaded.SearchKeywords)
}

func TestInventoryItem_CreateAssignsID(t *testing.T) {
	db := newModelTestDB(t)
	require.NoError(t, db.AutoMigrate(&InventoryItem{}))

	item := InventoryItem{
		UserID:   uuid.New(),
		Name:     "milk",
		Quantity: 2,
		Status:   InventoryStatusActive,
	}
	require.NoError(t, db.Create(&item).Error)
	assert.NotEqual(t, uuid.Nil, item.ID)

	var loaded InventoryItem
	require.NoError(t, db.First(&loaded, "id = ?", item.ID).Error)
	assert.Equal(t, "milk", loaded.Name)
	assert.Equal(t, 2, loaded.Quantity)
}

func TestRecipe_CreateKeepsExplicitID(t *testing.T) {
	db := newModelTestDB(t)
	require.NoError(t, db.AutoMigrate(&Recipe{}))

	id := uuid.New()
	recipe := Recipe{
		ID:         id,
		MenuName:   "Toast",
		RecipeData: JSONBRecipeData{MenuName: "Toast"},
	}
	require.NoError(t, db.Create(&recipe).Error)
	assert.Equal(t, id, recipe.ID)
}
