package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/kimjuyoung1127/fridgechef-backend/config"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/database"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/logging"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/model"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/service"
)

// ingredientBatches are common fridge contents; each batch yields a few
// searchable recipes so a fresh install has something to match against.
var ingredientBatches = [][]string{
	{"egg", "rice", "green onion", "soy sauce"},
	{"chicken breast", "garlic", "onion", "potato"},
	{"tomato", "pasta", "olive oil", "basil"},
	{"tofu", "kimchi", "pork belly", "green onion"},
	{"bread", "cheese", "ham", "butter"},
	{"salmon", "lemon", "asparagus", "olive oil"},
	{"ground beef", "onion", "bell pepper", "tortilla"},
	{"mushroom", "cream", "garlic", "parsley"},
	{"shrimp", "garlic", "chili", "noodles"},
	{"cabbage", "carrot", "egg", "flour"},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogPretty)

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	llm, err := service.NewLLMService(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create LLM service")
	}

	ctx := context.Background()
	seeded := 0
	for _, batch := range ingredientBatches {
		recipes, err := llm.FetchGenerated(ctx, batch)
		if err != nil {
			logger.Error().Err(err).Strs("ingredients", batch).Msg("generation failed, skipping batch")
			continue
		}

		for _, rec := range recipes {
			var count int64
			if err := db.Model(&model.Recipe{}).
				Where("menu_name = ?", rec.MenuName).
				Count(&count).Error; err != nil {
				logger.Error().Err(err).Msg("duplicate check failed")
				continue
			}
			if count > 0 {
				logger.Debug().Str("menu_name", rec.MenuName).Msg("recipe already exists, skipping")
				continue
			}

			recipe := model.Recipe{
				MenuName:       rec.MenuName,
				RecipeData:     model.JSONBRecipeData(rec.RecipeData),
				SearchKeywords: append(model.JSONBStringArray{rec.MenuName}, batch...),
			}
			if err := db.Create(&recipe).Error; err != nil {
				logger.Error().Err(err).Str("menu_name", rec.MenuName).Msg("failed to save recipe")
				continue
			}
			seeded++
			logger.Info().Str("menu_name", rec.MenuName).Msg("seeded recipe")
		}

		// Stay under the API rate limit between batches.
		time.Sleep(2 * time.Second)
	}

	logger.Info().Int("seeded", seeded).Msg("recipe seeding complete")
}
