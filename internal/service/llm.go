package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kimjuyoung1127/fridgechef-backend/config"
	"github.com/kimjuyoung1127/fridgechef-backend/internal/types"
)

// LLMService generates recipes through a chat-completions API.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	logger zerolog.Logger
	now    func() time.Time
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg *config.Config, logger zerolog.Logger) (*LLMService, error) {
	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY or LLM_API_KEY_FILE must be set")
	}
	return &LLMService{
		apiKey: cfg.LLMAPIKey,
		apiURL: cfg.LLMAPIURL,
		model:  cfg.LLMModel,
		client: &http.Client{Timeout: 60 * time.Second},
		logger: logger.With().Str("component", "llm").Logger(),
		now:    time.Now,
	}, nil
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat-completions request
type Request struct {
	Model            string            `json:"model"`
	Messages         []Message         `json:"messages"`
	ResponseFormat   map[string]string `json:"response_format"`
	Temperature      float64           `json:"temperature"`
	TopP             float64           `json:"top_p"`
	FrequencyPenalty float64           `json:"frequency_penalty"`
	PresencePenalty  float64           `json:"presence_penalty"`
}

const generateSystemPrompt = `You are a professional chef. Given a list of ingredients a user has at home, suggest creative recipes that can be cooked with them. Please provide your response in JSON format with the following structure:
{
    "recipes": [
        {
            "menu_name": "Recipe name",
            "description": "Brief, appetizing description",
            "cooking_time": "Cooking time (e.g. 30 minutes)",
            "difficulty": "One of: Easy, Medium, Hard",
            "ingredients": [
                {"name": "ingredient name", "amount": "quantity"}
            ],
            "instructions": [
                {"step": 1, "description": "First cooking step"}
            ],
            "nutrition_info": {"calories": "350", "protein": "15g", "carbs": "45g", "fat": "12g"},
            "tips": "Optional cooking tip"
        }
    ]
}

Use only the provided ingredients plus common pantry staples (salt, pepper, oil, water).`

// FetchGenerated asks the LLM for recipes covering the given ingredients.
// Returned recommendations carry no ID; the discriminator for generated
// recipes is that absence.
func (s *LLMService) FetchGenerated(ctx context.Context, ingredients []string) ([]types.RecipeRecommendation, error) {
	if len(ingredients) == 0 {
		return nil, nil
	}

	messages := []Message{
		{
			Role:    "system",
			Content: generateSystemPrompt,
		},
		{
			Role:    "user",
			Content: "Suggest recipes using these ingredients: " + strings.Join(ingredients, ", "),
		},
	}

	reqBody := Request{
		Model:    s.model,
		Messages: messages,
		ResponseFormat: map[string]string{
			"type": "json_object",
		},
		Temperature:      0.9, // Higher temperature for more creativity
		TopP:             0.9,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.5,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.Error().Int("status", resp.StatusCode).Msg("recipe generation request failed")
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no response from API")
	}

	content := stripCodeFence(result.Choices[0].Message.Content)

	var wrapper struct {
		Recipes []types.RecipeData `json:"recipes"`
	}
	err = json.Unmarshal([]byte(content), &wrapper)
	if err != nil || len(wrapper.Recipes) == 0 {
		// Some models answer with a bare recipe object instead of the
		// requested wrapper.
		var single types.RecipeData
		if err2 := json.Unmarshal([]byte(content), &single); err2 != nil || single.MenuName == "" {
			return nil, fmt.Errorf("failed to parse generated recipes: %s", content)
		}
		wrapper.Recipes = []types.RecipeData{single}
	}

	now := s.now()
	recommendations := make([]types.RecipeRecommendation, 0, len(wrapper.Recipes))
	for _, data := range wrapper.Recipes {
		if data.MenuName == "" {
			continue
		}
		recommendations = append(recommendations, types.RecipeRecommendation{
			MenuName:        data.MenuName,
			RecipeData:      data,
			MatchPercentage: 100,
			// The model cooks from the user's own ingredients, so
			// nothing is missing by construction.
			MissingIngredients: []string{},
			CreatedAt:          now,
		})
	}

	s.logger.Info().Int("recipes", len(recommendations)).Msg("generated recipes from LLM")
	return recommendations, nil
}

// stripCodeFence removes a markdown ```json fence some models wrap around
// their JSON output despite the response_format hint.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return strings.TrimSpace(content)
}
