package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/types"
)

// MockInventoryReader is a mock implementation of recommend.InventoryReader
type MockInventoryReader struct {
	mock.Mock
}

// ReadInventoryNames mocks the ReadInventoryNames method
func (m *MockInventoryReader) ReadInventoryNames(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockRecommendationFetcher is a mock implementation of recommend.RecommendationFetcher
type MockRecommendationFetcher struct {
	mock.Mock
}

// FetchRecommended mocks the FetchRecommended method
func (m *MockRecommendationFetcher) FetchRecommended(ctx context.Context, ingredients []string) ([]types.RecipeRecommendation, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeRecommendation), args.Error(1)
}

// MockGenerativeFetcher is a mock implementation of recommend.GenerativeFetcher
type MockGenerativeFetcher struct {
	mock.Mock
}

// FetchGenerated mocks the FetchGenerated method
func (m *MockGenerativeFetcher) FetchGenerated(ctx context.Context, ingredients []string) ([]types.RecipeRecommendation, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeRecommendation), args.Error(1)
}

// MockCompletionRecorder is a mock implementation of recommend.CompletionRecorder
type MockCompletionRecorder struct {
	mock.Mock
}

// RecordCompletion mocks the RecordCompletion method
func (m *MockCompletionRecorder) RecordCompletion(ctx context.Context, payload *types.CompleteRecipePayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
