package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/model"
)

// MockRecipeDetailProvider is a mock implementation of api.RecipeDetailProvider
type MockRecipeDetailProvider struct {
	mock.Mock
}

// GetRecipeDetail mocks the GetRecipeDetail method
func (m *MockRecipeDetailProvider) GetRecipeDetail(ctx context.Context, menuName string) (*model.Recipe, error) {
	args := m.Called(ctx, menuName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}
