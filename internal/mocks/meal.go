package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealprep-ai/backend/internal/types"
)

// MockMealGenerator is a mock implementation of the meal service
type MockMealGenerator struct {
	mock.Mock
}

// GenerateMeals mocks the GenerateMeals method
func (m *MockMealGenerator) GenerateMeals(ctx context.Context, req *types.MealRequest) ([]types.Meal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Meal), args.Error(1)
}
