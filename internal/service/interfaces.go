package service

import (
	"context"

	"github.com/pageza/mealprep-ai/backend/internal/types"
)

// ChatCompleter sends one chat-completion request and returns the assistant's text
type ChatCompleter interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// MealGenerator turns a meal request into generated meals
type MealGenerator interface {
	GenerateMeals(ctx context.Context, req *types.MealRequest) ([]types.Meal, error)
}
