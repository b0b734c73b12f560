package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pageza/mealprep-ai/backend/internal/types"
)

const systemPrompt = "You are a professional chef who responds only with valid JSON arrays of meal recipes."

const mealPromptTemplate = `You are a professional chef and nutritionist. Generate %[1]d creative, delicious meal recipes based on the following requirements:

Available Ingredients: %[2]s
Dietary Preference: %[3]s
Allergies: %[4]s
Nutritional Goal: %[5]s

Requirements:
1. Use primarily the available ingredients listed above
2. Suggest reasonable additional ingredients if needed (pantry staples are okay)
3. Make recipes practical and achievable for home cooking
4. Include accurate nutritional estimates
5. Each recipe should be unique and interesting

Return ONLY a valid JSON array with %[1]d meal objects. Each meal must have this exact structure:
{
  "title": "Meal name",
  "description": "Brief appetizing description (1-2 sentences)",
  "ingredients": ["ingredient 1 with quantity", "ingredient 2 with quantity", ...],
  "steps": ["Step 1", "Step 2", ...],
  "nutrition": {
    "calories": "approximate kcal",
    "protein": "approximate grams",
    "carbs": "approximate grams",
    "fat": "approximate grams"
  },
  "prep_time": "total time estimate",
  "difficulty": "Easy|Medium|Hard"
}

Return ONLY the JSON array, no markdown, no explanations.`

const noAllergies = "No allergies specified"

// MealService generates meals through the chat-completion API
type MealService struct {
	llm ChatCompleter
	log *logrus.Logger
}

// NewMealService creates a new MealService instance
func NewMealService(llm ChatCompleter, log *logrus.Logger) *MealService {
	return &MealService{
		llm: llm,
		log: log,
	}
}

// BuildPrompt renders the user instruction for req. Defaults must already be applied.
func BuildPrompt(req *types.MealRequest) string {
	allergies := noAllergies
	if len(req.Allergies) > 0 {
		allergies = "Avoid: " + strings.Join(req.Allergies, ", ")
	}

	return fmt.Sprintf(mealPromptTemplate,
		req.MealCount(),
		strings.Join(req.Ingredients, ", "),
		req.Diet,
		allergies,
		req.Goal,
	)
}

// StripCodeFences removes the markdown fencing a model may wrap around JSON.
// A leading "```json" is dropped, then a leading "```", then a trailing "```".
func StripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// GenerateMeals builds the prompt, calls the model once and parses its answer.
// Defaults are applied to a copy; the caller's request is left untouched.
// Every failure is returned as an *Error.
func (s *MealService) GenerateMeals(ctx context.Context, in *types.MealRequest) ([]types.Meal, error) {
	if len(in.Ingredients) == 0 {
		return nil, invalidInput("At least one ingredient is required")
	}
	r := *in
	req := &r
	req.ApplyDefaults()

	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: BuildPrompt(req)},
	}

	raw, err := s.llm.Complete(ctx, messages)
	if err != nil {
		s.log.WithError(err).Error("OpenAI API error")
		return nil, upstreamf(err, "Error generating meals")
	}

	content := StripCodeFences(raw)

	var doc json.RawMessage
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		s.log.WithError(err).WithField("content", content).Error("JSON decode error")
		return nil, upstreamf(err, "Failed to parse OpenAI response as JSON")
	}

	// Valid JSON that is not an array is a schema problem, not a parse problem.
	var items []json.RawMessage
	if err := json.Unmarshal(doc, &items); err != nil {
		s.log.WithError(err).WithField("content", content).Error("model output is not a JSON array")
		return nil, upstreamf(err, "Error generating meals")
	}
	if items == nil {
		return nil, upstreamf(errors.New("expected a JSON array, got null"), "Error generating meals")
	}

	meals := make([]types.Meal, 0, len(items))
	for i, item := range items {
		meal, err := types.ParseMeal(item)
		if err != nil {
			s.log.WithError(err).WithField("index", i).Error("invalid meal in model output")
			return nil, upstreamf(err, "Error generating meals")
		}
		meals = append(meals, *meal)
	}

	if len(meals) != req.MealCount() {
		s.log.WithFields(logrus.Fields{
			"requested": req.MealCount(),
			"returned":  len(meals),
		}).Warn("model returned a different number of meals than requested")
	}

	return meals, nil
}
