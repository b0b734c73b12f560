package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Difficulty is how demanding a meal is to cook
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"

	DefaultDifficulty = DifficultyMedium
)

// ParseDifficulty matches s case-insensitively against the known levels.
// Unknown values report false and fall back to DefaultDifficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	default:
		return DefaultDifficulty, false
	}
}

// UnmarshalJSON accepts any string and coerces it onto the known levels.
// null leaves the value unset so Normalize can apply the default.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("difficulty must be a string: %w", err)
	}
	*d, _ = ParseDifficulty(s)
	return nil
}

// NutritionInfo holds free-text nutritional estimates for one serving
type NutritionInfo struct {
	Calories string  `json:"calories"`
	Protein  string  `json:"protein"`
	Carbs    *string `json:"carbs"`
	Fat      *string `json:"fat"`
}

// Meal represents a single generated recipe
type Meal struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Ingredients []string       `json:"ingredients"`
	Steps       []string       `json:"steps"`
	Nutrition   *NutritionInfo `json:"nutrition"`
	PrepTime    *string        `json:"prep_time"`
	Difficulty  Difficulty     `json:"difficulty"`
}

// Normalize fills in defaults for optional fields
func (m *Meal) Normalize() {
	if m.Difficulty == "" {
		m.Difficulty = DefaultDifficulty
	}
}

// mealWire is a meal as the model sends it. Pointers tell an absent or null
// value apart from an empty string, so "required" means present and non-null.
type mealWire struct {
	Title       *string        `json:"title" validate:"required"`
	Description *string        `json:"description" validate:"required"`
	Ingredients []*string      `json:"ingredients" validate:"required,dive,required"`
	Steps       []*string      `json:"steps" validate:"required,dive,required"`
	Nutrition   *nutritionWire `json:"nutrition" validate:"required"`
	PrepTime    *string        `json:"prep_time"`
	Difficulty  Difficulty     `json:"difficulty"`
}

type nutritionWire struct {
	Calories *string `json:"calories" validate:"required"`
	Protein  *string `json:"protein" validate:"required"`
	Carbs    *string `json:"carbs"`
	Fat      *string `json:"fat"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func derefAll(in []*string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = *s
	}
	return out
}

// ParseMeal decodes a single meal object, checks that every required key is
// present and non-null, and applies defaults. Empty strings are accepted.
func ParseMeal(data []byte) (*Meal, error) {
	var wire mealWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if err := validate.Struct(&wire); err != nil {
		return nil, err
	}

	meal := &Meal{
		Title:       *wire.Title,
		Description: *wire.Description,
		Ingredients: derefAll(wire.Ingredients),
		Steps:       derefAll(wire.Steps),
		Nutrition: &NutritionInfo{
			Calories: *wire.Nutrition.Calories,
			Protein:  *wire.Nutrition.Protein,
			Carbs:    wire.Nutrition.Carbs,
			Fat:      wire.Nutrition.Fat,
		},
		PrepTime:   wire.PrepTime,
		Difficulty: wire.Difficulty,
	}
	meal.Normalize()
	return meal, nil
}

// MealResponse is the body returned by the generation endpoint
type MealResponse struct {
	Meals []Meal `json:"meals"`
}
