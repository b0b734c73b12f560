package types

const (
	DefaultDiet      = "balanced"
	DefaultGoal      = "balanced"
	DefaultMealCount = 3
	MinMealCount     = 1
	MaxMealCount     = 5
)

// MealRequest represents the request body for generating meals
type MealRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	Diet        string   `json:"diet"`
	Allergies   []string `json:"allergies"`
	Goal        string   `json:"goal"`
	Count       *int     `json:"count" binding:"omitempty,min=1,max=5"`
}

// ApplyDefaults fills in every optional field the caller left out
func (r *MealRequest) ApplyDefaults() {
	if r.Diet == "" {
		r.Diet = DefaultDiet
	}
	if r.Goal == "" {
		r.Goal = DefaultGoal
	}
	if r.Allergies == nil {
		r.Allergies = []string{}
	}
	if r.Count == nil {
		n := DefaultMealCount
		r.Count = &n
	}
}

// MealCount returns the requested number of meals, or the default when unset
func (r *MealRequest) MealCount() int {
	if r.Count == nil {
		return DefaultMealCount
	}
	return *r.Count
}
