package entities

// Category groups habits for the radar-chart breakdown. The set is fixed;
// a new category must be added here, never inferred from data.
type Category string

// Habit categories
const (
	CategoryStrength     Category = "strength"
	CategoryIntelligence Category = "intelligence"
	CategoryDiscipline   Category = "discipline"
)

// Categories returns the fixed category set in display order
func Categories() []Category {
	return []Category{CategoryStrength, CategoryIntelligence, CategoryDiscipline}
}

// IsValid reports whether the category is one of the fixed set
func (c Category) IsValid() bool {
	switch c {
	case CategoryStrength, CategoryIntelligence, CategoryDiscipline:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// DefaultPlayerName is used when no display name has been set
const DefaultPlayerName = "Player_One"
