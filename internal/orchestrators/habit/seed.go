package habit

import (
	"github.com/statmaxer/statmaxer/internal/entities"
)

// DefaultGoalDays is the goal applied to every seeded habit
const DefaultGoalDays = 30

type seedHabit struct {
	name     string
	icon     string
	category entities.Category
	xp       int
	alarm    string
	hardcore bool
}

// The starter quest log for an empty collection
var defaultHabits = []seedHabit{
	{name: "Wake up 6AM", icon: "🌅", category: entities.CategoryDiscipline, xp: 15, alarm: "06:00", hardcore: true},
	{name: "No Snoozing", icon: "⏰", category: entities.CategoryDiscipline, xp: 10, alarm: "06:00", hardcore: true},
	{name: "3L Water", icon: "💧", category: entities.CategoryStrength, xp: 10},
	{name: "Gym", icon: "🏋️", category: entities.CategoryStrength, xp: 20, alarm: "07:00"},
	{name: "Stretching", icon: "🧘", category: entities.CategoryStrength, xp: 10},
	{name: "Read 10 Pages", icon: "📚", category: entities.CategoryIntelligence, xp: 15, alarm: "21:00"},
	{name: "Meditation", icon: "🧘", category: entities.CategoryDiscipline, xp: 15, alarm: "06:30"},
	{name: "Study 1 Hour", icon: "💻", category: entities.CategoryIntelligence, xp: 20},
	{name: "Skincare", icon: "✨", category: entities.CategoryDiscipline, xp: 10, alarm: "22:00"},
	{name: "Track Expenses", icon: "💰", category: entities.CategoryIntelligence, xp: 10},
}
