package model

import "time"

// Meal un repas tiré du pool pour une catégorie donnée
type Meal struct {
	Type        string   `json:"type"` // Breakfast, Lunch, Dinner, Snack
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	LowGI       bool     `json:"lowGI"`
	Ingredients []string `json:"ingredients"`
	Benefits    []string `json:"benefits"`
}

// DayPlan une journée du plan hebdomadaire
type DayPlan struct {
	Day           string `json:"day"` // Mon, Tue, ...
	TotalCalories int    `json:"totalCalories"`
	Meals         []Meal `json:"meals"`
}

// PlanPreferences préférences transmises à la génération
type PlanPreferences struct {
	DietType    string   `json:"dietType,omitempty"`
	MealsPerDay string   `json:"mealsPerDay,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
	HealthGoals []string `json:"healthGoals,omitempty"`
}

// GeneratedPlan plan hebdomadaire généré (jamais mis à jour, toujours recréé)
type GeneratedPlan struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Preferences PlanPreferences `json:"preferences"`
	Week        []DayPlan       `json:"weekMatches"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// DietEntry entrée du journal alimentaire (héritage de l'ancien module diet)
type DietEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	MealType    string    `json:"mealType"` // breakfast, lunch, dinner, snack
	Description string    `json:"description"`
	Calories    int       `json:"calories"`
	EntryDate   time.Time `json:"date"`
}
