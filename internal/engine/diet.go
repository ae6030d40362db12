package engine

import (
	model "github.com/MAdnan2003/PCOSync/internal/models"
)

// Catégories de repas, dans l'ordre d'assemblage d'une journée
var mealCategories = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

// Jours de la semaine du plan généré
var weekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// MealPool pool fixe de repas par catégorie. Le tirage est uniforme et
// indépendant par catégorie et par jour.
type MealPool map[string][]model.Meal

func meal(name string, calories int, lowGI bool, ingredients, benefits []string) model.Meal {
	return model.Meal{Name: name, Calories: calories, LowGI: lowGI, Ingredients: ingredients, Benefits: benefits}
}

// DefaultMealPool le pool de production (recettes adaptées au SOPK : index
// glycémique bas en majorité)
func DefaultMealPool() MealPool {
	return MealPool{
		"Breakfast": {
			meal("Avocado Toast with Poached Egg", 350, true, []string{"Whole grain bread", "Avocado", "Egg", "Chili flakes"}, []string{"Healthy fats", "Protein", "Fiber"}),
			meal("Oatmeal with Berries", 320, true, []string{"Oats", "Blueberries", "Almond Milk", "Chia Seeds"}, []string{"Antioxidants", "High Fiber", "Heart Health"}),
			meal("Greek Yogurt Parfait", 300, true, []string{"Greek Yogurt", "Granola", "Honey", "Strawberries"}, []string{"Probiotics", "Protein", "Calcium"}),
			meal("Scrambled Eggs with Spinach", 340, true, []string{"Eggs", "Spinach", "Olive Oil", "Feta Cheese"}, []string{"Iron", "Protein", "Low Carb"}),
			meal("Chia Seed Pudding", 280, true, []string{"Chia Seeds", "Coconut Milk", "Mango", "Lime"}, []string{"Omega-3", "Hydration", "Digestion"}),
			meal("Buckwheat Pancakes", 380, true, []string{"Buckwheat Flour", "Banana", "Walnuts", "Maple Syrup"}, []string{"Gluten-free", "Magnesium", "Energy"}),
			meal("Tofu Scramble", 310, true, []string{"Tofu", "Turmeric", "Bell Peppers", "Onions"}, []string{"Plant Protein", "Anti-inflammatory", "Low Cholesterol"}),
		},
		"Lunch": {
			meal("Quinoa Salad with Chickpeas", 450, true, []string{"Quinoa", "Chickpeas", "Cucumber", "Lemon dressing"}, []string{"Complex carbs", "Plant protein", "Hydration"}),
			meal("Lentil Soup", 400, true, []string{"Lentils", "Carrots", "Celery", "Tomatoes"}, []string{"Iron", "Fiber", "Comforting"}),
			meal("Grilled Chicken Caesar Salad", 480, false, []string{"Chicken Breast", "Romaine Lettuce", "Parmesan", "Croutons"}, []string{"High Protein", "Calcium", "Vitamins"}),
			meal("Buddha Bowl", 500, true, []string{"Brown Rice", "Sweet Potato", "Kale", "Tahini Dressing"}, []string{"Nutrient Dense", "Balanced", "Sustained Energy"}),
			meal("Tuna Wrap", 420, true, []string{"Whole Wheat Tortilla", "Tuna", "Lettuce", "Greek Yogurt"}, []string{"Omega-3", "Lean Protein", "Portable"}),
			meal("Stuffed Bell Peppers", 460, true, []string{"Bell Peppers", "Ground Turkey", "Rice", "Tomato Sauce"}, []string{"Vitamin C", "Lean Protein", "Low Fat"}),
			meal("Mushroom Risotto", 520, false, []string{"Arborio Rice", "Mushrooms", "Parmesan", "White Wine"}, []string{"Comfort food", "Selenium", "Vegetarian"}),
		},
		"Dinner": {
			meal("Grilled Chicken with Steamed Broccoli", 500, true, []string{"Chicken breast", "Broccoli", "Garlic", "Olive oil"}, []string{"Lean protein", "Detoxification", "Low carb"}),
			meal("Baked Salmon with Asparagus", 550, true, []string{"Salmon", "Asparagus", "Lemon", "Dill"}, []string{"Omega-3", "Brain Health", "Heart Health"}),
			meal("Vegetable Stir-Fry", 450, true, []string{"Tofu", "Broccoli", "Carrots", "Soy Sauce"}, []string{"Vitamins", "Plant Protein", "Quick"}),
			meal("Zucchini Noodles with Pesto", 380, true, []string{"Zucchini", "Basil Pesto", "Cherry Tomatoes", "Pine Nuts"}, []string{"Low Carb", "Antioxidants", "Light"}),
			meal("Turkey Meatballs with Marinara", 520, true, []string{"Ground Turkey", "Marinara Sauce", "Whole Wheat Pasta", "Parsley"}, []string{"Lean Protein", "Fiber", "Comfort"}),
			meal("Cod with Roasted Veggies", 480, true, []string{"Cod Fillet", "Brussels Sprouts", "Sweet Potato", "Rosemary"}, []string{"Lean Protein", "Vitamins", "Potassium"}),
			meal("Eggplant Parmesan", 580, false, []string{"Eggplant", "Marinara", "Mozzarella", "Breadcrumbs"}, []string{"Vegetarian", "Calcium", "Flavorful"}),
		},
		"Snack": {
			meal("Almonds and Dark Chocolate", 200, true, []string{"Almonds", "70% Dark Chocolate"}, []string{"Magnesium", "Antioxidants"}),
			meal("Apple Slices with Peanut Butter", 220, true, []string{"Apple", "Peanut Butter"}, []string{"Fiber", "Healthy Fats"}),
			meal("Carrot Sticks with Hummus", 180, true, []string{"Carrots", "Hummus"}, []string{"Vitamin A", "Protein", "Crunchy"}),
			meal("Hard Boiled Egg", 70, true, []string{"Egg", "Paprika"}, []string{"High Protein", "Portable"}),
			meal("Trail Mix", 250, false, []string{"Nuts", "Seeds", "Dried Fruit"}, []string{"Energy", "Healthy Fats", "Vitamins"}),
			meal("Cottage Cheese with Pineapple", 200, true, []string{"Cottage Cheese", "Pineapple chunks"}, []string{"High Protein", "Calcium", "Sweet & Savory"}),
			meal("Edamame", 150, true, []string{"Edamame beans", "Sea Salt"}, []string{"Plant Protein", "Fiber", "Isoflavones"}),
		},
	}
}

// generateDay tire un repas par catégorie et recalcule le total de calories
// depuis les repas choisis (jamais stocké puis relu)
func (e *Engine) generateDay(day string) model.DayPlan {
	meals := make([]model.Meal, 0, len(mealCategories))
	total := 0

	for _, category := range mealCategories {
		pool := e.meals[category]
		m := pool[e.rnd.Intn(len(pool))]
		m.Type = category
		total += m.Calories
		meals = append(meals, m)
	}

	return model.DayPlan{Day: day, TotalCalories: total, Meals: meals}
}

// GenerateWeek produit un plan de 7 jours, Mon..Sun, un repas par catégorie
// et par jour
func (e *Engine) GenerateWeek() []model.DayPlan {
	week := make([]model.DayPlan, 0, len(weekDays))
	for _, day := range weekDays {
		week = append(week, e.generateDay(day))
	}
	return week
}
