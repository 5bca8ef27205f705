package domain

// RecipeLine links a composite food to an ingredient by weight.
type RecipeLine struct {
	ID             int    `json:"id"`
	FoodID         int    `json:"food_id"`
	IngredientID   int    `json:"ingredient_id"`
	IngredientName string `json:"ingredient"`
	Grams          int    `json:"grams"`

	// Per-100g values of the ingredient at read time.
	IngredientNutrients Nutrients `json:"-"`
}

// RecipeItem is the read-side view of a single line.
type RecipeItem struct {
	Ingredient string `json:"ingredient"`
	Grams      int    `json:"grams"`
}

// Recipe is the read-side view of a composite food.
type Recipe struct {
	Food        string       `json:"food"`
	Description *string      `json:"description"`
	Nutrients   Nutrients    `json:"nutrients"`
	Ingredients []RecipeItem `json:"ingredients"`
}
