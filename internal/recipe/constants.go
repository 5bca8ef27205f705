package recipe

// lockKeyFoodName prefixes the per-food named lock.
const lockKeyFoodName = "recipe:name:"

// Error Messages
const (
	ErrMsgInvalidRecipe      = "invalid recipe"
	ErrMsgInvalidIngredient  = "invalid ingredient"
	ErrMsgFoodExists         = "a food named %q already exists"
	ErrMsgMissingIngredient  = "ingredient %q"
	ErrMsgResolveIngredients = "failed to resolve ingredients"
	ErrMsgBeginTx            = "failed to begin transaction"
	ErrMsgCommitTx           = "failed to commit transaction"
	ErrMsgWriteLines         = "failed to write recipe lines"
	ErrMsgRecomputeTotals    = "failed to recompute totals for food %d"
)

// Log Messages
const (
	LogMsgRecipeCreated     = "Recipe created"
	LogMsgRecipeReplaced    = "Recipe replaced"
	LogMsgLineDeleted       = "Recipe line deleted"
	LogMsgIngredientCreated = "Ingredient created"
	LogMsgIngredientDeleted = "Ingredient deleted, recipes recomputed"
)
