package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidID         = "Invalid id"
	ErrMsgInvalidDate       = "Invalid %s, expected YYYY-MM-DD"
	ErrMsgInvalidFormat     = "Invalid format, expected json or csv"
	ErrMsgForeignUser       = "Token does not match the requested user"
	ErrMsgMissingUser       = "Missing user"

	// Export error messages
	ErrMsgExportFailed = "Failed to export data"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgAlreadyExistsError  = "Already exists"
	ErrMsgNotFoundError       = "Not found"
	ErrMsgFoodNotFoundError   = "Food not found"
	ErrMsgIngredientNotFound  = "Ingredient not found"
	ErrMsgRecipeNotFoundError = "This food has no recipe"
	ErrMsgEntryNotFoundError  = "Diary entry not found"
	ErrMsgUserNotFoundError   = "User not found"
)

// Success messages for API responses
const (
	MsgFoodDeleted       = "Food deleted"
	MsgIngredientDeleted = "Ingredient deleted"
	MsgNoStatForDay      = "No statistics recorded for this day"
)
