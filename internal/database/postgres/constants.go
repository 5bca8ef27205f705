package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation     = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row is missing
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeNumericOutOfRange is raised when an int4 sum overflows
	PgErrorCodeNumericOutOfRange   = "22003"
)

// Constraint name fragments used to tell foreign keys apart.
const (
	ConstraintFragmentUserID = "user_id"
	ConstraintFragmentFoodID = "food_id"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgInvalidUserID            = "invalid user id"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser        = "failed to insert user"
	ErrMsgFailedToGetUserByID       = "failed to get user by id"
	ErrMsgFailedToGetUserByUsername = "failed to get user by username"
)

// Error Messages - Food Directory Operations
const (
	ErrMsgFailedToCreateFood       = "failed to create food"
	ErrMsgFailedToGetFood          = "failed to get food"
	ErrMsgFailedToSearchFoods      = "failed to search foods"
	ErrMsgFailedToDeleteFood       = "failed to delete food"
	ErrMsgFailedToUpdateFood       = "failed to update food"
	ErrMsgFailedToCreateIngredient = "failed to create ingredient"
	ErrMsgFailedToGetIngredients   = "failed to get ingredients"
	ErrMsgFailedToDeleteIngredient = "failed to delete ingredient"
)

// Error Messages - Recipe Operations
const (
	ErrMsgFailedToCreateRecipeLine  = "failed to create recipe line"
	ErrMsgFailedToGetRecipeLines    = "failed to get recipe lines"
	ErrMsgFailedToDeleteRecipeLines = "failed to delete recipe lines"
)

// Error Messages - Diary Operations
const (
	ErrMsgFailedToCreateLogEntry  = "failed to create food log entry"
	ErrMsgFailedToDeleteLogEntry  = "failed to delete food log entry"
	ErrMsgFailedToListLogEntries  = "failed to list food log entries"
	ErrMsgFailedToUpsertDailyStat = "failed to upsert daily stat"
	ErrMsgFailedToGetDailyStat    = "failed to get daily stat"
	ErrMsgFailedToListDailyStats  = "failed to list daily stats"
	ErrMsgDailyTotalOverflow      = "daily total exceeds the storable range"
)
