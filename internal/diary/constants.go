package diary

// Error Messages
const (
	ErrMsgUserRequired  = "user is required"
	ErrMsgInvalidRange  = "date_start %s is after date_end %s"
	ErrMsgBeginTx       = "failed to begin transaction"
	ErrMsgCommitTx      = "failed to commit transaction"
	ErrMsgInvalidDelta  = "invalid statistic delta"
	ErrMsgInvalidEntry  = "entry id must be positive"
	ErrMsgInvalidFoodID = "food id must be positive"
)

// Log Messages
const (
	LogMsgFoodRecorded = "Food recorded in diary"
	LogMsgDeltaApplied = "Statistic delta applied"
	LogMsgEntryDeleted = "Diary entry deleted"
	LogMsgStatMissing  = "Deleted entry had no statistic row"
)
