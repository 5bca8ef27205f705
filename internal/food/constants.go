package food

import "time"

// Search and cache defaults
const (
	DefaultSearchLimit = 25
	DefaultCacheSize   = 256
	DefaultCacheTTL    = 10 * time.Minute
)

// Error Messages
const (
	ErrMsgEmptyName        = "food name must not be empty"
	ErrMsgNameTooLong      = "food name exceeds %d characters"
	ErrMsgDescriptionLong  = "description exceeds %d characters"
	ErrMsgNoUsableImports  = "no usable foods from provider for %q"
	ErrMsgProviderMissing  = "no nutrition provider configured"
	ErrMsgSearchFailed     = "failed to search foods"
	ErrMsgCreateFoodFailed = "failed to create food"
	ErrMsgImportFailed     = "failed to import food %q"
)

// Log Messages
const (
	LogMsgCacheHit          = "Food search served from cache"
	LogMsgLocalMatch        = "Food search matched directory"
	LogMsgImporting         = "No local match, importing from provider"
	LogMsgCandidateExists   = "Provider candidate already in directory"
	LogMsgCandidateRejected = "Provider candidate rejected"
	LogMsgImported          = "Imported food from provider"
	LogMsgFoodCreated       = "Food created"
	LogMsgFoodDeleted       = "Food deleted"
)
