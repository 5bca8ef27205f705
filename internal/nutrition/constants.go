package nutrition

import "time"

// Provider endpoint and headers
const (
	SearchPath       = "/apiFood.php"
	QueryParamName   = "name"
	QueryParamLang   = "lang"
	HeaderRapidKey   = "X-RapidAPI-Key"
	HeaderRapidHost  = "X-RapidAPI-Host"
	HeaderAccept     = "Accept"
	MediaTypeJSON    = "application/json"
	MaxResponseBytes = 1 << 20
)

// Defaults
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 2
	DefaultRetryDelay = 250 * time.Millisecond
)

// Error Messages
const (
	ErrMsgProviderDisabled = "nutrition provider is not configured"
	ErrMsgBuildRequest     = "failed to build provider request"
	ErrMsgProviderStatus   = "provider returned status %d"
	ErrMsgDecodeResponse   = "failed to decode provider response"
	ErrMsgNoDishes         = "provider returned no dishes"
	ErrMsgEmptyAmount      = "empty amount"
	ErrMsgNegativeAmount   = "negative amount %q"
	ErrMsgMalformedAmount  = "malformed amount %q"
	ErrMsgAmountTooLarge   = "amount %q is out of range"
	ErrMsgMaxRetries       = "max retries exceeded"
)

// Log Messages
const (
	LogMsgLookup           = "Querying nutrition provider"
	LogMsgRetry            = "Retrying nutrition provider request"
	LogMsgRequestFailed    = "Nutrition provider request failed"
	LogMsgCandidateSkipped = "Skipping provider candidate"
	LogMsgLookupDone       = "Nutrition provider lookup finished"
)
