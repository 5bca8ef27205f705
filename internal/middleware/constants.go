package middleware

// HTTP header handling
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// Default Values
const (
	// EmptyUserID represents an empty or missing user ID
	EmptyUserID = ""
)

// Error Messages
const (
	ErrMsgInvalidToken     = "invalid bearer token"
	ErrMsgMissingSubject   = "token has no subject"
	ErrMsgUnexpectedMethod = "unexpected signing method %v"
	ErrMsgNoSecret         = "bearer tokens are not accepted"
)

// Log Messages
const (
	LogMsgTokenRejected = "Bearer token rejected"
	LogMsgTokenAccepted = "Bearer token accepted"
)
