package user

import "time"

// Cache sizing
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 5 * time.Minute
)

// Error Messages
const (
	ErrMsgInvalidUser    = "invalid user"
	ErrMsgUsernameTaken  = "username %q is already taken"
	ErrMsgUsernameNeeded = "username is required"
)

// Log Messages
const (
	LogMsgRegisterUserCalled = "RegisterUser called"
	LogMsgUserRegistered     = "User registered"
	LogMsgUserCacheHit       = "User served from cache"
)
