package constants

import "time"

// Session
const (
	SessionCookieName   = "ennytime_session"
	SessionTokenKey     = "session_token"
	ContextKeyUserID    = "user_id"
	SessionLifetime     = 7 * 24 * time.Hour
	SessionCookieMaxAge = 86400 * 7
)

// Validation
const (
	MinPasswordLength = 8
	MaxShiftNameLen   = 100
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DateFormat is the wire format for calendar dates (day granularity).
const DateFormat = "2006-01-02"
