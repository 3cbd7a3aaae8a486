package redis

import "time"

// KeyPrefix namespaces session hashes
const KeyPrefix = "caseforge:session:"

// DefaultSessionTTL expires idle sessions; zero disables expiry
const DefaultSessionTTL = 30 * 24 * time.Hour

// Error messages
const (
	ErrMsgPingFailed   = "redis: ping"
	ErrMsgLoadFailed   = "redis: load session %s"
	ErrMsgSaveFailed   = "redis: save session %s"
	ErrMsgDeleteFailed = "redis: delete session %s"
)
