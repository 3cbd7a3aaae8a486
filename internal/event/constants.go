package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// Error messages
const (
	ErrMsgMissingPayload = "event %s has no payload"
	ErrMsgDecodePayload  = "decode %s payload: %v"
)
