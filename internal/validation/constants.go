package validation

// Error messages
const (
	ErrMsgReadSchema      = "failed to read schema %s: %w"
	ErrMsgParseSchema     = "failed to parse schema %s: %w"
	ErrMsgCompileSchema   = "failed to compile schema %s: %w"
	ErrMsgParseJSON       = "failed to parse JSON data: %w"
	ErrMsgParseYAML       = "failed to parse YAML data: %w"
	ErrMsgSchemaViolation = "schema validation failed: %s"
)
