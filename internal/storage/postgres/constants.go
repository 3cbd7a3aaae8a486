package postgres

// SQL statements for the session_values table
const (
	SQLSelectSessionValues = `SELECT key, value FROM session_values WHERE session_id = $1`
	SQLDeleteSession       = `DELETE FROM session_values WHERE session_id = $1`
	SQLUpsertSessionValue  = `
		INSERT INTO session_values (session_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (session_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

// Error messages
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
	ErrMsgFailedToQuerySession     = "failed to query session"
	ErrMsgFailedToScanValue        = "failed to scan session value"
	ErrMsgFailedToSaveSession      = "failed to save session"
	ErrMsgFailedToDeleteSession    = "failed to delete session"
)

// Log messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
