package simulation

// Defaults for a simulation run
const (
	DefaultDraws  = 100000
	DefaultRuns   = 10
	DefaultChance = 50.0
)

// Log messages
const (
	LogMsgRunStarted  = "Simulation run started"
	LogMsgRunFinished = "Simulation run finished"
)

// Error messages
const (
	ErrMsgInvalidDraws  = "draws must be positive, got %d"
	ErrMsgInvalidRuns   = "runs must be positive, got %d"
	ErrMsgInvalidChance = "chance must be in [0,100], got %v"
)
