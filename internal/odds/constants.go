package odds

// Chance bounds in percent. Every attempt keeps at least a 5% chance of
// failure and a 5% chance of success.
const (
	MinChance = 5.0
	MaxChance = 95.0
)

// Upgrade stake limits
const (
	MaxInputItems = 6
	MaxBet        = 10000.0
)

// BetMultipliers are the presets offered next to the bet input
var BetMultipliers = []int{2, 5, 10, 25, 50, 75, 100}

// Log messages
const (
	LogMsgDataIntegrity = "Refusing upgrade quote with invalid values"
)

// Error messages
const (
	ErrMsgNonPositiveTarget = "target value must be positive, got %v"
	ErrMsgNegativeStake     = "staked value must not be negative, got %v"
	ErrMsgUnknownRarity     = "item %q has unknown rarity %q"
)
