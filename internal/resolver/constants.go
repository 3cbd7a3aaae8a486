package resolver

// Wheel geometry
const (
	DegreesPerPercent = 3.6
	FullCircle        = 360.0

	// ArcInset keeps the stopping angle off the arc edges so the pointer is
	// never ambiguous. Narrow arcs use a quarter of their width instead.
	ArcInset = 1.0
)

// Full rotations added for animation
const (
	MinSpins = 5
	MaxSpins = 8
)

// Log messages
const (
	LogMsgChanceClamped = "Upgrade chance outside [0,100], clamping"
	LogMsgResolved      = "Upgrade resolved"
)
