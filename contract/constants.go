package contract

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxHumanThreshold caps the captcha success percentage.
	MaxHumanThreshold = 100
)

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

const (
	// FallbackRecencyThresholdMs is used when the init payload leaves the
	// recency field empty: one day, i.e. the account must have solved a
	// captcha within the last 24h to pass the humanity gate.
	FallbackRecencyThresholdMs uint64 = 24 * 60 * 60 * 1000
)
