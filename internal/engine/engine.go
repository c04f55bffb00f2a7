// Package engine implements the finance summary and insight engine: pure
// functions that derive aggregate totals, a behavioural classification,
// textual insights, and time-windowed budget status from a snapshot of
// transactions. Nothing in this package keeps state between calls; every
// read recomputes from the list it is given.
package engine

// Config holds the engine's tunable thresholds. The zero value of any field
// is replaced by its default, so callers only set what they want to change.
type Config struct {
	// SmallExpenseThreshold is the amount below which an expense counts as
	// "small" for the frequent-small classification. The cutoff is in the
	// app's base currency unit and should be adjusted for currency scale.
	SmallExpenseThreshold float64

	// ImpulseRatio is the share of impulse-tagged expenses above which the
	// user classifies as impulsive.
	ImpulseRatio float64

	// SmallRatio is the share of small expenses above which the user
	// classifies as a frequent-small spender.
	SmallRatio float64

	// FoodLeakShare is the share of total expenses above which food
	// spending is flagged as a money leak.
	FoodLeakShare float64

	// SavingSurplus is the balance above which a saving opportunity is
	// suggested.
	SavingSurplus float64

	// NearLimitPercent is the budget usage percentage at which a window
	// emits a near-limit warning.
	NearLimitPercent int

	// StressAlertCount is the count of stress-tagged expenses that must be
	// exceeded (strictly) before the stress-spending insight fires.
	StressAlertCount int

	// ImpulseAlertCount is the in-window count of impulse-tagged expenses
	// at which the impulse-pattern alert fires.
	ImpulseAlertCount int

	// PaceTolerance is the multiplier on the expected monthly spending pace
	// before the user counts as ahead of pace.
	PaceTolerance float64

	// HighSpendFactor is the multiplier on the weekly daily average above
	// which a day counts as a high-spending day.
	HighSpendFactor float64
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		SmallExpenseThreshold: 100,
		ImpulseRatio:          0.4,
		SmallRatio:            0.5,
		FoodLeakShare:         0.4,
		SavingSurplus:         1000,
		NearLimitPercent:      80,
		StressAlertCount:      2,
		ImpulseAlertCount:     2,
		PaceTolerance:         1.1,
		HighSpendFactor:       1.5,
	}
}

// Engine derives summaries, insights, and window status from transaction
// snapshots. It is safe for concurrent use: it holds only configuration.
type Engine struct {
	cfg Config
}

// New creates an Engine, filling any zero-valued Config field with its default.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.SmallExpenseThreshold == 0 {
		cfg.SmallExpenseThreshold = def.SmallExpenseThreshold
	}
	if cfg.ImpulseRatio == 0 {
		cfg.ImpulseRatio = def.ImpulseRatio
	}
	if cfg.SmallRatio == 0 {
		cfg.SmallRatio = def.SmallRatio
	}
	if cfg.FoodLeakShare == 0 {
		cfg.FoodLeakShare = def.FoodLeakShare
	}
	if cfg.SavingSurplus == 0 {
		cfg.SavingSurplus = def.SavingSurplus
	}
	if cfg.NearLimitPercent == 0 {
		cfg.NearLimitPercent = def.NearLimitPercent
	}
	if cfg.StressAlertCount == 0 {
		cfg.StressAlertCount = def.StressAlertCount
	}
	if cfg.ImpulseAlertCount == 0 {
		cfg.ImpulseAlertCount = def.ImpulseAlertCount
	}
	if cfg.PaceTolerance == 0 {
		cfg.PaceTolerance = def.PaceTolerance
	}
	if cfg.HighSpendFactor == 0 {
		cfg.HighSpendFactor = def.HighSpendFactor
	}
	return &Engine{cfg: cfg}
}
