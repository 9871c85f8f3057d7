package risk

import "github.com/varguard/varguard/internal/engine"

// Regime classifies aggregate portfolio risk into one of four
// mutually exclusive operating modes. Exactly one regime is active per
// manager at any instant.
type Regime int

const (
	Normal Regime = iota
	Warning
	Breach
	Shutdown
)

func (r Regime) String() string {
	switch r {
	case Normal:
		return "normal"
	case Warning:
		return "warning"
	case Breach:
		return "breach"
	case Shutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Regimes lists all regimes in escalation order, for metrics labeling.
func Regimes() []Regime {
	return []Regime{Normal, Warning, Breach, Shutdown}
}

// Directive returns the trading directive armed while this regime is
// active. Normal and Warning permit trading, Breach blocks new trades,
// Shutdown stops the engine.
func (r Regime) Directive() engine.Directive {
	switch r {
	case Breach:
		return engine.NoTrade
	case Shutdown:
		return engine.StopEngine
	default:
		return engine.ExecuteTrade
	}
}
