// Package engine holds the trading engine worker and the ordered
// directive queue that connects it to the risk manager.
package engine

// Directive is a command sent to the trading engine worker.
type Directive int

const (
	ExecuteTrade Directive = iota
	NoTrade
	StopEngine
)

func (d Directive) String() string {
	switch d {
	case ExecuteTrade:
		return "execute_trade"
	case NoTrade:
		return "no_trade"
	case StopEngine:
		return "stop_engine"
	default:
		return "unknown"
	}
}
