package risk

import (
	"github.com/rs/zerolog/log"

	"github.com/varguard/varguard/internal/engine"
)

// Alert text dispatched on regime entry.
const (
	warningAlert  = "Warning level reached. Increased monitoring and trading limitations are in effect."
	breachAlert   = "VaR limit breach! New trades are blocked. Positions may be closed."
	shutdownAlert = "Shutdown initiated due to extreme risk levels."
)

// next evaluates the transition predicate of the CURRENT regime
// against the current aggregate VaR and returns the regime to move
// to. At most one hop is taken per call: a VaR jump spanning several
// bands advances one regime now and the rest on subsequent
// evaluations. Regime bands are half-open on the lower bound:
// [0, warning) normal, [warning, limit) warning, [limit, ∞) breach or
// worse.
func (m *Manager) next() (Regime, bool) {
	v := m.currentVaR
	switch m.regime {
	case Normal:
		if v >= m.warningLevel && v < m.varLimit {
			return Warning, true
		}
		if v >= m.varLimit {
			return Breach, true
		}
	case Warning:
		if v < m.warningLevel {
			return Normal, true
		}
		if v >= m.varLimit {
			return Breach, true
		}
	case Breach:
		if v >= m.warningLevel && v < m.varLimit {
			return Warning, true
		}
		if v < m.warningLevel {
			return Normal, true
		}
		if m.ShouldShutdown() {
			return Shutdown, true
		}
	case Shutdown:
		// Terminal. No outgoing transitions.
	}
	return m.regime, false
}

// transition swaps the active regime. The exit hook of the old regime
// runs before the swap, the enter hook of the new one after.
func (m *Manager) transition(to Regime) {
	from := m.regime
	m.exitRegime(from)
	m.regime = to
	m.enterRegime(to)
	m.rec.RecordTransition(from.String(), to.String())
	m.rec.RecordRegime(to.String())
}

func (m *Manager) exitRegime(r Regime) {
	log.Info().Str("regime", r.String()).Float64("var", m.currentVaR).Msg("exiting risk regime")
}

// enterRegime runs entry side effects. Warning, Breach and Shutdown
// dispatch an alert; Shutdown additionally emits its stop directive
// immediately rather than waiting for the per-mutation send, so the
// engine halts even if no further mutation ever happens.
func (m *Manager) enterRegime(r Regime) {
	log.Info().Str("regime", r.String()).Float64("var", m.currentVaR).Msg("entering risk regime")
	switch r {
	case Warning:
		m.notify(warningAlert)
	case Breach:
		m.notify(breachAlert)
	case Shutdown:
		m.notify(shutdownAlert)
		m.emit(engine.StopEngine)
	}
}

// notify dispatches an alert. Delivery failure or throttling is the
// sink's concern; dispatch never blocks or fails the transition.
func (m *Manager) notify(message string) {
	if m.sink != nil {
		m.sink.Notify(message)
	}
	m.rec.RecordAlert()
}
