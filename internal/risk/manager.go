// Package risk implements the portfolio risk monitor: a position book
// of per-position VaR contributions and a four-regime state machine
// that drives the trading engine through an ordered directive queue.
package risk

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/varguard/varguard/internal/alerts"
	"github.com/varguard/varguard/internal/engine"
)

// shutdownFactor scales the VaR limit to the hard-stop threshold.
const shutdownFactor = 1.2

var errThresholds = errors.New("risk: warning level must satisfy 0 < warning < limit")

// Manager owns the position book, the aggregate VaR and the active
// regime, and emits one directive per mutation onto the directive
// queue. It is not safe for concurrent use; wrap it in a
// LockedManager when multiple goroutines mutate one portfolio.
type Manager struct {
	varLimit     float64
	warningLevel float64
	currentVaR   float64

	book   *Book
	regime Regime
	sink   alerts.Sink
	queue  *engine.Queue
	rec    Recorder
}

// Snapshot is a read-only view of the manager for status reporting.
type Snapshot struct {
	CurrentVaR float64 `json:"current_var"`
	Regime     string  `json:"regime"`
	Positions  int     `json:"positions"`
}

// NewManager builds a manager in the Normal regime with zero VaR.
// Threshold ordering is validated up front: an inverted or
// non-positive configuration fails construction instead of silently
// clamping.
func NewManager(varLimit, warningLevel float64, sink alerts.Sink, queue *engine.Queue) (*Manager, error) {
	return NewManagerWithRecorder(varLimit, warningLevel, sink, queue, nil)
}

// NewManagerWithRecorder is NewManager with metrics instrumentation.
func NewManagerWithRecorder(varLimit, warningLevel float64, sink alerts.Sink, queue *engine.Queue, rec Recorder) (*Manager, error) {
	if warningLevel <= 0 || varLimit <= 0 || warningLevel >= varLimit {
		return nil, fmt.Errorf("%w: warning=%v limit=%v", errThresholds, warningLevel, varLimit)
	}
	if queue == nil {
		return nil, errors.New("risk: directive queue is required")
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	m := &Manager{
		varLimit:     varLimit,
		warningLevel: warningLevel,
		book:         NewBook(),
		regime:       Normal,
		sink:         sink,
		queue:        queue,
		rec:          rec,
	}
	m.rec.RecordRegime(m.regime.String())
	return m, nil
}

// AddPosition upserts the VaR contribution for id, then recomputes the
// aggregate, evaluates at most one regime transition and emits the
// directive of the resulting regime.
func (m *Manager) AddPosition(id string, contribution float64) {
	m.book.Upsert(id, contribution)
	m.UpdateVaR()
	m.CheckState()
	m.SendCommand()
}

// RemovePosition removes id if present. An absent id is a no-op on the
// book, but the regime is still re-evaluated and the active directive
// re-sent, same as any other mutation.
func (m *Manager) RemovePosition(id string) {
	m.book.Remove(id)
	m.UpdateVaR()
	m.CheckState()
	m.SendCommand()
}

// UpdateVaR recomputes the aggregate VaR from the book.
func (m *Manager) UpdateVaR() {
	m.currentVaR = m.book.Total()
	m.rec.RecordVaR(m.currentVaR)
}

// CheckState evaluates the active regime's transition predicate and
// performs the transition if one is due. Exit and enter hooks are
// strictly ordered around the swap.
func (m *Manager) CheckState() {
	if to, ok := m.next(); ok {
		m.transition(to)
	}
}

// SendCommand emits exactly one directive for the currently active
// regime. Warning re-emits ExecuteTrade unconditionally.
func (m *Manager) SendCommand() {
	m.emit(m.regime.Directive())
}

// emit pushes a directive onto the queue. A closed queue is non-fatal:
// directives after engine shutdown are moot, so the failure is logged
// and swallowed.
func (m *Manager) emit(d engine.Directive) {
	if err := m.queue.Send(d); err != nil {
		log.Warn().Err(err).Str("directive", d.String()).Msg("directive dropped")
		return
	}
	m.rec.RecordDirective(d.String())
}

// ShouldShutdown reports whether VaR has reached the hard-stop
// threshold of 1.2x the limit. Only the Breach regime consults it.
func (m *Manager) ShouldShutdown() bool {
	return m.currentVaR >= m.varLimit*shutdownFactor
}

// CurrentVaR returns the aggregate VaR as of the last mutation.
func (m *Manager) CurrentVaR() float64 {
	return m.currentVaR
}

// Regime returns the active risk regime.
func (m *Manager) Regime() Regime {
	return m.regime
}

// VarLimit returns the configured VaR limit.
func (m *Manager) VarLimit() float64 {
	return m.varLimit
}

// WarningLevel returns the configured warning threshold.
func (m *Manager) WarningLevel() float64 {
	return m.warningLevel
}

// Snapshot returns a status view of the manager.
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{
		CurrentVaR: m.currentVaR,
		Regime:     m.regime.String(),
		Positions:  m.book.Len(),
	}
}
