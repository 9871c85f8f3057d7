package risk

import (
	"testing"

	"github.com/varguard/varguard/internal/engine"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(100, 80, nil, engine.NewQueue())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestNext_TransitionTable(t *testing.T) {
	cases := []struct {
		name string
		from Regime
		v    float64
		want Regime
		move bool
	}{
		{"normal stays below warning", Normal, 79.99, Normal, false},
		{"normal to warning at boundary", Normal, 80, Warning, true},
		{"normal to warning mid band", Normal, 90, Warning, true},
		{"normal to breach at limit", Normal, 100, Breach, true},
		{"normal skips warning on big jump", Normal, 150, Breach, true},

		{"warning back to normal", Warning, 79.99, Normal, true},
		{"warning stays in band", Warning, 95, Warning, false},
		{"warning to breach", Warning, 100, Breach, true},

		{"breach de-escalates to warning", Breach, 90, Warning, true},
		{"breach de-escalates to normal", Breach, 50, Normal, true},
		{"breach holds below shutdown threshold", Breach, 119.99, Breach, false},
		{"breach escalates to shutdown", Breach, 120, Shutdown, true},
		{"breach escalates well past threshold", Breach, 140, Shutdown, true},

		{"shutdown is terminal at zero var", Shutdown, 0, Shutdown, false},
		{"shutdown is terminal at high var", Shutdown, 500, Shutdown, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := testManager(t)
			m.regime = tc.from
			m.currentVaR = tc.v

			got, moved := m.next()
			if moved != tc.move {
				t.Fatalf("next() moved = %v, want %v", moved, tc.move)
			}
			if moved && got != tc.want {
				t.Errorf("next() = %s, want %s", got, tc.want)
			}
		})
	}
}

// A jump spanning several regime bands advances exactly one hop per
// evaluation: Warning with VaR past the shutdown threshold lands in
// Breach first, and reaches Shutdown only on the following check.
func TestCheckState_OneHopNoCascade(t *testing.T) {
	m := testManager(t)
	m.regime = Warning
	m.currentVaR = 140 // past 1.2x limit

	m.CheckState()
	if m.regime != Breach {
		t.Fatalf("first check should land in breach, got %s", m.regime)
	}

	m.CheckState()
	if m.regime != Shutdown {
		t.Fatalf("second check should escalate to shutdown, got %s", m.regime)
	}
}

func TestShouldShutdown(t *testing.T) {
	m := testManager(t)

	m.currentVaR = 119.999
	if m.ShouldShutdown() {
		t.Error("below 1.2x limit should not shut down")
	}
	m.currentVaR = 120
	if !m.ShouldShutdown() {
		t.Error("at 1.2x limit should shut down")
	}
}

func TestRegime_Directive(t *testing.T) {
	cases := []struct {
		regime Regime
		want   engine.Directive
	}{
		{Normal, engine.ExecuteTrade},
		{Warning, engine.ExecuteTrade},
		{Breach, engine.NoTrade},
		{Shutdown, engine.StopEngine},
	}
	for _, tc := range cases {
		if got := tc.regime.Directive(); got != tc.want {
			t.Errorf("%s.Directive() = %s, want %s", tc.regime, got, tc.want)
		}
	}
}
