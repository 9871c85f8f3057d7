package risk

// Recorder receives observability callbacks from the manager. The
// metrics package provides the production implementation; a nil
// recorder is replaced with a no-op so instrumentation is optional.
type Recorder interface {
	RecordVaR(value float64)
	RecordRegime(regime string)
	RecordTransition(from, to string)
	RecordDirective(directive string)
	RecordAlert()
}

type nopRecorder struct{}

func (nopRecorder) RecordVaR(float64)            {}
func (nopRecorder) RecordRegime(string)          {}
func (nopRecorder) RecordTransition(_, _ string) {}
func (nopRecorder) RecordDirective(string)       {}
func (nopRecorder) RecordAlert()                 {}
