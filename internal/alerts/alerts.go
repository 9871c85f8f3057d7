// Package alerts provides the notification sink used on risk regime
// escalation. Dispatch is fire-and-forget: a sink must never block or
// fail the state transition that triggered it.
package alerts

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Sink receives one-way notifications on regime escalation.
type Sink interface {
	Notify(message string)
}

// LogSink writes alerts to the structured log.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) Notify(message string) {
	log.Warn().Str("channel", "risk_alert").Msg(message)
}

// ThrottledSink rate-limits an underlying sink. Over-rate alerts are
// dropped rather than queued so dispatch can never block a transition.
type ThrottledSink struct {
	next    Sink
	limiter *rate.Limiter
	dropped atomic.Int64
}

// NewThrottledSink wraps next with a sustained perMinute rate and a
// burst of the same size.
func NewThrottledSink(next Sink, perMinute int) *ThrottledSink {
	return &ThrottledSink{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
	}
}

func (s *ThrottledSink) Notify(message string) {
	if !s.limiter.Allow() {
		s.dropped.Add(1)
		log.Debug().Str("channel", "risk_alert").Msg("alert dropped: rate limit")
		return
	}
	s.next.Notify(message)
}

// Dropped reports how many alerts were discarded by the limiter.
func (s *ThrottledSink) Dropped() int64 {
	return s.dropped.Load()
}

// CaptureSink records messages for assertions in tests.
type CaptureSink struct {
	mu       sync.Mutex
	messages []string
}

func NewCaptureSink() *CaptureSink {
	return &CaptureSink{}
}

func (s *CaptureSink) Notify(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

// Messages returns a copy of everything captured so far.
func (s *CaptureSink) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}
