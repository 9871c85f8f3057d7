package engine

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// Worker consumes directives from a queue strictly in arrival order,
// one at a time. It carries no state machine of its own: it acts on
// each directive and terminates when told to stop. After termination
// it closes the queue so that late senders get ErrQueueClosed instead
// of filling a buffer nobody will drain.
type Worker struct {
	queue *Queue
	done  chan struct{}

	trades  atomic.Int64
	skipped atomic.Int64
}

func NewWorker(queue *Queue) *Worker {
	return &Worker{
		queue: queue,
		done:  make(chan struct{}),
	}
}

// Start launches the consumer goroutine. It must be called at most
// once. The manager may begin emitting before Start; the queue
// buffers.
func (w *Worker) Start() {
	go w.run()
}

func (w *Worker) run() {
	defer close(w.done)
	log.Info().Msg("trading engine started")

	for {
		d, ok := w.queue.Receive()
		if !ok {
			log.Info().Msg("trading engine stopped: queue closed")
			return
		}

		switch d {
		case ExecuteTrade:
			w.trades.Add(1)
			log.Info().Str("directive", d.String()).Msg("executing trade")
		case NoTrade:
			w.skipped.Add(1)
			log.Info().Str("directive", d.String()).Msg("no trade to execute")
		case StopEngine:
			log.Info().Str("directive", d.String()).Msg("stopping trading engine")
			w.queue.Close()
			return
		default:
			log.Warn().Int("directive", int(d)).Msg("unknown directive dropped")
		}
	}
}

// Done is closed when the worker has terminated.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// TradesExecuted reports how many ExecuteTrade directives were acted on.
func (w *Worker) TradesExecuted() int64 {
	return w.trades.Load()
}

// TradesSkipped reports how many NoTrade directives were observed.
func (w *Worker) TradesSkipped() int64 {
	return w.skipped.Load()
}
