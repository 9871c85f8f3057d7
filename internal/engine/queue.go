package engine

import (
	"errors"
	"sync"
)

// ErrQueueClosed is returned by Send after the queue has been closed.
// Callers treat it as non-fatal: directives sent after engine shutdown
// have nowhere to go.
var ErrQueueClosed = errors.New("engine: directive queue closed")

// Queue is an unbounded FIFO directive queue with a single consumer.
// Send never blocks. Receive blocks until a directive is available or
// the queue is closed and drained.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	buf    []Directive
	closed bool
}

func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Send enqueues a directive. It never blocks; once the queue is closed
// it returns ErrQueueClosed.
func (q *Queue) Send(d Directive) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.buf = append(q.buf, d)
	q.cond.Signal()
	return nil
}

// Receive blocks until a directive is available and returns it. The
// second return value is false when the queue has been closed and all
// buffered directives have been drained.
func (q *Queue) Receive() (Directive, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.buf) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.buf) == 0 {
		return 0, false
	}
	d := q.buf[0]
	q.buf = q.buf[1:]
	return d, true
}

// Close marks the queue closed and wakes any blocked receiver.
// Buffered directives remain receivable until drained. Closing twice
// is a no-op.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

// Len reports the number of buffered directives.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

// Closed reports whether the queue has been closed.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
