package engine

import (
	"errors"
	"testing"
	"time"
)

func TestQueue_FIFOOrder(t *testing.T) {
	q := NewQueue()
	sent := []Directive{ExecuteTrade, NoTrade, ExecuteTrade, StopEngine}
	for _, d := range sent {
		if err := q.Send(d); err != nil {
			t.Fatalf("Send(%s): %v", d, err)
		}
	}

	for i, want := range sent {
		got, ok := q.Receive()
		if !ok {
			t.Fatalf("Receive %d: queue reported closed", i)
		}
		if got != want {
			t.Errorf("Receive %d = %s, want %s", i, got, want)
		}
	}
}

func TestQueue_SendAfterCloseFails(t *testing.T) {
	q := NewQueue()
	q.Close()

	err := q.Send(ExecuteTrade)
	if !errors.Is(err, ErrQueueClosed) {
		t.Errorf("Send after close = %v, want ErrQueueClosed", err)
	}
}

func TestQueue_CloseDrainsBufferFirst(t *testing.T) {
	q := NewQueue()
	q.Send(ExecuteTrade)
	q.Send(NoTrade)
	q.Close()

	if d, ok := q.Receive(); !ok || d != ExecuteTrade {
		t.Fatalf("first receive = (%v, %v), want (ExecuteTrade, true)", d, ok)
	}
	if d, ok := q.Receive(); !ok || d != NoTrade {
		t.Fatalf("second receive = (%v, %v), want (NoTrade, true)", d, ok)
	}
	if _, ok := q.Receive(); ok {
		t.Error("drained closed queue should report closed")
	}
}

func TestQueue_ReceiveBlocksUntilSend(t *testing.T) {
	q := NewQueue()
	got := make(chan Directive, 1)

	go func() {
		d, ok := q.Receive()
		if ok {
			got <- d
		}
	}()

	// Give the receiver a moment to block.
	time.Sleep(20 * time.Millisecond)
	if err := q.Send(NoTrade); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case d := <-got:
		if d != NoTrade {
			t.Errorf("received %s, want NoTrade", d)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("receiver never woke up")
	}
}

func TestQueue_CloseWakesBlockedReceiver(t *testing.T) {
	q := NewQueue()
	done := make(chan bool, 1)

	go func() {
		_, ok := q.Receive()
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	q.Close()

	select {
	case ok := <-done:
		if ok {
			t.Error("receiver on closed empty queue should report closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("close did not wake the receiver")
	}
}

func TestQueue_CloseTwiceIsNoop(t *testing.T) {
	q := NewQueue()
	q.Close()
	q.Close()
	if !q.Closed() {
		t.Error("queue should report closed")
	}
}
