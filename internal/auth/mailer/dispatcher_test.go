package mailer

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []Message
	done chan struct{}
}

func newFakeSender(expect int) *fakeSender {
	return &fakeSender{done: make(chan struct{}, expect)}
}

func (f *fakeSender) Send(_ context.Context, m Message) error {
	f.mu.Lock()
	f.sent = append(f.sent, m)
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

func (f *fakeSender) messages() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Message(nil), f.sent...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcherDeliversEnqueuedMessages(t *testing.T) {
	sender := newFakeSender(1)
	d := NewDispatcher(sender, discardLogger(), 8, 100)
	d.Start()
	defer d.Stop()

	ok := d.Enqueue(Message{To: "a@x.com", Subject: "Authorization", Body: "code"})
	require.True(t, ok)

	select {
	case <-sender.done:
	case <-time.After(5 * time.Second):
		t.Fatal("message was not delivered")
	}

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	require.Equal(t, "a@x.com", msgs[0].To)
	require.Equal(t, "Authorization", msgs[0].Subject)
}

func TestEnqueueDropsWhenQueueFullWithoutBlocking(t *testing.T) {
	// Worker never started: the buffer fills and stays full.
	d := NewDispatcher(newFakeSender(0), discardLogger(), 2, 1)

	require.True(t, d.Enqueue(Message{To: "1@x.com"}))
	require.True(t, d.Enqueue(Message{To: "2@x.com"}))

	done := make(chan bool, 1)
	go func() { done <- d.Enqueue(Message{To: "3@x.com"}) }()

	select {
	case accepted := <-done:
		require.False(t, accepted, "full queue must drop, not accept")
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}

func TestStopWaitsForWorker(t *testing.T) {
	d := NewDispatcher(newFakeSender(0), discardLogger(), 2, 1)
	d.Start()

	finished := make(chan struct{})
	go func() {
		d.Stop()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}
