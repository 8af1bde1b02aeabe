package mailer

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

const sendTimeout = 30 * time.Second

// Dispatcher is a background mail worker. Messages are enqueued onto a
// bounded buffer and sent one at a time, throttled by a rate limiter so a
// burst of logins cannot flood the relay. Enqueue never blocks a request
// path: when the buffer is full the message is dropped and logged.
type Dispatcher struct {
	Sender Sender
	Logger *slog.Logger

	queue   chan Message
	limiter *rate.Limiter

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewDispatcher creates a dispatcher with the given buffer size and send
// rate (messages per second). Non-positive values fall back to defaults.
func NewDispatcher(sender Sender, logger *slog.Logger, queueSize int, sendRate float64) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	if sendRate <= 0 {
		sendRate = 1
	}

	return &Dispatcher{
		Sender:  sender,
		Logger:  logger,
		queue:   make(chan Message, queueSize),
		limiter: rate.NewLimiter(rate.Limit(sendRate), 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop() to shut it down.
func (d *Dispatcher) Start() {
	go d.run()
	d.Logger.Info("mail dispatcher started", "queue_size", cap(d.queue))
}

// Stop shuts down the worker. Blocks until any in-flight send finishes.
// Messages still sitting in the queue are discarded.
func (d *Dispatcher) Stop() {
	close(d.stopCh)
	<-d.doneCh
	d.Logger.Info("mail dispatcher stopped")
}

// Enqueue hands a message to the worker. Returns false when the queue is
// full and the message was dropped.
func (d *Dispatcher) Enqueue(m Message) bool {
	select {
	case d.queue <- m:
		return true
	default:
		d.Logger.Warn("mail queue full, dropping message",
			slog.String("to", m.To),
			slog.String("subject", m.Subject),
		)
		return false
	}
}

func (d *Dispatcher) run() {
	defer close(d.doneCh)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-d.stopCh
		cancel()
	}()

	for {
		select {
		case <-d.stopCh:
			return
		case m := <-d.queue:
			if err := d.limiter.Wait(ctx); err != nil {
				return
			}
			d.send(ctx, m)
		}
	}
}

func (d *Dispatcher) send(ctx context.Context, m Message) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	// Failures are logged, not retried. A user who never receives a
	// passcode simply requests another one.
	if err := d.Sender.Send(sendCtx, m); err != nil {
		d.Logger.Error("failed to send mail",
			slog.Any("error", err),
			slog.String("to", m.To),
		)
	}
}
