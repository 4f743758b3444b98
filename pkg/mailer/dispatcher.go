package mailer

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Dispatcher wraps a Sender with an optional fire-and-forget path.
// Dispatch delivers synchronously; Enqueue hands the message to a
// background worker and returns immediately. Delivery failures on the
// background path are observable only via logs.
type Dispatcher struct {
	sender Sender
	log    *slog.Logger

	queue     chan *Message
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// sendTimeout bounds a single background delivery attempt
const sendTimeout = 30 * time.Second

// NewDispatcher creates a dispatcher and starts its background worker
func NewDispatcher(sender Sender, queueSize int, log *slog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		sender: sender,
		log:    log,
		queue:  make(chan *Message, queueSize),
	}

	d.wg.Add(1)
	go d.worker()

	return d
}

// Dispatch delivers the message synchronously; the caller decides how
// to surface a failure.
func (d *Dispatcher) Dispatch(ctx context.Context, msg *Message) error {
	return d.sender.Send(ctx, msg)
}

// Enqueue hands the message to the background worker. A full queue
// drops the message with a log line rather than blocking the request.
func (d *Dispatcher) Enqueue(msg *Message) {
	select {
	case d.queue <- msg:
	default:
		d.log.Error("mail queue full, dropping notification", "subject", msg.Subject)
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := d.sender.Send(ctx, msg); err != nil {
			// Fire-and-forget contract: the response is already gone,
			// so the failure is only recorded.
			d.log.Error("background mail delivery failed", "subject", msg.Subject, "error", err)
		} else {
			d.log.Info("background mail delivered", "subject", msg.Subject)
		}
		cancel()
	}
}

// Close drains the queue and stops the worker. Safe to call more than once.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}
