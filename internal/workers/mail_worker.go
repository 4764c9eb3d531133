package workers

import (
	"context"
	"time"

	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/mailer"
)

const defaultMailQueueSize = 64

// sendTimeout bounds one SMTP delivery attempt.
const sendTimeout = 30 * time.Second

// MailWorker delivers queued notifications in the background. Producers
// enqueue after their own work has committed; delivery failures are logged
// and never surfaced to the request that caused them.
type MailWorker struct {
	logger     *logger.Logger
	dispatcher mailer.Dispatcher
	queue      chan mailer.Notification
	done       chan struct{}
}

// NewMailWorker creates a worker with a bounded in-memory queue.
func NewMailWorker(dispatcher mailer.Dispatcher, queueSize int, log *logger.Logger) *MailWorker {
	if queueSize <= 0 {
		queueSize = defaultMailQueueSize
	}

	return &MailWorker{
		logger:     log,
		dispatcher: dispatcher,
		queue:      make(chan mailer.Notification, queueSize),
		done:       make(chan struct{}),
	}
}

// Enqueue hands a notification to the worker without blocking. It reports
// false when the queue is full; the notification is then dropped.
func (w *MailWorker) Enqueue(notification mailer.Notification) bool {
	select {
	case w.queue <- notification:
		return true
	default:
		w.logger.Warn().
			Str("to", notification.To).
			Str("subject", notification.Subject).
			Msg("mail queue full, notification dropped")
		return false
	}
}

// Run starts the delivery loop in its own goroutine.
func (w *MailWorker) Run() {
	go w.loop()
}

func (w *MailWorker) loop() {
	defer close(w.done)

	for notification := range w.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := w.dispatcher.Send(ctx, notification)
		cancel()

		if err != nil {
			w.logger.Error().Err(err).
				Str("to", notification.To).
				Str("subject", notification.Subject).
				Msg("mail delivery failed")
			continue
		}

		w.logger.Info().
			Str("to", notification.To).
			Str("subject", notification.Subject).
			Msg("mail delivered")
	}
}

// Shutdown stops accepting work and waits for the queue to drain, up to the
// context deadline.
func (w *MailWorker) Shutdown(ctx context.Context) error {
	close(w.queue)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ Worker = (*MailWorker)(nil)
