// Package notify fans event notifications out to device tokens. Delivery is
// best-effort: jobs are queued after the triggering write has committed,
// retried with jittered exponential backoff on a background context and
// dropped with a log line once attempts are exhausted.
package notify

import (
	"chapterEvents/internal/lib/logger/sl"
	"chapterEvents/internal/lib/metrics"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"
)

// maxBatch is the largest token list handed to the transport in one call.
const maxBatch = 500

var ErrClosed = errors.New("dispatcher is closed")

type Options struct {
	Workers     int
	QueueSize   int
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Timeout     time.Duration
}

type job struct {
	kind string
	run  func(ctx context.Context) error
}

type Dispatcher struct {
	log       *slog.Logger
	transport Transport
	metrics   *metrics.Metrics
	opts      Options

	queue  chan job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(log *slog.Logger, transport Transport, m *metrics.Metrics, opts Options) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}
	if opts.MaxDelay < opts.BaseDelay {
		opts.MaxDelay = opts.BaseDelay
	}

	ctx, cancel := context.WithCancel(context.Background())

	d := &Dispatcher{
		log:       log.With(slog.String("component", "notify/dispatcher")),
		transport: transport,
		metrics:   m,
		opts:      opts,
		queue:     make(chan job, opts.QueueSize),
		ctx:       ctx,
		cancel:    cancel,
	}

	for range opts.Workers {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// EventCreated announces a new event to every token.
func (d *Dispatcher) EventCreated(tokens []string, msg Message) {
	tokens = compactTokens(tokens)

	for batch := range slices.Chunk(tokens, maxBatch) {
		d.enqueue(job{
			kind: "push",
			run: func(ctx context.Context) error {
				return d.transport.Push(ctx, batch, msg)
			},
		})
	}
}

// SubscribeToEvent enrolls a registrant's device in the event topic so later
// event updates reach them.
func (d *Dispatcher) SubscribeToEvent(token, eventID string) {
	if token == "" {
		return
	}

	topic := TopicForEvent(eventID)
	d.enqueue(job{
		kind: "subscribe",
		run: func(ctx context.Context) error {
			return d.transport.SubscribeToTopic(ctx, token, topic)
		},
	})
}

func TopicForEvent(eventID string) string {
	return "event_" + eventID
}

func (d *Dispatcher) enqueue(j job) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("notification dropped", slog.String("kind", j.kind), sl.Err(ErrClosed))
		d.metrics.Notification(j.kind, "dropped")
		return
	}

	select {
	case d.queue <- j:
	default:
		d.log.Warn("notification queue full, dropping", slog.String("kind", j.kind))
		d.metrics.Notification(j.kind, "dropped")
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for j := range d.queue {
		d.deliver(j)
	}
}

func (d *Dispatcher) deliver(j job) {
	delay := d.opts.BaseDelay

	for attempt := 1; ; attempt++ {
		ctx, cancel := context.WithTimeout(d.ctx, d.timeout())
		err := j.run(ctx)
		cancel()

		if err == nil {
			d.metrics.Notification(j.kind, "ok")
			return
		}

		log := d.log.With(slog.String("kind", j.kind), slog.Int("attempt", attempt), sl.Err(err))

		if attempt >= d.opts.MaxAttempts {
			log.Error("notification failed, giving up")
			d.metrics.Notification(j.kind, "failed")
			return
		}

		wait := jitter(delay)
		log.Warn("notification failed, retrying", slog.Duration("backoff", wait))

		select {
		case <-time.After(wait):
		case <-d.ctx.Done():
			d.metrics.Notification(j.kind, "failed")
			return
		}

		delay = min(delay*2, d.opts.MaxDelay)
	}
}

// jitter picks a wait in [d/2, d].
func jitter(d time.Duration) time.Duration {
	if d <= 1 {
		return d
	}
	half := d / 2
	return half + rand.N(d-half+1)
}

func (d *Dispatcher) timeout() time.Duration {
	if d.opts.Timeout <= 0 {
		return 10 * time.Second
	}
	return d.opts.Timeout
}

// Close stops accepting jobs and waits for queued ones to finish or for ctx
// to expire, whichever comes first. Pending retries are abandoned on expiry.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}

func compactTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))

	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}
