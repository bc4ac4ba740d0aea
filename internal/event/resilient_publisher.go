package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/logger"
)

// Publisher is the publishing side of a Bus
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

type retryItem struct {
	event    Event
	attempt  int
	lastErr  error
	notEarly time.Time
}

// ResilientPublisher publishes through a Bus and retries failed events in
// the background with exponential backoff. Events that exhaust their retries
// are appended to a dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter
	onFailure  func(Type)

	queue    chan retryItem
	done     chan struct{}
	wg       sync.WaitGroup
	shutdown sync.Once
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		done:       make(chan struct{}),
	}
	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// SetFailureHook registers fn to run on every failed publish attempt. It must
// be called before the first publish.
func (p *ResilientPublisher) SetFailureHook(fn func(Type)) {
	p.onFailure = fn
}

func (p *ResilientPublisher) recordFailure(t Type) {
	if p.onFailure != nil {
		p.onFailure(t)
	}
}

// PublishWithRetry publishes synchronously once. A failure is queued for
// retry and never reported to the caller.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	p.recordFailure(event.Type)
	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(retryItem{event: event, attempt: 1, lastErr: err, notEarly: time.Now().Add(CalculateRetryDelay(p.baseDelay, 1))})
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case <-p.done:
		p.writeDeadLetter(item, LogMsgEventDroppedShutdown)
		return
	default:
	}

	select {
	case p.queue <- item:
	default:
		p.writeDeadLetter(item, LogMsgRetryQueueFull)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			return
		case item := <-p.queue:
			if wait := time.Until(item.notEarly); wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-timer.C:
				case <-p.done:
					timer.Stop()
					p.writeDeadLetter(item, LogMsgEventDroppedShutdown)
					return
				}
			}
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	log := logger.FromContext(context.Background())

	err := p.bus.Publish(context.Background(), item.event)
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
		return
	}

	item.lastErr = err
	p.recordFailure(item.event.Type)
	if item.attempt >= p.maxRetries {
		p.writeDeadLetter(item, LogMsgEventRetryExhausted)
		return
	}

	item.attempt++
	item.notEarly = time.Now().Add(CalculateRetryDelay(p.baseDelay, item.attempt))
	log.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)

	// requeue from the worker goroutine without blocking on a full queue
	select {
	case p.queue <- item:
	default:
		p.writeDeadLetter(item, LogMsgRetryQueueFull)
	}
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem, reason string) {
	log := logger.FromContext(context.Background())
	log.Warn(reason, "event_type", item.event.Type, "attempts", item.attempt)

	if err := p.deadLetter.Write(item.event, item.attempt, item.lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFailed, "event_type", item.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker and dead-letters whatever is still queued
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	var err error
	p.shutdown.Do(func() {
		close(p.done)

		stopped := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(stopped)
		}()

		select {
		case <-stopped:
		case <-ctx.Done():
			logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
			err = ctx.Err()
			return
		}

		drained := 0
	drain:
		for {
			select {
			case item := <-p.queue:
				if item.lastErr == nil {
					item.lastErr = errors.New(LogMsgEventDroppedShutdown)
				}
				p.writeDeadLetter(item, LogMsgEventDroppedShutdown)
				drained++
			default:
				break drain
			}
		}
		if drained > 0 {
			logger.FromContext(ctx).Info(LogMsgQueueDrainedShutdown, "count", drained)
		}
		err = p.deadLetter.Close()
	})
	return err
}
