package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/pitabwire/frame/queue"
	"github.com/rs/xid"
)

const defaultOutboxSize = 1024

// ErrOutboxFull is returned by Emit when the queue hand-off buffer is full.
// Local subscribers have still received the event.
var ErrOutboxFull = errors.New("events: queue outbox full")

// QueuePublisher is the part of frame's queue.Manager the publisher needs.
type QueuePublisher interface {
	Publish(ctx context.Context, reference string, payload any, headers ...map[string]string) error
}

var _ QueuePublisher = queue.Manager(nil)

// Publisher emits typed events to local in-process subscribers and, through
// an outbox drained by Run, to the frame queue. Emit never waits on the
// queue, so it is safe to call while holding a session lock.
type Publisher struct {
	queue    QueuePublisher
	source   string
	queueRef string
	outbox   chan Envelope

	subMu       sync.RWMutex
	subscribers map[string]chan Envelope
}

// NewPublisher creates a publisher that emits events to the given queue
// reference. A nil queue keeps events in-process.
func NewPublisher(q QueuePublisher, source string, queueRef string) *Publisher {
	p := &Publisher{
		queue:       q,
		source:      source,
		queueRef:    queueRef,
		subscribers: make(map[string]chan Envelope),
	}
	if q != nil {
		p.outbox = make(chan Envelope, defaultOutboxSize)
	}
	return p
}

// Emit fans an event out to local subscribers and queues it for the event
// bus. Neither step blocks.
func (p *Publisher) Emit(ctx context.Context, eventType EventType, sessionID string, data any) error {
	envelope := Envelope{
		ID:        xid.New().String(),
		Type:      eventType,
		Source:    p.source,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	envelope.Data = raw

	p.subMu.RLock()
	for id, ch := range p.subscribers {
		select {
		case ch <- envelope:
		default:
			slog.Warn("event dropped: subscriber buffer full",
				slog.String("subscriber", id), slog.String("event_type", string(eventType)))
		}
	}
	p.subMu.RUnlock()

	if p.outbox == nil {
		return nil
	}
	select {
	case p.outbox <- envelope:
		return nil
	default:
		return ErrOutboxFull
	}
}

// Run publishes queued events in emit order until ctx is done. It returns
// immediately when the publisher has no queue.
func (p *Publisher) Run(ctx context.Context) {
	if p.outbox == nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-p.outbox:
			if err := p.queue.Publish(ctx, p.queueRef, env); err != nil {
				slog.WarnContext(ctx, "event publish failed",
					slog.String("event_id", env.ID),
					slog.String("event_type", string(env.Type)),
					slog.String("session_id", env.SessionID),
					slog.String("error", err.Error()))
			}
		}
	}
}

// Subscribe creates a local in-process subscription for events.
// Returns a channel that receives Envelope values.
// The caller must call Unsubscribe with the same id to clean up.
func (p *Publisher) Subscribe(id string, bufSize int) <-chan Envelope {
	if bufSize <= 0 {
		bufSize = 64
	}
	ch := make(chan Envelope, bufSize)
	p.subMu.Lock()
	p.subscribers[id] = ch
	p.subMu.Unlock()
	return ch
}

// Unsubscribe removes a local subscription and closes its channel.
func (p *Publisher) Unsubscribe(id string) {
	p.subMu.Lock()
	if ch, ok := p.subscribers[id]; ok {
		close(ch)
		delete(p.subscribers, id)
	}
	p.subMu.Unlock()
}

// SessionEmitter emits events on behalf of one session.
type SessionEmitter struct {
	p         *Publisher
	sessionID string
}

// ForSession returns an emitter that tags every event with sessionID.
func (p *Publisher) ForSession(sessionID string) SessionEmitter {
	return SessionEmitter{p: p, sessionID: sessionID}
}

// OnEvent emits an event. Failures are logged, not returned.
func (e SessionEmitter) OnEvent(ctx context.Context, eventType EventType, data any) {
	if err := e.p.Emit(ctx, eventType, e.sessionID, data); err != nil {
		slog.WarnContext(ctx, "event emit failed",
			slog.String("session_id", e.sessionID),
			slog.String("event_type", string(eventType)),
			slog.String("error", err.Error()))
	}
}
