package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/pitabwire/frame/workerpool"
	"github.com/rs/xid"

	readingv1 "github.com/voicetyped/recite/gen/recite/reading/v1"
	"github.com/voicetyped/recite/gen/recite/reading/v1/readingv1connect"
	"github.com/voicetyped/recite/pkg/corpus"
	"github.com/voicetyped/recite/pkg/events"
	"github.com/voicetyped/recite/pkg/reading"
)

const (
	reaperInterval = 1 * time.Minute
	watchBuffer    = 256
)

var errStreamAttached = errors.New("a frame stream is already attached")

// Ensure we implement the interface.
var _ readingv1connect.ReadingServiceHandler = (*ReadingHandler)(nil)

// CorpusSource supplies the corpus new sessions are bound to.
type CorpusSource interface {
	Current() *corpus.Corpus
	Path() string
}

// streamCapture is the capture of a session whose frames arrive over an
// IngestFrames stream. Open succeeds only while a stream with granted
// permission is attached.
type streamCapture struct {
	mu       sync.Mutex
	attached bool
	denied   bool
}

func (c *streamCapture) attach(denied bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.attached {
		return errStreamAttached
	}
	c.attached = true
	c.denied = denied
	return nil
}

func (c *streamCapture) detach() {
	c.mu.Lock()
	c.attached = false
	c.denied = false
	c.mu.Unlock()
}

func (c *streamCapture) Open(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case !c.attached:
		return fmt.Errorf("%w: no frame stream attached", reading.ErrCaptureUnavailable)
	case c.denied:
		return reading.ErrCaptureDenied
	}
	return nil
}

func (c *streamCapture) Close() error { return nil }

type activeSession struct {
	id      string
	matcher *reading.Matcher
	capture *streamCapture
	ctx     context.Context
	cancel  context.CancelFunc

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *activeSession) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *activeSession) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionStore holds active reading sessions.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*activeSession
}

// ReadingHandler implements readingv1connect.ReadingServiceHandler.
type ReadingHandler struct {
	corpus    CorpusSource
	publisher *events.Publisher
	opts      reading.Options
	ttl       time.Duration
	pool      workerpool.WorkerPool
	store     SessionStore
	clock     func() time.Time
}

// NewReadingHandler creates a reading service handler. opts is the template
// for every session's matcher; its session id and listener are set per session.
func NewReadingHandler(src CorpusSource, pub *events.Publisher, opts reading.Options, ttl time.Duration, pool workerpool.WorkerPool) *ReadingHandler {
	return &ReadingHandler{
		corpus:    src,
		publisher: pub,
		opts:      opts,
		ttl:       ttl,
		pool:      pool,
		clock:     time.Now,
		store: SessionStore{
			sessions: make(map[string]*activeSession),
		},
	}
}

// StartReaper begins the background idle-session reaper.
func (h *ReadingHandler) StartReaper(ctx context.Context) {
	if h.ttl <= 0 {
		return
	}
	reap := func() {
		ticker := time.NewTicker(reaperInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.reapIdleSessions(ctx)
			}
		}
	}
	if h.pool != nil {
		_ = h.pool.Submit(ctx, reap)
	} else {
		go reap()
	}
}

func (h *ReadingHandler) reapIdleSessions(ctx context.Context) {
	now := h.clock()
	var stale []*activeSession
	h.store.mu.Lock()
	for id, s := range h.store.sessions {
		if now.Sub(s.idleSince()) > h.ttl {
			delete(h.store.sessions, id)
			stale = append(stale, s)
		}
	}
	h.store.mu.Unlock()

	for _, s := range stale {
		slog.WarnContext(ctx, "reaping idle reading session", slog.String("session_id", s.id))
		h.closeSession(ctx, s, "expired")
	}
}

func (h *ReadingHandler) OpenSession(ctx context.Context, req *connect.Request[readingv1.OpenSessionRequest]) (*connect.Response[readingv1.OpenSessionResponse], error) {
	id := req.Msg.GetSessionId()
	if id == "" {
		id = xid.New().String()
	}

	var c *corpus.Corpus
	if h.corpus != nil {
		c = h.corpus.Current()
	}

	opts := h.opts
	opts.SessionID = id
	if h.publisher != nil {
		opts.Listener = h.publisher.ForSession(id)
	}
	capture := &streamCapture{}
	m, err := reading.NewMatcher(c, capture, opts)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("create matcher: %w", err))
	}

	// The session outlives the RPC that opened it; CloseSession or the
	// reaper cancel it.
	sessionCtx, cancel := context.WithCancel(context.Background())
	s := &activeSession{
		id:       id,
		matcher:  m,
		capture:  capture,
		ctx:      sessionCtx,
		cancel:   cancel,
		lastSeen: h.clock(),
	}

	h.store.mu.Lock()
	if _, exists := h.store.sessions[id]; exists {
		h.store.mu.Unlock()
		cancel()
		return nil, connect.NewError(connect.CodeAlreadyExists, fmt.Errorf("session %q already open", id))
	}
	h.store.sessions[id] = s
	h.store.mu.Unlock()

	data := events.SessionOpenedData{TotalLines: m.TotalLines()}
	if h.corpus != nil {
		data.CorpusPath = h.corpus.Path()
	}
	h.emit(ctx, events.SessionOpened, id, data)

	slog.InfoContext(ctx, "reading session opened",
		slog.String("session_id", id), slog.Int("total_lines", m.TotalLines()))

	return connect.NewResponse(&readingv1.OpenSessionResponse{Session: sessionState(s)}), nil
}

func (h *ReadingHandler) Start(ctx context.Context, req *connect.Request[readingv1.SessionRequest]) (*connect.Response[readingv1.SessionState], error) {
	s, err := h.lookup(req.Msg.GetSessionId())
	if err != nil {
		return nil, err
	}
	if err := s.matcher.Start(ctx); err != nil {
		return nil, startError(err)
	}
	return connect.NewResponse(sessionState(s)), nil
}

func (h *ReadingHandler) Stop(ctx context.Context, req *connect.Request[readingv1.SessionRequest]) (*connect.Response[readingv1.SessionState], error) {
	return h.apply(req.Msg.GetSessionId(), func(m *reading.Matcher) { m.Stop(ctx) })
}

func (h *ReadingHandler) Reset(ctx context.Context, req *connect.Request[readingv1.SessionRequest]) (*connect.Response[readingv1.SessionState], error) {
	return h.apply(req.Msg.GetSessionId(), func(m *reading.Matcher) { m.Reset(ctx) })
}

func (h *ReadingHandler) GoPrev(ctx context.Context, req *connect.Request[readingv1.SessionRequest]) (*connect.Response[readingv1.SessionState], error) {
	return h.apply(req.Msg.GetSessionId(), func(m *reading.Matcher) { m.GoPrev(ctx) })
}

func (h *ReadingHandler) GoNext(ctx context.Context, req *connect.Request[readingv1.SessionRequest]) (*connect.Response[readingv1.SessionState], error) {
	return h.apply(req.Msg.GetSessionId(), func(m *reading.Matcher) { m.GoNext(ctx) })
}

func (h *ReadingHandler) GoToIndex(ctx context.Context, req *connect.Request[readingv1.GoToIndexRequest]) (*connect.Response[readingv1.SessionState], error) {
	return h.apply(req.Msg.GetSessionId(), func(m *reading.Matcher) { m.GoToIndex(ctx, int(req.Msg.GetIndex())) })
}

func (h *ReadingHandler) Title(ctx context.Context, req *connect.Request[readingv1.SessionRequest]) (*connect.Response[readingv1.SessionState], error) {
	return h.apply(req.Msg.GetSessionId(), func(m *reading.Matcher) { m.Title(ctx) })
}

func (h *ReadingHandler) GetState(_ context.Context, req *connect.Request[readingv1.SessionRequest]) (*connect.Response[readingv1.SessionState], error) {
	return h.apply(req.Msg.GetSessionId(), func(*reading.Matcher) {})
}

func (h *ReadingHandler) CloseSession(ctx context.Context, req *connect.Request[readingv1.SessionRequest]) (*connect.Response[readingv1.CloseSessionResponse], error) {
	h.store.mu.Lock()
	s, ok := h.store.sessions[req.Msg.GetSessionId()]
	if ok {
		delete(h.store.sessions, req.Msg.GetSessionId())
	}
	h.store.mu.Unlock()

	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("session %q not found", req.Msg.GetSessionId()))
	}

	h.closeSession(ctx, s, "closed")
	return connect.NewResponse(&readingv1.CloseSessionResponse{
		SessionId:      s.id,
		CompletedCount: int32(s.matcher.CompletedCount()),
	}), nil
}

// IngestFrames attaches the stream as the session's capture and feeds every
// following frame to its matcher in order. Listening stops when the stream
// ends.
func (h *ReadingHandler) IngestFrames(ctx context.Context, stream *connect.ClientStream[readingv1.IngestRequest]) (*connect.Response[readingv1.IngestResponse], error) {
	if !stream.Receive() {
		if err := stream.Err(); err != nil {
			return nil, err
		}
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("stream closed before config message"))
	}
	cfg := stream.Msg().GetConfig()
	if cfg == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("first message must carry config"))
	}

	denied, err := captureDenied(cfg.GetCapture())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	s, err := h.lookup(cfg.GetSessionId())
	if err != nil {
		return nil, err
	}
	if err := s.capture.attach(denied); err != nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, err)
	}
	defer s.capture.detach()
	// Stop is idempotent, so the deferred call only matters on early returns.
	defer s.matcher.Stop(context.WithoutCancel(ctx))

	if cfg.GetAutoStart() {
		if err := s.matcher.Start(ctx); err != nil {
			return nil, startError(err)
		}
	}

	resp := &readingv1.IngestResponse{}
	for stream.Receive() {
		if s.ctx.Err() != nil {
			return nil, connect.NewError(connect.CodeAborted, fmt.Errorf("session %q closed", s.id))
		}
		f := stream.Msg().GetFrame()
		if f == nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("message %d: frame required", resp.Frames+1))
		}
		frame, err := toFrame(f)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("message %d: %w", resp.Frames+1, err))
		}
		resp.Frames++
		if s.matcher.Ingest(ctx, frame) {
			resp.Phrases++
		}
		s.touch(h.clock())
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}

	s.matcher.Stop(ctx)
	resp.Session = sessionState(s)

	slog.InfoContext(ctx, "frame stream ended",
		slog.String("session_id", s.id),
		slog.Int("frames", int(resp.Frames)),
		slog.Int("phrases", int(resp.Phrases)))

	return connect.NewResponse(resp), nil
}

// WatchEvents streams one session's events. The first message is a
// session.state snapshot, sent once the subscription is live.
func (h *ReadingHandler) WatchEvents(ctx context.Context, req *connect.Request[readingv1.WatchEventsRequest], stream *connect.ServerStream[readingv1.Event]) error {
	if h.publisher == nil {
		return connect.NewError(connect.CodeUnavailable, errors.New("event publisher not configured"))
	}
	s, err := h.lookup(req.Msg.GetSessionId())
	if err != nil {
		return err
	}

	subID := "watch-" + xid.New().String()
	ch := h.publisher.Subscribe(subID, watchBuffer)
	defer h.publisher.Unsubscribe(subID)

	snap := s.matcher.Snapshot()
	initial, err := snapshotEvent(s.id, events.SessionStateData{
		State:    snap.State.String(),
		Position: snap.Position,
	})
	if err != nil {
		return connect.NewError(connect.CodeInternal, err)
	}
	if err := stream.Send(initial); err != nil {
		return err
	}

	send := func(env events.Envelope) (bool, error) {
		if env.SessionID != s.id {
			return false, nil
		}
		if err := stream.Send(toEvent(env)); err != nil {
			return true, err
		}
		return env.Type == events.SessionClosed, nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.ctx.Done():
			// Flush what was emitted before the session went away.
			for {
				select {
				case env, ok := <-ch:
					if !ok {
						return nil
					}
					if done, err := send(env); done || err != nil {
						return err
					}
				default:
					return nil
				}
			}
		case env, ok := <-ch:
			if !ok {
				return nil
			}
			if done, err := send(env); done || err != nil {
				return err
			}
		}
	}
}

func (h *ReadingHandler) lookup(id string) (*activeSession, error) {
	h.store.mu.RLock()
	s, ok := h.store.sessions[id]
	h.store.mu.RUnlock()

	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("session %q not found", id))
	}
	s.touch(h.clock())
	return s, nil
}

func (h *ReadingHandler) apply(id string, fn func(*reading.Matcher)) (*connect.Response[readingv1.SessionState], error) {
	s, err := h.lookup(id)
	if err != nil {
		return nil, err
	}
	fn(s.matcher)
	return connect.NewResponse(sessionState(s)), nil
}

func (h *ReadingHandler) closeSession(ctx context.Context, s *activeSession, reason string) {
	s.matcher.Stop(ctx)
	h.emit(ctx, events.SessionClosed, s.id, events.SessionClosedData{
		Reason:         reason,
		CompletedCount: s.matcher.CompletedCount(),
	})
	s.cancel()

	slog.InfoContext(ctx, "reading session closed",
		slog.String("session_id", s.id),
		slog.String("reason", reason),
		slog.Int("completed", s.matcher.CompletedCount()))
}

func (h *ReadingHandler) emit(ctx context.Context, t events.EventType, sessionID string, data any) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Emit(ctx, t, sessionID, data); err != nil {
		slog.WarnContext(ctx, "event publish failed",
			slog.String("session_id", sessionID),
			slog.String("event_type", string(t)),
			slog.String("error", err.Error()))
	}
}

func startError(err error) error {
	if errors.Is(err, reading.ErrCaptureDenied) {
		return connect.NewError(connect.CodePermissionDenied, err)
	}
	return connect.NewError(connect.CodeFailedPrecondition, err)
}
