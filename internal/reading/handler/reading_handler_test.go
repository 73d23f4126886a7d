package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	readingv1 "github.com/voicetyped/recite/gen/recite/reading/v1"
	"github.com/voicetyped/recite/gen/recite/reading/v1/readingv1connect"
	"github.com/voicetyped/recite/pkg/corpus"
	"github.com/voicetyped/recite/pkg/events"
	"github.com/voicetyped/recite/pkg/reading"
)

const (
	testLines    = 3
	phraseFrames = 16
	loudEnergy   = 0.05
	quietEnergy  = 0.001
)

type staticSource struct {
	c *corpus.Corpus
}

func (s staticSource) Current() *corpus.Corpus { return s.c }
func (s staticSource) Path() string             { return "memory" }

type nopTimer struct{}

func (nopTimer) Stop() bool { return true }

type nopScheduler struct{}

func (nopScheduler) AfterFunc(time.Duration, func()) reading.Timer { return nopTimer{} }

// stepClock advances by one frame period on every call.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(43 * time.Millisecond)
	return c.now
}

func buildCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	r := rand.New(rand.NewSource(7))
	records := make([]corpus.Record, testLines)
	for i := range records {
		seq := make([][]float64, phraseFrames)
		for j := range seq {
			row := make([]float64, corpus.Coefficients)
			for k := range row {
				row[k] = r.NormFloat64()
			}
			seq[j] = row
		}
		records[i] = corpus.Record{
			ID:            fmt.Sprintf("l%d", i),
			Index:         i,
			TextPrimary:   fmt.Sprintf("primary %d", i),
			TextSecondary: fmt.Sprintf("secondary %d", i),
			Duration:      1.0,
			MFCCSequence:  seq,
		}
	}
	c, err := corpus.New(records)
	if err != nil {
		t.Fatalf("corpus.New: %v", err)
	}
	return c
}

func newTestHandler(t *testing.T, c *corpus.Corpus) (*ReadingHandler, *events.Publisher) {
	t.Helper()
	clock := &stepClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts := reading.DefaultOptions()
	opts.VAD.NoiseAlpha = 0
	opts.VAD.Warmup = 0
	opts.Clock = clock.Now
	opts.Scheduler = nopScheduler{}

	pub := events.NewPublisher(nil, "recite-test", "")
	return NewReadingHandler(staticSource{c: c}, pub, opts, 30*time.Minute, nil), pub
}

func startTestServer(t *testing.T) (string, *corpus.Corpus) {
	t.Helper()
	c := buildCorpus(t)
	h, _ := newTestHandler(t, c)

	mux := http.NewServeMux()
	path, hdlr := readingv1connect.NewReadingServiceHandler(h)
	mux.Handle(path, hdlr)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server.URL, c
}

func setupReadingTestServer(t *testing.T) (readingv1connect.ReadingServiceClient, *corpus.Corpus) {
	t.Helper()
	url, c := startTestServer(t)
	return readingv1connect.NewReadingServiceClient(http.DefaultClient, url), c
}

func openSession(t *testing.T, client readingv1connect.ReadingServiceClient, id string) *readingv1.SessionState {
	t.Helper()
	resp, err := client.OpenSession(t.Context(), connect.NewRequest(&readingv1.OpenSessionRequest{SessionId: id}))
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	return resp.Msg.GetSession()
}

func sessionReq(id string) *connect.Request[readingv1.SessionRequest] {
	return connect.NewRequest(&readingv1.SessionRequest{SessionId: id})
}

func configMsg(cfg *readingv1.IngestConfig) *readingv1.IngestRequest {
	return &readingv1.IngestRequest{Payload: &readingv1.IngestRequest_Config{Config: cfg}}
}

func frameMsg(mfcc []float64, energy float64) *readingv1.IngestRequest {
	return &readingv1.IngestRequest{Payload: &readingv1.IngestRequest_Frame{
		Frame: &readingv1.Frame{Mfcc: mfcc, Energy: energy},
	}}
}

// lineFrames returns the frames of a spoken line: silence, a lead-in, the
// line's reference frames, then enough silence to end the phrase. Loud frames
// carry a leading coefficient 0.
func lineFrames(p corpus.Phrase) []*readingv1.IngestRequest {
	var out []*readingv1.IngestRequest
	for range 5 {
		out = append(out, frameMsg(nil, quietEnergy))
	}
	withC0 := func(v corpus.Vector) []float64 {
		return append([]float64{9.5}, v[:]...)
	}
	out = append(out, frameMsg(withC0(p.Frames[0]), loudEnergy))
	for _, v := range p.Frames {
		out = append(out, frameMsg(withC0(v), loudEnergy))
	}
	for range 12 {
		out = append(out, frameMsg(nil, quietEnergy))
	}
	return out
}

func TestOpenSession(t *testing.T) {
	client, c := setupReadingTestServer(t)

	st := openSession(t, client, "session-1")
	if st.GetSessionId() != "session-1" {
		t.Errorf("got session ID %q, want session-1", st.GetSessionId())
	}
	if st.GetStatus() != readingv1.SessionStatus_SESSION_STATUS_IDLE ||
		st.GetPermission() != readingv1.CapturePermission_CAPTURE_PERMISSION_UNSPECIFIED {
		t.Errorf("status = %s permission = %s, want idle/unspecified", st.GetStatus(), st.GetPermission())
	}
	if st.GetPosition() != -1 || st.GetLine() != nil {
		t.Errorf("position = %d line = %v, want -1 and no line", st.GetPosition(), st.GetLine())
	}
	if int(st.GetTotalLines()) != c.TotalLines() {
		t.Errorf("total lines = %d, want %d", st.GetTotalLines(), c.TotalLines())
	}
}

func TestOpenSessionGeneratesID(t *testing.T) {
	client, _ := setupReadingTestServer(t)
	st := openSession(t, client, "")
	if st.GetSessionId() == "" {
		t.Error("expected a generated session id")
	}
}

func TestOpenSessionDuplicate(t *testing.T) {
	client, _ := setupReadingTestServer(t)
	openSession(t, client, "dup")

	_, err := client.OpenSession(t.Context(), connect.NewRequest(&readingv1.OpenSessionRequest{SessionId: "dup"}))
	if connect.CodeOf(err) != connect.CodeAlreadyExists {
		t.Errorf("got code %v, want AlreadyExists", connect.CodeOf(err))
	}
}

func TestUnknownSession(t *testing.T) {
	client, _ := setupReadingTestServer(t)

	_, err := client.GetState(t.Context(), sessionReq("nope"))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("GetState: got code %v, want NotFound", connect.CodeOf(err))
	}
	_, err = client.CloseSession(t.Context(), sessionReq("nope"))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("CloseSession: got code %v, want NotFound", connect.CodeOf(err))
	}
}

// Raw HTTP callers get binary protobuf and protojson, both decoded by the
// generated message types.
func TestWireEncodings(t *testing.T) {
	url, _ := startTestServer(t)
	endpoint := url + readingv1connect.ReadingServiceOpenSessionProcedure

	body, err := proto.Marshal(&readingv1.OpenSessionRequest{SessionId: "wire-bin"})
	if err != nil {
		t.Fatalf("proto.Marshal: %v", err)
	}
	resp, err := http.Post(endpoint, "application/proto", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post proto: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("proto status = %d: %s", resp.StatusCode, raw)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/proto" {
		t.Errorf("proto content type = %q", ct)
	}
	var bin readingv1.OpenSessionResponse
	if err := proto.Unmarshal(raw, &bin); err != nil {
		t.Fatalf("proto.Unmarshal: %v", err)
	}
	if bin.GetSession().GetSessionId() != "wire-bin" || bin.GetSession().GetPosition() != -1 {
		t.Errorf("proto session = %v", bin.GetSession())
	}

	resp, err = http.Post(endpoint, "application/json", bytes.NewReader([]byte(`{"sessionId":"wire-json"}`)))
	if err != nil {
		t.Fatalf("post json: %v", err)
	}
	raw, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("json status = %d: %s", resp.StatusCode, raw)
	}
	var js readingv1.OpenSessionResponse
	if err := protojson.Unmarshal(raw, &js); err != nil {
		t.Fatalf("protojson.Unmarshal: %v", err)
	}
	if js.GetSession().GetSessionId() != "wire-json" ||
		js.GetSession().GetStatus() != readingv1.SessionStatus_SESSION_STATUS_IDLE {
		t.Errorf("json session = %v", js.GetSession())
	}
}

func TestNavigation(t *testing.T) {
	client, _ := setupReadingTestServer(t)
	openSession(t, client, "nav")
	ctx := t.Context()
	req := sessionReq("nav")

	resp, err := client.GoNext(ctx, req)
	if err != nil {
		t.Fatalf("GoNext: %v", err)
	}
	if resp.Msg.GetPosition() != 0 || resp.Msg.GetLine().GetId() != "l0" {
		t.Fatalf("after GoNext: position = %d line = %v", resp.Msg.GetPosition(), resp.Msg.GetLine())
	}
	if resp.Msg.GetLine().GetConfidenceLevel() != readingv1.ConfidenceLevel_CONFIDENCE_LEVEL_HIGH || resp.Msg.GetLine().GetIsPending() {
		t.Errorf("navigated line = %v, want confirmed high", resp.Msg.GetLine())
	}

	resp, err = client.GoToIndex(ctx, connect.NewRequest(&readingv1.GoToIndexRequest{SessionId: "nav", Index: 2}))
	if err != nil {
		t.Fatalf("GoToIndex: %v", err)
	}
	if resp.Msg.GetPosition() != 2 {
		t.Errorf("after GoToIndex(2): position = %d", resp.Msg.GetPosition())
	}

	resp, err = client.GoPrev(ctx, req)
	if err != nil {
		t.Fatalf("GoPrev: %v", err)
	}
	if resp.Msg.GetPosition() != 1 || resp.Msg.GetLine().GetId() != "l1" {
		t.Errorf("after GoPrev: position = %d line = %v", resp.Msg.GetPosition(), resp.Msg.GetLine())
	}

	resp, err = client.Title(ctx, req)
	if err != nil {
		t.Fatalf("Title: %v", err)
	}
	if resp.Msg.GetPosition() != 1 || resp.Msg.GetLine() != nil {
		t.Errorf("after Title: position = %d line = %v, want 1 and no line", resp.Msg.GetPosition(), resp.Msg.GetLine())
	}

	resp, err = client.Reset(ctx, req)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if resp.Msg.GetPosition() != -1 || resp.Msg.GetCompletedCount() != 0 {
		t.Errorf("after Reset: position = %d completed = %d", resp.Msg.GetPosition(), resp.Msg.GetCompletedCount())
	}
}

func TestStartWithoutStream(t *testing.T) {
	client, _ := setupReadingTestServer(t)
	openSession(t, client, "s")

	_, err := client.Start(t.Context(), sessionReq("s"))
	if connect.CodeOf(err) != connect.CodeFailedPrecondition {
		t.Errorf("got code %v, want FailedPrecondition", connect.CodeOf(err))
	}

	resp, err := client.GetState(t.Context(), sessionReq("s"))
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if resp.Msg.GetStatus() != readingv1.SessionStatus_SESSION_STATUS_IDLE ||
		resp.Msg.GetPermission() != readingv1.CapturePermission_CAPTURE_PERMISSION_DENIED {
		t.Errorf("status = %s permission = %s, want idle/denied", resp.Msg.GetStatus(), resp.Msg.GetPermission())
	}
}

func TestIngestFramesMatchesLine(t *testing.T) {
	client, c := setupReadingTestServer(t)
	openSession(t, client, "ingest")

	p, _ := c.Phrase(0)
	frames := lineFrames(p)

	stream := client.IngestFrames(t.Context())
	if err := stream.Send(configMsg(&readingv1.IngestConfig{
		SessionId: "ingest",
		Capture:   readingv1.CapturePermission_CAPTURE_PERMISSION_GRANTED,
		AutoStart: true,
	})); err != nil {
		t.Fatalf("send config: %v", err)
	}
	for _, f := range frames {
		if err := stream.Send(f); err != nil {
			t.Fatalf("send frame: %v", err)
		}
	}
	resp, err := stream.CloseAndReceive()
	if err != nil {
		t.Fatalf("CloseAndReceive: %v", err)
	}

	if int(resp.Msg.GetFrames()) != len(frames) {
		t.Errorf("frames = %d, want %d", resp.Msg.GetFrames(), len(frames))
	}
	if resp.Msg.GetPhrases() != 1 {
		t.Errorf("phrases = %d, want 1", resp.Msg.GetPhrases())
	}
	st := resp.Msg.GetSession()
	if st.GetPosition() != 0 || st.GetLine().GetId() != "l0" {
		t.Errorf("position = %d line = %v, want l0", st.GetPosition(), st.GetLine())
	}
	if st.GetCompletedCount() != 1 || len(st.GetCompleted()) != 1 || st.GetCompleted()[0] != "l0" {
		t.Errorf("completed = %d %v, want [l0]", st.GetCompletedCount(), st.GetCompleted())
	}
	if st.GetStatus() != readingv1.SessionStatus_SESSION_STATUS_IDLE {
		t.Errorf("status after stream end = %s, want idle", st.GetStatus())
	}
}

func TestIngestFramesErrors(t *testing.T) {
	tests := []struct {
		name  string
		first *readingv1.IngestRequest
		rest  []*readingv1.IngestRequest
		code  connect.Code
	}{
		{
			name:  "frame before config",
			first: frameMsg(nil, quietEnergy),
			code:  connect.CodeInvalidArgument,
		},
		{
			name:  "empty message",
			first: &readingv1.IngestRequest{},
			code:  connect.CodeInvalidArgument,
		},
		{
			name:  "unknown session",
			first: configMsg(&readingv1.IngestConfig{SessionId: "missing"}),
			code:  connect.CodeNotFound,
		},
		{
			name:  "unknown permission",
			first: configMsg(&readingv1.IngestConfig{SessionId: "errs", Capture: readingv1.CapturePermission(7)}),
			code:  connect.CodeInvalidArgument,
		},
		{
			name: "denied",
			first: configMsg(&readingv1.IngestConfig{
				SessionId: "errs", Capture: readingv1.CapturePermission_CAPTURE_PERMISSION_DENIED, AutoStart: true,
			}),
			code: connect.CodePermissionDenied,
		},
		{
			name:  "bad coefficient count",
			first: configMsg(&readingv1.IngestConfig{SessionId: "errs", AutoStart: true}),
			rest:  []*readingv1.IngestRequest{frameMsg(make([]float64, 5), loudEnergy)},
			code:  connect.CodeInvalidArgument,
		},
		{
			name:  "config repeated",
			first: configMsg(&readingv1.IngestConfig{SessionId: "errs"}),
			rest:  []*readingv1.IngestRequest{configMsg(&readingv1.IngestConfig{SessionId: "errs"})},
			code:  connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := setupReadingTestServer(t)
			openSession(t, client, "errs")

			stream := client.IngestFrames(t.Context())
			_ = stream.Send(tt.first)
			for _, m := range tt.rest {
				_ = stream.Send(m)
			}
			_, err := stream.CloseAndReceive()
			if connect.CodeOf(err) != tt.code {
				t.Errorf("got code %v (%v), want %v", connect.CodeOf(err), err, tt.code)
			}
		})
	}
}

func TestWatchEvents(t *testing.T) {
	client, _ := setupReadingTestServer(t)
	openSession(t, client, "watch")
	openSession(t, client, "other")

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	stream, err := client.WatchEvents(ctx, connect.NewRequest(&readingv1.WatchEventsRequest{SessionId: "watch"}))
	if err != nil {
		t.Fatalf("WatchEvents: %v", err)
	}
	defer stream.Close()

	if !stream.Receive() {
		t.Fatalf("no initial snapshot: %v", stream.Err())
	}
	if got := events.EventType(stream.Msg().GetType()); got != events.SessionState {
		t.Fatalf("first event = %s, want %s", got, events.SessionState)
	}

	// Events of another session must not leak into this stream.
	if _, err := client.GoNext(ctx, sessionReq("other")); err != nil {
		t.Fatalf("GoNext other: %v", err)
	}
	if _, err := client.GoNext(ctx, sessionReq("watch")); err != nil {
		t.Fatalf("GoNext: %v", err)
	}
	if _, err := client.CloseSession(ctx, sessionReq("watch")); err != nil {
		t.Fatalf("CloseSession: %v", err)
	}

	var seen []events.EventType
	for stream.Receive() {
		ev := stream.Msg()
		if ev.GetSessionId() != "watch" {
			t.Errorf("received event for session %q", ev.GetSessionId())
		}
		if ev.GetTimestamp() == nil {
			t.Errorf("%s event without timestamp", ev.GetType())
		}
		et := events.EventType(ev.GetType())
		seen = append(seen, et)
		if et == events.LineUpdated {
			var data events.LineUpdatedData
			if err := json.Unmarshal(ev.GetData(), &data); err != nil {
				t.Fatalf("decode line.updated: %v", err)
			}
			if data.Line == nil || data.Line.ID != "l0" {
				t.Errorf("line.updated line = %+v, want l0", data.Line)
			}
		}
	}
	if err := stream.Err(); err != nil {
		t.Fatalf("stream error: %v", err)
	}

	want := map[events.EventType]bool{events.LineUpdated: false, events.PositionChanged: false, events.SessionClosed: false}
	for _, et := range seen {
		if _, ok := want[et]; ok {
			want[et] = true
		}
	}
	for et, ok := range want {
		if !ok {
			t.Errorf("missing %s in %v", et, seen)
		}
	}
	if seen[len(seen)-1] != events.SessionClosed {
		t.Errorf("last event = %s, want %s", seen[len(seen)-1], events.SessionClosed)
	}
}

func TestReapIdleSessions(t *testing.T) {
	h, pub := newTestHandler(t, buildCorpus(t))
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h.clock = func() time.Time { return now }
	ctx := t.Context()

	for _, id := range []string{"idle", "busy"} {
		if _, err := h.OpenSession(ctx, connect.NewRequest(&readingv1.OpenSessionRequest{SessionId: id})); err != nil {
			t.Fatalf("OpenSession %s: %v", id, err)
		}
	}

	ch := pub.Subscribe("reaper-test", 16)
	defer pub.Unsubscribe("reaper-test")

	now = now.Add(20 * time.Minute)
	if _, err := h.GetState(ctx, sessionReq("busy")); err != nil {
		t.Fatalf("GetState: %v", err)
	}
	now = now.Add(15 * time.Minute)
	h.reapIdleSessions(ctx)

	if _, err := h.lookup("idle"); connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("idle session still present: %v", err)
	}
	if _, err := h.lookup("busy"); err != nil {
		t.Errorf("busy session reaped: %v", err)
	}

	var closed *events.SessionClosedData
	for len(ch) > 0 {
		env := <-ch
		if env.Type != events.SessionClosed {
			continue
		}
		if env.SessionID != "idle" {
			t.Errorf("closed session = %q, want idle", env.SessionID)
		}
		closed = &events.SessionClosedData{}
		if err := json.Unmarshal(env.Data, closed); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	if closed == nil || closed.Reason != "expired" {
		t.Errorf("session.closed = %+v, want reason expired", closed)
	}
}

func TestToFrame(t *testing.T) {
	twelve := make([]float64, corpus.Coefficients)
	twelve[0] = 1
	thirteen := append([]float64{42}, twelve...)

	tests := []struct {
		name    string
		mfcc    []float64
		wantNil bool
		wantErr bool
	}{
		{name: "no coefficients", mfcc: nil, wantNil: true},
		{name: "empty", mfcc: []float64{}, wantNil: true},
		{name: "twelve", mfcc: twelve},
		{name: "thirteen drops c0", mfcc: thirteen},
		{name: "too few", mfcc: []float64{1, 2, 3}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := toFrame(&readingv1.Frame{Mfcc: tt.mfcc, Energy: 0.2})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if f.Energy != 0.2 {
				t.Errorf("energy = %g", f.Energy)
			}
			if (f.MFCC == nil) != tt.wantNil {
				t.Fatalf("mfcc nil = %v, want %v", f.MFCC == nil, tt.wantNil)
			}
			if f.MFCC != nil && f.MFCC[0] != 1 {
				t.Errorf("first coefficient = %g, want 1", f.MFCC[0])
			}
		})
	}
}

func TestCaptureDenied(t *testing.T) {
	tests := []struct {
		in      readingv1.CapturePermission
		denied  bool
		wantErr bool
	}{
		{in: readingv1.CapturePermission_CAPTURE_PERMISSION_UNSPECIFIED},
		{in: readingv1.CapturePermission_CAPTURE_PERMISSION_GRANTED},
		{in: readingv1.CapturePermission_CAPTURE_PERMISSION_DENIED, denied: true},
		{in: readingv1.CapturePermission(9), wantErr: true},
	}
	for _, tt := range tests {
		denied, err := captureDenied(tt.in)
		if (err != nil) != tt.wantErr || denied != tt.denied {
			t.Errorf("captureDenied(%v) = %v, %v; want %v, err %v", tt.in, denied, err, tt.denied, tt.wantErr)
		}
	}
}
