package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	readingv1 "github.com/voicetyped/recite/gen/recite/reading/v1"
	"github.com/voicetyped/recite/pkg/corpus"
	"github.com/voicetyped/recite/pkg/events"
	"github.com/voicetyped/recite/pkg/reading"
)

const maxFrameLine = 1 << 20

func replayCmd() *cobra.Command {
	var (
		corpusPath string
		framesPath string
		frameMs    int
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Feed a recorded frame log through a matcher and print its events",
		Long: `Replays a JSON-lines frame log ({"mfcc":[...],"energy":0.01} per line,
mfcc may be null) against a corpus on a synthetic clock, printing every event
the matcher emits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := corpus.Load(corpusPath)
			if err != nil {
				return err
			}
			f, err := os.Open(framesPath)
			if err != nil {
				return fmt.Errorf("open frame log: %w", err)
			}
			defer f.Close()

			var eventOut io.Writer = cmd.OutOrStdout()
			if quiet {
				eventOut = io.Discard
			}
			stats, err := replay(cmd.Context(), c, f, time.Duration(frameMs)*time.Millisecond, eventOut)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "frames=%d phrases=%d accepted=%d rejected=%d position=%d completed=%d/%d\n",
				stats.Frames, stats.Phrases, stats.Accepted, stats.Rejected,
				stats.Position, stats.Completed, c.TotalLines())
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", envOr("CORPUS_PATH", ""), "corpus file (.json or .yaml)")
	cmd.Flags().StringVar(&framesPath, "frames", "", "frame log (JSON lines)")
	cmd.Flags().IntVar(&frameMs, "frame-ms", 43, "time between frames in milliseconds")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "print only the summary")
	_ = cmd.MarkFlagRequired("frames")

	return cmd
}

type replayStats struct {
	Frames    int
	Phrases   int
	Accepted  int
	Rejected  int
	Position  int
	Completed int
}

// replayClock is a synthetic clock that also acts as the matcher's
// scheduler, firing timers once the clock passes their deadline.
type replayClock struct {
	now    time.Time
	timers []*replayTimer
}

type replayTimer struct {
	at      time.Time
	f       func()
	stopped bool
}

func (t *replayTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *replayClock) Now() time.Time { return c.now }

func (c *replayClock) AfterFunc(d time.Duration, f func()) reading.Timer {
	t := &replayTimer{at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// advance moves the clock forward and runs every due timer in deadline order.
func (c *replayClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
	sort.SliceStable(c.timers, func(i, j int) bool { return c.timers[i].at.Before(c.timers[j].at) })
	pending := c.timers[:0]
	var due []*replayTimer
	for _, t := range c.timers {
		switch {
		case t.stopped:
		case !t.at.After(c.now):
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}
	c.timers = pending
	for _, t := range due {
		t.stopped = true
		t.f()
	}
}

func replay(ctx context.Context, c *corpus.Corpus, r io.Reader, step time.Duration, out io.Writer) (replayStats, error) {
	var stats replayStats
	if step <= 0 {
		return stats, fmt.Errorf("frame step must be positive, got %v", step)
	}

	clock := &replayClock{now: time.Unix(0, 0).UTC()}
	start := clock.now

	opts := reading.DefaultOptions()
	opts.SessionID = "replay"
	opts.Clock = clock.Now
	opts.Scheduler = clock
	opts.Listener = reading.ListenerFunc(func(_ context.Context, t events.EventType, data any) {
		switch t {
		case events.MatchAccepted:
			stats.Accepted++
		case events.MatchRejected:
			stats.Rejected++
		}
		raw, err := json.Marshal(data)
		if err != nil {
			raw = []byte(fmt.Sprintf("%q", err.Error()))
		}
		fmt.Fprintf(out, "%8dms  %-18s %s\n", clock.now.Sub(start).Milliseconds(), t, raw)
	})

	m, err := reading.NewMatcher(c, reading.StaticCapture{}, opts)
	if err != nil {
		return stats, err
	}
	if err := m.Start(ctx); err != nil {
		return stats, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameLine)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec readingv1.Frame
		if err := protojson.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return stats, fmt.Errorf("frame log line %d: %w", line, err)
		}
		frame, err := reading.FrameFromSlice(rec.GetMfcc(), rec.GetEnergy())
		if err != nil {
			return stats, fmt.Errorf("frame log line %d: %w", line, err)
		}

		clock.advance(step)
		stats.Frames++
		if m.Ingest(ctx, frame) {
			stats.Phrases++
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read frame log: %w", err)
	}

	m.Stop(ctx)
	snap := m.Snapshot()
	stats.Position = snap.Position
	stats.Completed = snap.CompletedCount
	return stats, nil
}
