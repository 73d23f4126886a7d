package reading

import (
	"context"

	"github.com/voicetyped/recite/pkg/attention"
)

// schedulePreview arranges for the expected next line to be shown as pending
// shortly after a phrase starts. Any later transition bumps the generation,
// which turns an already-fired callback into a no-op.
func (m *Matcher) schedulePreview(ctx context.Context) {
	m.cancelPreview()
	gen := m.previewGen
	bg := context.WithoutCancel(ctx)
	m.preview = m.scheduler.AfterFunc(m.opts.PreviewDelay, func() {
		m.firePreview(bg, gen)
	})
}

func (m *Matcher) cancelPreview() {
	m.previewGen++
	if m.preview != nil {
		m.preview.Stop()
		m.preview = nil
	}
}

func (m *Matcher) firePreview(ctx context.Context, gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.previewGen || m.state != StateListening || !m.vad.InPhrase() {
		return
	}
	m.preview = nil

	p, ok := m.corpus.Phrase(max(0, m.position+1))
	if !ok {
		return
	}
	if m.displayed != nil && m.displayed.ID == p.ID && m.displayed.Pending {
		return
	}
	m.setDisplay(ctx, &Line{
		ID:            p.ID,
		TextPrimary:   p.TextPrimary,
		TextSecondary: p.TextSecondary,
		Confidence:    m.opts.PreviewConfidence,
		Level:         attention.LevelNone,
		Pending:       true,
	})
}
