package markup

import (
	"context"
	"sync"

	"pkt.systems/pslog"
)

// Presenter owns the "currently displayed" render groups for one view. Each
// Update parses in the background and supersedes any parse still in flight,
// so an older result never replaces a newer one.
type Presenter struct {
	rules   []Rule
	deliver func([]RenderGroup)

	mu        sync.Mutex
	seq       uint64
	published uint64
	cancel    context.CancelFunc
	latest    []RenderGroup
	closed    bool

	// publish serializes deliveries; it is never held together with mu
	// across a delivery.
	publish sync.Mutex
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithDelivery registers fn to receive published results. Deliveries are
// serialized and a result is skipped once a newer one has been published.
// fn may call Latest.
func WithDelivery(fn func([]RenderGroup)) PresenterOption {
	return func(p *Presenter) {
		p.deliver = fn
	}
}

// NewPresenter returns a Presenter parsing with rules.
func NewPresenter(rules []Rule, opts ...PresenterOption) *Presenter {
	p := &Presenter{rules: append([]Rule(nil), rules...)}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Update starts parsing text and cancels the previous parse, if any. The
// returned channel is closed once the parse has been published or
// discarded.
func (p *Presenter) Update(ctx context.Context, text string) <-chan struct{} {
	if ctx == nil {
		ctx = context.Background()
	}
	done := make(chan struct{})
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		close(done)
		return done
	}
	if p.cancel != nil {
		p.cancel()
	}
	p.seq++
	seq := p.seq
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()
		log := pslog.Ctx(runCtx).With("parse", seq)
		if runCtx.Err() != nil {
			log.Debug("markup parse discarded", "reason", "cancelled before start")
			return
		}
		groups := Parse(text, p.rules)

		p.mu.Lock()
		if runCtx.Err() != nil || seq != p.seq || p.closed {
			p.mu.Unlock()
			log.Debug("markup parse discarded", "reason", "superseded")
			return
		}
		p.latest = groups
		p.published = seq
		p.cancel = nil
		p.mu.Unlock()
		log.Debug("markup parse published", "groups", len(groups))
		if p.deliver == nil {
			return
		}

		p.publish.Lock()
		defer p.publish.Unlock()
		p.mu.Lock()
		current := p.published == seq
		p.mu.Unlock()
		if !current {
			log.Debug("markup delivery skipped", "reason", "newer result published")
			return
		}
		p.deliver(groups)
	}()
	return done
}

// Latest returns the most recently published render groups.
func (p *Presenter) Latest() []RenderGroup {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]RenderGroup, len(p.latest))
	copy(out, p.latest)
	return out
}

// Close cancels any parse in flight. Later updates are ignored.
func (p *Presenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}
