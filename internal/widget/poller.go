package widget

import (
	"context"
	"time"

	"github.com/dmitrijs2005/listen/internal/logging"
	"github.com/dmitrijs2005/listen/internal/models"
)

const (
	DefaultRefreshInterval   = 2 * time.Minute
	DefaultImmediateInterval = 30 * time.Second
)

// PollerOptions tunes the refresh cadence. Zero values pick the defaults.
type PollerOptions struct {
	Interval  time.Duration
	Immediate time.Duration

	// OnRefresh, when set, is called with every new entry.
	OnRefresh func(models.TimelineEntry)
}

// Poller refreshes a Timeline on a passive interval and on demand. After an
// explicit invalidate the next passive refresh comes sooner, then the normal
// interval resumes.
type Poller struct {
	provider  *Provider
	timeline  *Timeline
	interval  time.Duration
	immediate time.Duration
	onRefresh func(models.TimelineEntry)
	logger    logging.Logger

	reload chan struct{}
}

func NewPoller(provider *Provider, timeline *Timeline, logger logging.Logger, opts PollerOptions) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = DefaultRefreshInterval
	}
	if opts.Immediate <= 0 {
		opts.Immediate = DefaultImmediateInterval
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Poller{
		provider:  provider,
		timeline:  timeline,
		interval:  opts.Interval,
		immediate: opts.Immediate,
		onRefresh: opts.OnRefresh,
		logger:    logger.With("module", "widget_poller"),
		reload:    make(chan struct{}, 1),
	}
}

// Invalidate requests a refresh. It never blocks; requests arriving while
// one is pending are merged.
func (p *Poller) Invalidate() {
	select {
	case p.reload <- struct{}{}:
	default:
	}
}

// Run refreshes until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	p.refresh(ctx, "start")
	delay := p.interval

	for {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			p.refresh(ctx, "timer")
			delay = p.interval
		case <-p.reload:
			timer.Stop()
			p.refresh(ctx, "invalidate")
			delay = p.immediate
		}
	}
}

// StartPoller launches Run in a background goroutine. It returns immediately.
func StartPoller(ctx context.Context, p *Poller) {
	go p.Run(ctx)
}

func (p *Poller) refresh(ctx context.Context, reason string) {
	e := p.provider.Entry(ctx)
	p.timeline.Update(e)
	p.logger.Debug(ctx, "timeline refreshed", "reason", reason,
		"total", e.Snapshot.TotalEntries, "placeholder", e.Placeholder)
	if p.onRefresh != nil {
		p.onRefresh(e)
	}
}
