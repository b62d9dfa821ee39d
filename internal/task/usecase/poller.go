package usecase

import (
	"context"
	"time"

	"momentum-tab/internal/task"
	pkgLog "momentum-tab/pkg/log"
)

// DefaultPollInterval is how often Poller refreshes the task list.
const DefaultPollInterval = 5 * time.Minute

// Poller refreshes the task list on a fixed interval so remote edits and
// day changes reach subscribers without a client request.
type Poller struct {
	l        pkgLog.Logger
	uc       task.UseCase
	interval time.Duration
}

// NewPoller creates a Poller. A non-positive interval uses DefaultPollInterval.
func NewPoller(l pkgLog.Logger, uc task.UseCase, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{l: l, uc: uc, interval: interval}
}

// Run refreshes once immediately, then every interval until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	out, err := p.uc.Refresh(ctx)
	if err != nil {
		p.l.Warnf(ctx, "task.Poller: refresh failed, keeping previous snapshot: %v", err)
		return
	}
	p.l.Debugf(ctx, "task.Poller: %d task(s) refreshed", len(out.Tasks))
}
