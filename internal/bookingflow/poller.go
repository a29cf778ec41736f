package bookingflow

import (
	"context"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/integrations/labapi"
)

// DefaultPollInterval matches the dashboard refresh cadence.
const DefaultPollInterval = 30 * time.Second

// Poller periodically refreshes the dashboard feed and hands each snapshot
// to the callback. Fetch errors are logged and the previous snapshot stays
// on screen until the next successful poll.
type Poller struct {
	fetcher  DashboardFetcher
	interval time.Duration
	onUpdate func([]labapi.DashboardBooking)
	log      Logger
}

// NewPoller creates a dashboard poller. A non-positive interval falls back
// to DefaultPollInterval.
func NewPoller(fetcher DashboardFetcher, interval time.Duration, onUpdate func([]labapi.DashboardBooking), log Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		onUpdate: onUpdate,
		log:      log,
	}
}

// Run polls until the context is cancelled. The first fetch happens
// immediately.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	rows, err := p.fetcher.GetDashboardData(ctx)
	if err != nil {
		p.log.Warn("dashboard poll failed: %v", err)
		return
	}
	p.onUpdate(rows)
}
