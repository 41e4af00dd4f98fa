package app

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/recordify/internal/recordify"
	"github.com/five82/recordify/internal/state"
)

const defaultPollInterval = 2 * time.Second

// Poller refreshes the store from /api/now_playing at a fixed cadence.
type Poller struct {
	backend  recordify.Backend
	store    *state.Store
	interval time.Duration
	logger   *log.Logger
	updates  chan struct{}
}

// NewPoller creates a Poller. A non-positive interval uses the 2s default.
func NewPoller(backend recordify.Backend, store *state.Store, interval time.Duration, logger *log.Logger) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{
		backend:  backend,
		store:    store,
		interval: interval,
		logger:   logger.With("component", "poller"),
		updates:  make(chan struct{}, 1),
	}
}

// Updates signals after each poll that the store changed. Signals coalesce:
// a reader that falls behind sees one pending signal, not a backlog.
func (p *Poller) Updates() <-chan struct{} {
	return p.updates
}

// Run polls once immediately and then on every tick until ctx is cancelled.
// Polls never overlap: a tick that fires during a slow request is consumed
// after the request settles.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("starting poller", "interval", p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller stopped")
			return ctx.Err()
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	np, err := p.backend.NowPlaying(ctx)
	if err != nil && ctx.Err() != nil {
		// Shutting down; a cancelled request is not a backend failure.
		return
	}
	p.store.Update(np, err)
	if err != nil {
		p.logger.Error("now playing poll failed", "err", err)
	} else if np != nil && np.Item != nil {
		p.logger.Debug("poll update", "track", np.Item.Name, "artists", np.Item.Artists, "playing", np.IsPlaying)
	}

	select {
	case p.updates <- struct{}{}:
	default:
	}
}
